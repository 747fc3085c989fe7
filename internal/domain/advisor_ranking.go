package domain

import "time"

type AdvisorRankingResponse struct {
	Month      string               `json:"month"`
	Ranking    []AdvisorRankingItem `json:"ranking"`
	LastUpdate time.Time            `json:"last_update"`
}

type AdvisorRankingItem struct {
	ID               int       `json:"id"`
	Advisor          string    `json:"advisor"`
	Month            string    `json:"month"` // Formato YYYY-MM
	Delivered        int       `json:"delivered"`
	Pending          int       `json:"pending"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BuildAdvisorRanking converte as estatísticas ordenadas em itens de ranking,
// calculando a variação de posição a partir das posições anteriores (0 = sem histórico)
func BuildAdvisorRanking(month string, stats []AdvisorStats, previousPositions map[string]int) []AdvisorRankingItem {
	items := make([]AdvisorRankingItem, 0, len(stats))

	for i, s := range stats {
		position := i + 1
		previous := previousPositions[s.Name]

		change := 0
		if previous > 0 {
			change = previous - position
		}

		items = append(items, AdvisorRankingItem{
			Advisor:          s.Name,
			Month:            month,
			Delivered:        s.Delivered,
			Pending:          s.Pending,
			Position:         position,
			PositionChange:   change,
			PreviousPosition: previous,
		})
	}

	return items
}
