package domain

import (
	"time"

	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

// Goal é a meta de entregas de um vendedor em um mês
type Goal struct {
	ID        int       `json:"id"`
	Advisor   string    `json:"advisor"`
	Month     string    `json:"month"` // Formato YYYY-MM
	GoalCount int       `json:"goal_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeamGoal é a meta da equipe no mês
type TeamGoal struct {
	ID        int       `json:"id"`
	Month     string    `json:"month"`
	GoalCount int       `json:"goal_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GoalMap converte a lista de metas no mapa vendedor -> meta
func GoalMap(goals []Goal) map[string]int {
	m := make(map[string]int, len(goals))
	for _, g := range goals {
		m[g.Advisor] = g.GoalCount
	}
	return m
}

// TeamGoalProgress é o consolidado da equipe frente à meta do mês
type TeamGoalProgress struct {
	TeamGoal             int     `json:"team_goal"`
	SumIndividualGoals   int     `json:"sum_individual_goals"`
	DeliveredCount       int     `json:"delivered_count"`
	PendingCount         int     `json:"pending_count"`
	DeliveredRatio       float64 `json:"delivered_ratio"`
	IndividualGoalsRatio float64 `json:"individual_goals_ratio"`
	TotalRatio           float64 `json:"total_ratio"`
}

// AggregateTeamGoal consolida metas individuais e vendas do mês contra a meta da equipe.
// Meta da equipe zero ou negativa gera razões 0.
func AggregateTeamGoal(goals map[string]int, teamGoal int, sales []Sale) TeamGoalProgress {
	sum := 0
	for _, g := range goals {
		sum += g
	}

	delivered, pending := 0, 0
	for _, sale := range sales {
		if Classify(sale).Delivered {
			delivered++
		} else {
			pending++
		}
	}

	goal := float64(teamGoal)

	return TeamGoalProgress{
		TeamGoal:             teamGoal,
		SumIndividualGoals:   sum,
		DeliveredCount:       delivered,
		PendingCount:         pending,
		DeliveredRatio:       utils.Ratio(float64(delivered), goal),
		IndividualGoalsRatio: utils.Ratio(float64(sum), goal),
		TotalRatio:           utils.Ratio(float64(delivered+pending), goal),
	}
}

// TeamProgress alimenta o acompanhamento de progresso da equipe
type TeamProgress struct {
	Goal       int     `json:"goal"`
	Current    int     `json:"current"`
	Remaining  int     `json:"remaining"`
	Percentage float64 `json:"percentage"`
	IsComplete bool    `json:"is_complete"`
}

func NewTeamProgress(goal, delivered int) TeamProgress {
	remaining := goal - delivered
	if remaining < 0 {
		remaining = 0
	}

	return TeamProgress{
		Goal:       goal,
		Current:    delivered,
		Remaining:  remaining,
		Percentage: utils.RoundWithTwoDecimalPlace(utils.Ratio(float64(delivered), float64(goal)) * 100),
		IsComplete: goal > 0 && delivered >= goal,
	}
}
