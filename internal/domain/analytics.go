package domain

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

const (
	// MonthLabelLayout é o rótulo de mês exibido nos painéis (ex.: January 2025)
	MonthLabelLayout = "January 2006"
	// ShortMonthLabelLayout é o rótulo curto usado nos gráficos (ex.: Jan 2025)
	ShortMonthLabelLayout = "Jan 2006"
	// HistoryMonths é a quantidade de meses fechados exibidos nos gráficos
	HistoryMonths = 12
)

// BestMonth é o mês com mais vendas
type BestMonth struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// YearlyStats resume o histórico de um vendedor
type YearlyStats struct {
	TotalSales      int            `json:"total_sales"`
	AveragePerMonth float64        `json:"average_per_month"`
	BestMonth       BestMonth      `json:"best_month"`
	ByType          map[string]int `json:"by_type"`
}

// monthsAgo retorna quantos meses de calendário separam d de now
func monthsAgo(d, now CalendarDate) int {
	return (now.Time.Year()-d.Time.Year())*12 + int(now.Time.Month()-d.Time.Month())
}

// ComputeYearlyStats calcula total do ano corrente, média dos 12 meses anteriores ao
// mês atual, melhor mês (o primeiro a atingir a maior contagem vence) e contagem por tipo.
// Vendas sem data válida não entram em nenhuma métrica.
func ComputeYearlyStats(sales []Sale, now CalendarDate) YearlyStats {
	stats := YearlyStats{ByType: make(map[string]int)}

	last12 := 0
	monthOrder := make([]string, 0)
	monthTotals := make(map[string]int)

	for _, sale := range sales {
		d := sale.DeliveryDate
		if !d.Valid {
			continue
		}

		if ago := monthsAgo(d, now); ago > 0 && ago <= HistoryMonths {
			last12++
		}

		if d.Time.Year() == now.Time.Year() {
			stats.TotalSales++
			stats.ByType[sale.Type]++
		}

		label := d.Time.Format(MonthLabelLayout)
		if _, seen := monthTotals[label]; !seen {
			monthOrder = append(monthOrder, label)
		}
		monthTotals[label]++
	}

	for _, label := range monthOrder {
		if monthTotals[label] > stats.BestMonth.Count {
			stats.BestMonth = BestMonth{Month: label, Count: monthTotals[label]}
		}
	}

	stats.AveragePerMonth = utils.RoundWithOneDecimalPlace(float64(last12) / HistoryMonths)

	return stats
}

// HistoryPoint é um ponto do gráfico mensal do vendedor
type HistoryPoint struct {
	Month        string  `json:"month"`
	Sales        int     `json:"sales"`
	PriorYear    int     `json:"prior_year"`
	TeamAverage  float64 `json:"team_average"`
	TopPerformer int     `json:"top_performer"`
}

func countByMonth(sales []Sale) map[string]int {
	counts := make(map[string]int)
	for _, sale := range sales {
		if sale.DeliveryDate.Valid {
			counts[sale.DeliveryDate.MonthKey()]++
		}
	}
	return counts
}

func groupByMonth(sales []Sale) map[string][]Sale {
	groups := make(map[string][]Sale)
	for _, sale := range sales {
		if sale.DeliveryDate.Valid {
			key := sale.DeliveryDate.MonthKey()
			groups[key] = append(groups[key], sale)
		}
	}
	return groups
}

// MonthlyHistory monta os 12 meses fechados anteriores a now, do mais antigo ao mais recente
func MonthlyHistory(advisorSales, teamSales []Sale, now CalendarDate) []HistoryPoint {
	own := countByMonth(advisorSales)
	team := groupByMonth(teamSales)

	points := make([]HistoryPoint, 0, HistoryMonths)
	for i := HistoryMonths; i >= 1; i-- {
		month := now.AddMonths(-i)
		key := month.MonthKey()
		monthTeam := team[key]

		perAdvisor := make(map[string]int)
		top := 0
		for _, sale := range monthTeam {
			perAdvisor[sale.Advisor]++
			top = max(top, perAdvisor[sale.Advisor])
		}

		advisors := max(len(perAdvisor), 1)

		points = append(points, HistoryPoint{
			Month:        month.Time.Format(ShortMonthLabelLayout),
			Sales:        own[key],
			PriorYear:    own[month.AddMonths(-12).MonthKey()],
			TeamAverage:  utils.RoundWithOneDecimalPlace(float64(len(monthTeam)) / float64(advisors)),
			TopPerformer: top,
		})
	}

	return points
}

// TimeFrame é o recorte de período do painel gerencial
type TimeFrame string

const (
	TimeFrameCurrentMonth TimeFrame = "current-month"
	TimeFrameLastMonth    TimeFrame = "last-month"
	TimeFrameYearToDate   TimeFrame = "year-to-date"
	TimeFrameCustom       TimeFrame = "custom"
)

// ParseTimeFrame valida o recorte; vazio equivale ao mês atual
func ParseTimeFrame(value string) (TimeFrame, error) {
	switch tf := TimeFrame(value); tf {
	case "":
		return TimeFrameCurrentMonth, nil
	case TimeFrameCurrentMonth, TimeFrameLastMonth, TimeFrameYearToDate, TimeFrameCustom:
		return tf, nil
	}
	return "", fmt.Errorf("período inválido: %s", value)
}

// Range converte o recorte em intervalo de datas. Para custom, start e end são obrigatórios.
func (tf TimeFrame) Range(now, customStart, customEnd CalendarDate) (DateRange, error) {
	switch tf {
	case TimeFrameCurrentMonth, "":
		return MonthRange(now), nil
	case TimeFrameLastMonth:
		return MonthRange(now.AddMonths(-1)), nil
	case TimeFrameYearToDate:
		return DateRange{Start: NewCalendarDate(now.Time.Year(), 1, 1), End: now}, nil
	case TimeFrameCustom:
		if !customStart.Valid || !customEnd.Valid {
			return DateRange{}, fmt.Errorf("período personalizado exige data inicial e final")
		}
		if customEnd.Before(customStart) {
			return DateRange{}, fmt.Errorf("data final anterior à data inicial")
		}
		return DateRange{Start: customStart, End: customEnd}, nil
	}
	return DateRange{}, fmt.Errorf("período inválido: %s", tf)
}

// FilterByRange retorna as vendas com data de entrega dentro do intervalo
func FilterByRange(sales []Sale, r DateRange) []Sale {
	filtered := make([]Sale, 0)
	for _, sale := range sales {
		if r.Contains(sale.DeliveryDate) {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}

// FilterByAdvisor retorna as vendas do vendedor (comparação exata)
func FilterByAdvisor(sales []Sale, advisor string) []Sale {
	filtered := make([]Sale, 0)
	for _, sale := range sales {
		if sale.Advisor == advisor {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}

// TopPerformer é o vendedor com mais entregas no período
type TopPerformer struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

// TeamPerformance resume a equipe no período
type TeamPerformance struct {
	TotalSales       int          `json:"total_sales"`
	DeliveredSales   int          `json:"delivered_sales"`
	PendingSales     int          `json:"pending_sales"`
	AveragePerMember float64      `json:"average_per_member"`
	TopPerformer     TopPerformer `json:"top_performer"`
}

// ComputeTeamPerformance consolida as vendas do período. O melhor vendedor segue a ordenação
// base do ranking, e só existe se tiver ao menos uma entrega.
func ComputeTeamPerformance(sales []Sale, activeMembers int) TeamPerformance {
	perf := TeamPerformance{TotalSales: len(sales)}

	for _, sale := range sales {
		if Classify(sale).Delivered {
			perf.DeliveredSales++
		} else {
			perf.PendingSales++
		}
	}

	if activeMembers > 0 {
		perf.AveragePerMember = utils.RoundWithOneDecimalPlace(float64(perf.DeliveredSales) / float64(activeMembers))
	}

	if ranking := AggregateByAdvisor(sales); len(ranking) > 0 && ranking[0].Delivered > 0 {
		perf.TopPerformer = TopPerformer{Name: ranking[0].Name, Sales: ranking[0].Delivered}
	}

	return perf
}

// TeamChartPoint é um ponto do gráfico mensal da equipe
type TeamChartPoint struct {
	Month            string  `json:"month"`
	TotalSales       int     `json:"total_sales"`
	AveragePerMember float64 `json:"average_per_member"`
	TopPerformer     int     `json:"top_performer"`
}

// TeamMonthlyChart monta os 12 meses fechados anteriores a now para a equipe
func TeamMonthlyChart(teamSales []Sale, activeMembers int, now CalendarDate) []TeamChartPoint {
	byMonth := groupByMonth(teamSales)

	points := make([]TeamChartPoint, 0, HistoryMonths)
	for i := HistoryMonths; i >= 1; i-- {
		month := now.AddMonths(-i)
		monthSales := byMonth[month.MonthKey()]

		delivered, top := 0, 0
		for _, s := range AggregateByAdvisor(monthSales) {
			delivered += s.Delivered
			top = max(top, s.Delivered)
		}

		avg := 0.0
		if activeMembers > 0 {
			avg = utils.RoundWithOneDecimalPlace(float64(delivered) / float64(activeMembers))
		}

		points = append(points, TeamChartPoint{
			Month:            month.Time.Format(ShortMonthLabelLayout),
			TotalSales:       len(monthSales),
			AveragePerMember: avg,
			TopPerformer:     top,
		})
	}

	return points
}

// DistributionSlice é a fatia de um vendedor no total de vendas
type DistributionSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SalesDistribution conta as vendas por vendedor, maiores primeiro
func SalesDistribution(sales []Sale) []DistributionSlice {
	counts := make(map[string]int)
	for _, sale := range sales {
		counts[sale.Advisor]++
	}

	result := make([]DistributionSlice, 0, len(counts))
	for name, value := range counts {
		result = append(result, DistributionSlice{Name: name, Value: value})
	}

	sortDistribution(result)

	return result
}

func sortDistribution(d []DistributionSlice) {
	slices.SortFunc(d, func(a, b DistributionSlice) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}
