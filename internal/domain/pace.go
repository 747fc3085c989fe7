package domain

import (
	"math"
	"time"

	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

const (
	// EndOfMonthSurgeMultiplier é aplicado à projeção restante no fechamento do mês
	EndOfMonthSurgeMultiplier = 1.3
	// EndOfMonthSurgeThreshold é o número máximo de dias úteis restantes para ativar o surge
	EndOfMonthSurgeThreshold = 7
)

// IsWorkingDay considera dia útil qualquer dia que não seja domingo
func IsWorkingDay(d CalendarDate) bool {
	return d.Time.Weekday() != time.Sunday
}

// WorkingDays conta os dias úteis do intervalo fechado [start, end]
func WorkingDays(start, end CalendarDate) int {
	if !start.Valid || !end.Valid || end.Before(start) {
		return 0
	}

	count := 0
	for d := start.Time; !d.After(end.Time); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			count++
		}
	}

	return count
}

// PaceInput são as entradas da projeção do mês de um vendedor
type PaceInput struct {
	MonthSales   []Sale
	PendingCount int
	Today        CalendarDate
	MonthStart   CalendarDate
	MonthEnd     CalendarDate
	Goal         int
}

// NewPaceInput restringe as vendas do vendedor ao mês de today e conta as pendentes do mês
func NewPaceInput(advisorSales []Sale, today CalendarDate, goal int) PaceInput {
	start, end := MonthBounds(today)
	month := DateRange{Start: start, End: end}

	monthSales := make([]Sale, 0)
	pending := 0
	for _, sale := range advisorSales {
		if !month.Contains(sale.DeliveryDate) {
			continue
		}
		monthSales = append(monthSales, sale)
		if !Classify(sale).Delivered {
			pending++
		}
	}

	return PaceInput{
		MonthSales:   monthSales,
		PendingCount: pending,
		Today:        today,
		MonthStart:   start,
		MonthEnd:     end,
		Goal:         goal,
	}
}

// MonthPace é a projeção de fechamento do mês
type MonthPace struct {
	DeliveredSoFar       int     `json:"delivered_so_far"`
	PendingThisMonth     int     `json:"pending_this_month"`
	ProjectedTotal       int     `json:"projected_total"`
	WorkingDaysElapsed   int     `json:"working_days_elapsed"`
	WorkingDaysRemaining int     `json:"working_days_remaining"`
	IsEndOfMonthSurge    bool    `json:"is_end_of_month_surge"`
	DailyRate            float64 `json:"daily_rate"`
	Goal                 int     `json:"goal"`
	GoalRatio            float64 `json:"goal_ratio"`
	OnTrack              bool    `json:"on_track"`
}

// ProjectMonthPace projeta o total de entregas do mês a partir do ritmo atual.
// Vendas sem data válida ou fora do mês são ignoradas.
func ProjectMonthPace(input PaceInput) MonthPace {
	elapsed := WorkingDays(input.MonthStart, input.Today)
	remaining := WorkingDays(input.Today, input.MonthEnd)

	month := DateRange{Start: input.MonthStart, End: input.MonthEnd}
	delivered := 0
	for _, sale := range input.MonthSales {
		if !month.Contains(sale.DeliveryDate) {
			continue
		}
		if Classify(sale).Delivered {
			delivered++
		}
	}

	dailyRate := 0.0
	if elapsed > 0 {
		dailyRate = float64(delivered) / float64(elapsed)
	}

	surge := remaining <= EndOfMonthSurgeThreshold

	projectedRemaining := float64(remaining) * dailyRate
	if surge {
		projectedRemaining *= EndOfMonthSurgeMultiplier
	}

	projected := int(math.Round(float64(delivered) + projectedRemaining + float64(input.PendingCount)))

	return MonthPace{
		DeliveredSoFar:       delivered,
		PendingThisMonth:     input.PendingCount,
		ProjectedTotal:       projected,
		WorkingDaysElapsed:   elapsed,
		WorkingDaysRemaining: remaining,
		IsEndOfMonthSurge:    surge,
		DailyRate:            utils.RoundWithTwoDecimalPlace(dailyRate),
		Goal:                 input.Goal,
		GoalRatio:            utils.Ratio(float64(projected), float64(input.Goal)),
		OnTrack:              input.Goal > 0 && projected >= input.Goal,
	}
}
