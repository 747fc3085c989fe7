package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typedOn(advisor, vehicleType string, year int, month time.Month, day int) Sale {
	return Sale{
		Advisor:      advisor,
		Type:         vehicleType,
		Delivered:    true,
		DeliveryDate: NewCalendarDate(year, month, day),
	}
}

func TestComputeYearlyStats(t *testing.T) {
	now := NewCalendarDate(2025, 6, 15)

	sales := []Sale{
		typedOn("Alice", "New BMW", 2025, 1, 10),
		typedOn("Alice", "New BMW", 2025, 1, 20),
		typedOn("Alice", "CPO MINI", 2025, 3, 5),
		typedOn("Alice", "New BMW", 2025, 6, 2),
		typedOn("Alice", "Used BMW", 2024, 8, 10),
		typedOn("Alice", "Used BMW", 2024, 8, 11),
		typedOn("Alice", "New BMW", 2024, 6, 30),
		typedOn("Alice", "New BMW", 2024, 5, 1),
		{Advisor: "Alice", Type: "New BMW", Delivered: true},
	}

	stats := ComputeYearlyStats(sales, now)

	assert.Equal(t, 4, stats.TotalSales)
	// Seis vendas nos 12 meses anteriores a junho de 2025
	assert.Equal(t, 0.5, stats.AveragePerMonth)
	// Agosto de 2024 empata com janeiro de 2025, mas só um valor maior substitui
	assert.Equal(t, BestMonth{Month: "January 2025", Count: 2}, stats.BestMonth)
	assert.Equal(t, map[string]int{"New BMW": 3, "CPO MINI": 1}, stats.ByType)
}

func TestComputeYearlyStats_NoSales(t *testing.T) {
	stats := ComputeYearlyStats(nil, NewCalendarDate(2025, 6, 15))

	assert.Equal(t, 0, stats.TotalSales)
	assert.Equal(t, 0.0, stats.AveragePerMonth)
	assert.Equal(t, BestMonth{}, stats.BestMonth)
	assert.Empty(t, stats.ByType)
}

func TestMonthlyHistory(t *testing.T) {
	now := NewCalendarDate(2025, 6, 15)

	advisorSales := []Sale{
		typedOn("Alice", "New BMW", 2025, 5, 3),
		typedOn("Alice", "New BMW", 2025, 5, 20),
		typedOn("Alice", "New BMW", 2024, 5, 10),
	}
	teamSales := append([]Sale{
		typedOn("Bob", "New BMW", 2025, 5, 4),
		typedOn("Bob", "New BMW", 2025, 5, 4),
		typedOn("Bob", "New BMW", 2025, 5, 4),
		typedOn("Carl", "New BMW", 2025, 5, 7),
	}, advisorSales...)

	points := MonthlyHistory(advisorSales, teamSales, now)

	require.Len(t, points, HistoryMonths)
	assert.Equal(t, HistoryPoint{Month: "Jun 2024"}, points[0])

	last := points[len(points)-1]
	assert.Equal(t, "May 2025", last.Month)
	assert.Equal(t, 2, last.Sales)
	assert.Equal(t, 1, last.PriorYear)
	assert.Equal(t, 2.0, last.TeamAverage)
	assert.Equal(t, 3, last.TopPerformer)
}

func TestTimeFrameRange(t *testing.T) {
	now := NewCalendarDate(2025, 3, 15)

	tests := []struct {
		name     string
		frame    TimeFrame
		start    CalendarDate
		end      CalendarDate
		expected DateRange
		wantErr  bool
	}{
		{
			name:     "Mês atual",
			frame:    TimeFrameCurrentMonth,
			expected: DateRange{Start: NewCalendarDate(2025, 3, 1), End: NewCalendarDate(2025, 3, 31)},
		},
		{
			name:     "Mês anterior",
			frame:    TimeFrameLastMonth,
			expected: DateRange{Start: NewCalendarDate(2025, 2, 1), End: NewCalendarDate(2025, 2, 28)},
		},
		{
			name:     "Ano até a data",
			frame:    TimeFrameYearToDate,
			expected: DateRange{Start: NewCalendarDate(2025, 1, 1), End: now},
		},
		{
			name:     "Personalizado",
			frame:    TimeFrameCustom,
			start:    NewCalendarDate(2025, 1, 10),
			end:      NewCalendarDate(2025, 2, 10),
			expected: DateRange{Start: NewCalendarDate(2025, 1, 10), End: NewCalendarDate(2025, 2, 10)},
		},
		{
			name:    "Personalizado sem datas",
			frame:   TimeFrameCustom,
			wantErr: true,
		},
		{
			name:    "Personalizado com fim antes do início",
			frame:   TimeFrameCustom,
			start:   NewCalendarDate(2025, 2, 10),
			end:     NewCalendarDate(2025, 1, 10),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.frame.Range(now, tt.start, tt.end)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}
}

func TestParseTimeFrame(t *testing.T) {
	tf, err := ParseTimeFrame("")
	require.NoError(t, err)
	assert.Equal(t, TimeFrameCurrentMonth, tf)

	tf, err = ParseTimeFrame("year-to-date")
	require.NoError(t, err)
	assert.Equal(t, TimeFrameYearToDate, tf)

	_, err = ParseTimeFrame("weekly")
	assert.Error(t, err)
}

func TestComputeTeamPerformance(t *testing.T) {
	sales := []Sale{
		sale("Alice", "New BMW", true),
		sale("Alice", "New BMW", true),
		sale("Bob", "New BMW", true),
		sale("Bob", "New BMW", true),
		sale("Bob", "New BMW", false),
		sale("Carl", "New BMW", false),
	}

	perf := ComputeTeamPerformance(sales, 4)

	assert.Equal(t, 6, perf.TotalSales)
	assert.Equal(t, 4, perf.DeliveredSales)
	assert.Equal(t, 2, perf.PendingSales)
	assert.Equal(t, 1.0, perf.AveragePerMember)
	assert.Equal(t, TopPerformer{Name: "Bob", Sales: 2}, perf.TopPerformer)
}

func TestComputeTeamPerformance_NoDeliveries(t *testing.T) {
	perf := ComputeTeamPerformance([]Sale{sale("Carl", "New BMW", false)}, 0)

	assert.Equal(t, 0.0, perf.AveragePerMember)
	assert.Equal(t, TopPerformer{}, perf.TopPerformer)
}

func TestTeamMonthlyChart(t *testing.T) {
	now := NewCalendarDate(2025, 6, 15)

	pendingBob := typedOn("Bob", "New BMW", 2025, 5, 9)
	pendingBob.Delivered = false

	sales := []Sale{
		typedOn("Alice", "New BMW", 2025, 5, 2),
		typedOn("Alice", "New BMW", 2025, 5, 3),
		typedOn("Bob", "New BMW", 2025, 5, 8),
		pendingBob,
		typedOn("Bob", "New BMW", 2025, 6, 1),
	}

	points := TeamMonthlyChart(sales, 2, now)

	require.Len(t, points, HistoryMonths)
	last := points[len(points)-1]
	assert.Equal(t, TeamChartPoint{Month: "May 2025", TotalSales: 4, AveragePerMember: 1.5, TopPerformer: 2}, last)
	assert.Equal(t, TeamChartPoint{Month: "Jun 2024"}, points[0])
}

func TestSalesDistribution(t *testing.T) {
	sales := []Sale{
		sale("Alice", "New BMW", true),
		sale("Bob", "New BMW", false),
		sale("Bob", "New BMW", true),
		sale("Carl", "New BMW", true),
		sale("Alice", "New BMW", true),
		sale("Bob", "New BMW", true),
	}

	assert.Equal(t, []DistributionSlice{
		{Name: "Bob", Value: 3},
		{Name: "Alice", Value: 2},
		{Name: "Carl", Value: 1},
	}, SalesDistribution(sales))
}
