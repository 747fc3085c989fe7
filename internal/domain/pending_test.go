package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOn(advisor string, year int, month time.Month, day int) Sale {
	return Sale{
		Advisor:      advisor,
		Type:         "New MINI",
		DeliveryDate: NewCalendarDate(year, month, day),
	}
}

func TestGroupPendingByAdvisor(t *testing.T) {
	now := NewCalendarDate(2025, 6, 15)

	delivered := pendingOn("Eve", 2025, 7, 1)
	delivered.Delivered = true

	sales := []Sale{
		pendingOn("Alice", 2025, 7, 10),
		pendingOn("Alice", 2025, 8, 2),
		pendingOn("Alice", 2025, 5, 20),
		pendingOn("Bob", 2025, 12, 5),
		pendingOn("Carl", 2025, 6, 20),
		pendingOn("Carl", 2025, 9, 1),
		pendingOn("Carl", 2025, 6, 25),
		pendingOn("Carl", 2025, 10, 1),
		{Advisor: "Dave", Type: "New MINI"},
		delivered,
		pendingOn("Eve", 2026, 1, 3),
	}

	groups := GroupPendingByAdvisor(sales, now, 6)

	require.Len(t, groups, 2)

	assert.Equal(t, "Carl", groups[0].Advisor)
	assert.Equal(t, 4, groups[0].Count)
	assert.Equal(t, []string{"June 2025", "September 2025", "October 2025"}, groups[0].Months)

	// Vendas fora da janela continuam na contagem do vendedor
	assert.Equal(t, "Alice", groups[1].Advisor)
	assert.Equal(t, 3, groups[1].Count)
	assert.Len(t, groups[1].Sales, 3)
	assert.Equal(t, []string{"July 2025", "August 2025"}, groups[1].Months)
}

func TestGroupPendingByAdvisor_DefaultWindow(t *testing.T) {
	now := NewCalendarDate(2025, 6, 15)

	groups := GroupPendingByAdvisor([]Sale{
		pendingOn("Alice", 2025, 11, 30),
		pendingOn("Bob", 2025, 12, 1),
	}, now, 0)

	require.Len(t, groups, 1)
	assert.Equal(t, "Alice", groups[0].Advisor)
}

func TestUpcomingMonths(t *testing.T) {
	months := UpcomingMonths(NewCalendarDate(2025, 11, 30), 3)

	assert.Equal(t, []string{"November 2025", "December 2025", "January 2026"}, months)
}
