package domain

import (
	"cmp"
	"slices"
)

// PendingWindowMonths é a janela padrão de meses futuros do quadro de pendentes
const PendingWindowMonths = 6

// AdvisorPending agrupa as vendas pendentes de um vendedor
type AdvisorPending struct {
	Advisor string   `json:"advisor"`
	Count   int      `json:"count"`
	Months  []string `json:"months"`
	Sales   []Sale   `json:"sales"`
}

// UpcomingMonths lista os rótulos dos próximos n meses a partir do mês de now (inclusive)
func UpcomingMonths(now CalendarDate, n int) []string {
	months := make([]string, 0, n)
	for i := 0; i < n; i++ {
		months = append(months, now.AddMonths(i).Time.Format(MonthLabelLayout))
	}
	return months
}

// GroupPendingByAdvisor agrupa as pendentes por vendedor, mantendo apenas vendedores com
// ao menos uma entrega prevista na janela, ordenados pela quantidade de pendentes (desc)
func GroupPendingByAdvisor(pending []Sale, now CalendarDate, months int) []AdvisorPending {
	if months <= 0 {
		months = PendingWindowMonths
	}

	window := DateRange{Start: now.AddMonths(0), End: now.AddMonths(months).AddDays(-1)}

	index := make(map[string]int)
	groups := make([]AdvisorPending, 0)
	inWindow := make(map[string]bool)

	for _, sale := range pending {
		if Classify(sale).Delivered {
			continue
		}

		i, ok := index[sale.Advisor]
		if !ok {
			i = len(groups)
			index[sale.Advisor] = i
			groups = append(groups, AdvisorPending{Advisor: sale.Advisor})
		}
		groups[i].Sales = append(groups[i].Sales, sale)
		groups[i].Count++

		if window.Contains(sale.DeliveryDate) {
			inWindow[sale.Advisor] = true
		}
	}

	result := make([]AdvisorPending, 0, len(groups))
	for _, g := range groups {
		if !inWindow[g.Advisor] {
			continue
		}
		g.Months = pendingMonths(g.Sales, window)
		result = append(result, g)
	}

	slices.SortStableFunc(result, func(a, b AdvisorPending) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return result
}

func pendingMonths(sales []Sale, window DateRange) []string {
	keys := make([]string, 0)
	labels := make(map[string]string)
	for _, sale := range sales {
		if !window.Contains(sale.DeliveryDate) {
			continue
		}
		key := sale.DeliveryDate.MonthKey()
		if _, ok := labels[key]; !ok {
			keys = append(keys, key)
			labels[key] = sale.DeliveryDate.Time.Format(MonthLabelLayout)
		}
	}

	slices.Sort(keys)

	months := make([]string, 0, len(keys))
	for _, key := range keys {
		months = append(months, labels[key])
	}
	return months
}
