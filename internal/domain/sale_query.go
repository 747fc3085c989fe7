package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Direções de ordenação da tabela de vendas
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SaleFilter são os filtros de listagem de vendas
type SaleFilter struct {
	Advisor   string
	Month     string
	Type      string
	Delivered *bool
	Columns   map[string]string
	SortBy    string
	SortDir   string
}

// Validate confere colunas e direção de ordenação
func (f SaleFilter) Validate() error {
	if f.Month != "" {
		if _, err := ParseMonthKey(f.Month); err != nil {
			return err
		}
	}
	for column := range f.Columns {
		if !IsSaleColumn(column) {
			return fmt.Errorf("coluna de filtro desconhecida: %s", column)
		}
	}
	if f.SortBy != "" && !IsSaleColumn(f.SortBy) {
		return fmt.Errorf("coluna de ordenação desconhecida: %s", f.SortBy)
	}
	if f.SortDir != "" && f.SortDir != SortAsc && f.SortDir != SortDesc {
		return fmt.Errorf("direção de ordenação inválida: %s", f.SortDir)
	}
	return nil
}

// FilterSales mantém as vendas cujo valor de cada coluna contém o texto informado (sem diferenciar caixa)
func FilterSales(sales []Sale, filters map[string]string) []Sale {
	filtered := make([]Sale, 0, len(sales))

	for _, sale := range sales {
		if matchesAll(sale, filters) {
			filtered = append(filtered, sale)
		}
	}

	return filtered
}

func matchesAll(sale Sale, filters map[string]string) bool {
	for column, needle := range filters {
		if needle == "" {
			continue
		}
		value, err := sale.Field(column)
		if err != nil || value == "" {
			return false
		}
		if !strings.Contains(strings.ToLower(value), strings.ToLower(needle)) {
			return false
		}
	}
	return true
}

// SortSales ordena por coluna (sem diferenciar caixa). Coluna vazia mantém a ordem original.
func SortSales(sales []Sale, column string, desc bool) []Sale {
	sorted := slices.Clone(sales)
	if column == "" || !IsSaleColumn(column) {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b Sale) int {
		c := compareColumn(a, b, column)
		if desc {
			return -c
		}
		return c
	})

	return sorted
}

func compareColumn(a, b Sale, column string) int {
	switch column {
	case "year":
		return cmp.Compare(a.Year, b.Year)
	case "deliveryDate":
		return a.DeliveryDate.Time.Compare(b.DeliveryDate.Time)
	}

	va, _ := a.Field(column)
	vb, _ := b.Field(column)
	return cmp.Compare(strings.ToLower(va), strings.ToLower(vb))
}
