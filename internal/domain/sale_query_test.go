package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tableSales() []Sale {
	return []Sale{
		{ID: "a1", ClientName: "carla", Advisor: "Alice", Type: "New BMW", Year: 2024, DeliveryDate: NewCalendarDate(2025, 6, 3)},
		{ID: "b1", ClientName: "Bruno", Advisor: "Bob", Type: "CPO MINI", Year: 2021, DeliveryDate: NewCalendarDate(2025, 5, 1)},
		{ID: "a2", ClientName: "Ana", Advisor: "Alice", Type: "Used BMW", Year: 2019},
	}
}

func ids(sales []Sale) []string {
	result := make([]string, 0, len(sales))
	for _, s := range sales {
		result = append(result, s.ID)
	}
	return result
}

func TestFilterSales(t *testing.T) {
	tests := []struct {
		name     string
		filters  map[string]string
		expected []string
	}{
		{"Sem filtros", nil, []string{"a1", "b1", "a2"}},
		{"Contém sem diferenciar caixa", map[string]string{"advisor": "ali"}, []string{"a1", "a2"}},
		{"Múltiplas colunas", map[string]string{"advisor": "ALI", "type": "bmw"}, []string{"a1", "a2"}},
		{"Filtro por ano", map[string]string{"year": "202"}, []string{"a1", "b1"}},
		{"Data ausente não casa", map[string]string{"deliveryDate": "2025"}, []string{"a1", "b1"}},
		{"Valor vazio é ignorado", map[string]string{"model": ""}, []string{"a1", "b1", "a2"}},
		{"Nenhum resultado", map[string]string{"clientName": "zeca"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(FilterSales(tableSales(), tt.filters)))
		})
	}
}

func TestSortSales(t *testing.T) {
	sales := tableSales()

	assert.Equal(t, []string{"a2", "b1", "a1"}, ids(SortSales(sales, "clientName", false)))
	assert.Equal(t, []string{"a1", "b1", "a2"}, ids(SortSales(sales, "clientName", true)))
	assert.Equal(t, []string{"a2", "b1", "a1"}, ids(SortSales(sales, "year", false)))
	assert.Equal(t, []string{"a2", "b1", "a1"}, ids(SortSales(sales, "deliveryDate", false)))
	assert.Equal(t, []string{"a1", "b1", "a2"}, ids(SortSales(sales, "", false)))

	// A ordenação não altera o slice original
	assert.Equal(t, []string{"a1", "b1", "a2"}, ids(sales))
}

func TestSaleFilter_Validate(t *testing.T) {
	assert.NoError(t, SaleFilter{Month: "2025-06", SortBy: "advisor", SortDir: SortDesc}.Validate())
	assert.Error(t, SaleFilter{Month: "06-2025"}.Validate())
	assert.Error(t, SaleFilter{Columns: map[string]string{"price": "1"}}.Validate())
	assert.Error(t, SaleFilter{SortBy: "price"}.Validate())
	assert.Error(t, SaleFilter{SortDir: "up"}.Validate())
}
