package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool { return &b }

func TestParseSaleFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    domain.SaleFilter
		wantErr bool
	}{
		{
			name:  "Sem filtros",
			query: "",
			want:  domain.SaleFilter{},
		},
		{
			name:  "Filtros estruturados e ordenação",
			query: "advisor=John+Doe&month=2025-06&type=New+BMW&delivered=true&sort=clientName&dir=DESC",
			want: domain.SaleFilter{
				Advisor:   "John Doe",
				Month:     "2025-06",
				Type:      "New BMW",
				Delivered: boolPtr(true),
				SortBy:    "clientName",
				SortDir:   domain.SortDesc,
			},
		},
		{
			name:  "Filtros de coluna",
			query: "f.model=x5&f.color=&f.clientName=ana",
			want: domain.SaleFilter{
				Columns: map[string]string{"model": "x5", "clientName": "ana"},
			},
		},
		{
			name:    "Delivered inválido",
			query:   "delivered=talvez",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := parseSaleFilter(query)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListSales(t *testing.T) {
	t.Run("Repassa os filtros ao caso de uso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockSeller(ctrl)
		service.EXPECT().ListSales(domain.SaleFilter{Advisor: "John Doe", Delivered: boolPtr(false)}).
			Return([]domain.Sale{{ID: "abc", Advisor: "John Doe"}}, nil)

		rec := doRequest(t, Sales(service), http.MethodGet, "/v1/sales?advisor=John+Doe&delivered=false", nil, salespersonClaims)

		require.Equal(t, http.StatusOK, rec.Code)

		var sales []domain.Sale
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&sales))
		require.Len(t, sales, 1)
		assert.Equal(t, "abc", sales[0].ID)
	})

	t.Run("Filtro inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockSeller(ctrl)
		service.EXPECT().ListSales(gomock.Any()).
			Return(nil, selling.NewSaleError(selling.ErrInvalidFilter, apiErrors.ErrInvalidRequest, "", "coluna de ordenação desconhecida: price"))

		rec := doRequest(t, Sales(service), http.MethodGet, "/v1/sales?sort=price", nil, salespersonClaims)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("Erro de banco não expõe detalhes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockSeller(ctrl)
		service.EXPECT().ListSales(gomock.Any()).
			Return(nil, selling.NewSaleError(errors.New("connection refused"), apiErrors.ErrDatabaseOperation, "", "Erro ao listar vendas"))

		rec := doRequest(t, Sales(service), http.MethodGet, "/v1/sales", nil, salespersonClaims)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		apiErr := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
		assert.NotContains(t, apiErr.Message, "connection refused")
	})
}

func TestCreateSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSeller(ctrl)

	service.EXPECT().CreateSale(gomock.Any()).DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
		assert.True(t, sale.IsDelivered())
		assert.Equal(t, domain.NewCalendarDate(2025, 6, 10), sale.DeliveryDate)
		sale.ID = "novo-id"
		return sale, nil
	})

	body := `{"clientName":"Ana","advisor":"John Doe","type":"New BMW","delivered":"Yes","deliveryDate":"2025-06-10"}`
	rec := doRequest(t, Sales(service), http.MethodPost, "/v1/sales", body, salespersonClaims)

	require.Equal(t, http.StatusCreated, rec.Code)

	var sale domain.Sale
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sale))
	assert.Equal(t, "novo-id", sale.ID)
	assert.Equal(t, domain.DeliveredFlag(true), sale.Delivered)
}

func TestGetSaleNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSeller(ctrl)
	service.EXPECT().GetSale("nao-existe").
		Return(nil, selling.NewSaleError(selling.ErrSaleNotFound, apiErrors.ErrSaleNotFound, "nao-existe", ""))

	rec := doRequest(t, Sales(service), http.MethodGet, "/v1/sales/nao-existe", nil, salespersonClaims)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrSaleNotFound, decodeAPIError(t, rec).Code)
}

func TestUpdateSaleUsesPathID(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSeller(ctrl)

	service.EXPECT().UpdateSale(gomock.Any()).DoAndReturn(func(sale *domain.Sale) (*domain.Sale, error) {
		assert.Equal(t, "abc", sale.ID)
		return sale, nil
	})

	body := `{"id":"outro","clientName":"Ana","advisor":"John Doe"}`
	rec := doRequest(t, Sales(service), http.MethodPut, "/v1/sales/abc", body, salespersonClaims)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSeller(ctrl)
	service.EXPECT().DeleteSale("abc").Return(nil)

	rec := doRequest(t, Sales(service), http.MethodDelete, "/v1/sales/abc", nil, salespersonClaims)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListPendingSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSeller(ctrl)
	service.EXPECT().ListPendingByAdvisor().Return([]domain.AdvisorPending{{Advisor: "John Doe"}}, nil)

	rec := doRequest(t, Sales(service), http.MethodGet, "/v1/pending-sales", nil, managerClaims)

	assert.Equal(t, http.StatusOK, rec.Code)
}
