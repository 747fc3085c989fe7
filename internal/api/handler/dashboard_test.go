package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/mocks"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetBoardOptions(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   dashboard.BoardOptions
	}{
		{
			name:   "Sem modificadores",
			target: "/v1/dashboard/board",
			want:   dashboard.BoardOptions{},
		},
		{
			name:   "Com modificadores e mês",
			target: "/v1/dashboard/board?month=2025-06&currentUserFirst=true&houseLast=1",
			want:   dashboard.BoardOptions{Month: "2025-06", CurrentUserFirst: true, HouseLast: true},
		},
		{
			name:   "Valor inválido é ignorado",
			target: "/v1/dashboard/board?houseLast=sim",
			want:   dashboard.BoardOptions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboard(ctrl)
			service.EXPECT().GetBoard(salespersonClaims.Session(), tt.want).
				Return(&dashboard.Board{Month: "2025-06", Advisors: []domain.AdvisorStats{}}, nil)

			rec := doRequest(t, Dashboards(service), http.MethodGet, tt.target, nil, salespersonClaims)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestGetSalespersonDashboard(t *testing.T) {
	t.Run("Vendedor sem permissão para outro painel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboard(ctrl)
		service.EXPECT().GetSalespersonDashboard(salespersonClaims.Session(), "Jane Roe").
			Return(nil, dashboard.NewDashboardError(dashboard.ErrForbidden, apiErrors.ErrInsufficientPrivilege, ""))

		rec := doRequest(t, Dashboards(service), http.MethodGet, "/v1/dashboard/salesperson?advisor=Jane+Roe", nil, salespersonClaims)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
	})

	t.Run("Painel do próprio vendedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboard(ctrl)
		service.EXPECT().GetSalespersonDashboard(salespersonClaims.Session(), "").
			Return(&dashboard.SalespersonDashboard{Advisor: "John Doe", Position: 1}, nil)

		rec := doRequest(t, Dashboards(service), http.MethodGet, "/v1/dashboard/salesperson", nil, salespersonClaims)

		require.Equal(t, http.StatusOK, rec.Code)

		var body dashboard.SalespersonDashboard
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "John Doe", body.Advisor)
	})
}

func TestGetPace(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboard(ctrl)
	service.EXPECT().GetPace(salespersonClaims.Session(), "").
		Return(&domain.MonthPace{DeliveredSoFar: 3, ProjectedTotal: 10}, nil)

	rec := doRequest(t, Dashboards(service), http.MethodGet, "/v1/dashboard/pace", nil, salespersonClaims)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetManagerDashboard(t *testing.T) {
	t.Run("Repassa o período", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboard(ctrl)
		service.EXPECT().GetManagerDashboard(dashboard.ManagerFilter{TimeFrame: "custom", Start: "2025-01-01", End: "2025-03-31"}).
			Return(&dashboard.ManagerDashboard{TimeFrame: domain.TimeFrame("custom")}, nil)

		rec := doRequest(t, Dashboards(service), http.MethodGet,
			"/v1/dashboard/manager?timeFrame=custom&start=2025-01-01&end=2025-03-31", nil, managerClaims)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Período inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboard(ctrl)
		service.EXPECT().GetManagerDashboard(gomock.Any()).
			Return(nil, dashboard.NewDashboardError(dashboard.ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "período desconhecido"))

		rec := doRequest(t, Dashboards(service), http.MethodGet, "/v1/dashboard/manager?timeFrame=semestre", nil, adminClaims)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Vendedor não acessa o painel gerencial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboard(ctrl)

		rec := doRequest(t, Dashboards(service), http.MethodGet, "/v1/dashboard/manager", nil, salespersonClaims)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetTypeTotalsAndTeamGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboard(ctrl)
	service.EXPECT().GetTypeTotals("2025-06").Return(&domain.TypeStats{}, nil)
	service.EXPECT().GetTeamGoalSummary("2025-06").Return(&domain.TeamGoalProgress{TeamGoal: 80}, nil)

	rec := doRequest(t, Dashboards(service), http.MethodGet, "/v1/dashboard/types?month=2025-06", nil, salespersonClaims)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, Dashboards(service), http.MethodGet, "/v1/dashboard/team-goal?month=2025-06", nil, salespersonClaims)
	assert.Equal(t, http.StatusOK, rec.Code)
}
