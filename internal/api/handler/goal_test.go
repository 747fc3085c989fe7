package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/goal"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/mocks"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestSetAdvisorGoal(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		claims     *domain.Claims
		body       any
		setupMock  func(m *mocks.MockGoalManager)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "Vendedor define a própria meta",
			target: "/v1/advisors/John%20Doe/goals/2025-06",
			claims: salespersonClaims,
			body:   map[string]int{"goal_count": 12},
			setupMock: func(m *mocks.MockGoalManager) {
				m.EXPECT().SetAdvisorGoal(salespersonClaims.Session(), "John Doe", "2025-06", 12).
					Return(&domain.Goal{Advisor: "John Doe", Month: "2025-06", GoalCount: 12}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Gerente não altera meta de vendedor",
			target: "/v1/advisors/John%20Doe/goals/2025-06",
			claims: managerClaims,
			body:   map[string]int{"goal_count": 20},
			setupMock: func(m *mocks.MockGoalManager) {
				m.EXPECT().SetAdvisorGoal(managerClaims.Session(), "John Doe", "2025-06", 20).
					Return(nil, goal.NewGoalError(goal.ErrGoalForbidden, apiErrors.ErrGoalForbidden, "John Doe", "2025-06"))
			},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrGoalForbidden,
		},
		{
			name:       "goal_count ausente",
			target:     "/v1/advisors/John%20Doe/goals/2025-06",
			claims:     salespersonClaims,
			body:       map[string]int{},
			setupMock:  func(m *mocks.MockGoalManager) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:   "Meta negativa",
			target: "/v1/advisors/John%20Doe/goals/2025-06",
			claims: salespersonClaims,
			body:   map[string]int{"goal_count": -1},
			setupMock: func(m *mocks.MockGoalManager) {
				m.EXPECT().SetAdvisorGoal(gomock.Any(), "John Doe", "2025-06", -1).
					Return(nil, goal.NewGoalError(goal.ErrInvalidGoal, apiErrors.ErrInvalidGoal, "John Doe", "2025-06"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockGoalManager(ctrl)
			tt.setupMock(service)

			rec := doRequest(t, Goals(service), http.MethodPut, tt.target, tt.body, tt.claims)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestGetAdvisorGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockGoalManager(ctrl)
	service.EXPECT().GetAdvisorGoal(managerClaims.Session(), "John Doe", "2025-06").
		Return(&domain.Goal{Advisor: "John Doe", Month: "2025-06", GoalCount: 0}, nil)

	rec := doRequest(t, Goals(service), http.MethodGet, "/v1/advisors/John%20Doe/goals/2025-06", nil, managerClaims)

	require.Equal(t, http.StatusOK, rec.Code)

	var g domain.Goal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&g))
	assert.Equal(t, 0, g.GoalCount)
}

func TestListMonthGoalsRequiresManager(t *testing.T) {
	t.Run("Gerente lista metas do mês", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockGoalManager(ctrl)
		service.EXPECT().ListMonthGoals("2025-06").Return([]domain.Goal{{Advisor: "John Doe", GoalCount: 10}}, nil)

		rec := doRequest(t, Goals(service), http.MethodGet, "/v1/goals?month=2025-06", nil, managerClaims)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Vendedor não lista metas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockGoalManager(ctrl)

		rec := doRequest(t, Goals(service), http.MethodGet, "/v1/goals?month=2025-06", nil, salespersonClaims)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestTeamGoal(t *testing.T) {
	t.Run("Gerente define a meta da equipe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockGoalManager(ctrl)
		service.EXPECT().SetTeamGoal("2025-06", 80).Return(&domain.TeamGoal{Month: "2025-06", GoalCount: 80}, nil)

		rec := doRequest(t, Goals(service), http.MethodPut, "/v1/team-goals/2025-06", map[string]int{"goal_count": 80}, managerClaims)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Vendedor não define a meta da equipe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockGoalManager(ctrl)

		rec := doRequest(t, Goals(service), http.MethodPut, "/v1/team-goals/2025-06", map[string]int{"goal_count": 80}, salespersonClaims)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Mês inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockGoalManager(ctrl)
		service.EXPECT().GetTeamGoal("junho").
			Return(nil, goal.NewGoalError(goal.ErrInvalidMonth, apiErrors.ErrInvalidFormat, "", "junho"))

		rec := doRequest(t, Goals(service), http.MethodGet, "/v1/team-goals/junho", nil, salespersonClaims)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Progresso da equipe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockGoalManager(ctrl)
		progress := domain.NewTeamProgress(80, 20)
		service.EXPECT().GetTeamProgress("2025-06").Return(&progress, nil)

		rec := doRequest(t, Goals(service), http.MethodGet, "/v1/team-goals/2025-06/progress", nil, salespersonClaims)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
