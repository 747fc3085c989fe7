package goal

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

var (
	admin       = domain.Session{UserID: 1, UserName: "Admin", RoleID: domain.RoleAdmin}
	manager     = domain.Session{UserID: 2, UserName: "Maria Manager", RoleID: domain.RoleManager}
	alice       = domain.Session{UserID: 3, UserName: "Alice Smith", RoleID: domain.RoleSalesperson}
	bob         = domain.Session{UserID: 4, UserName: "Bob Jones", RoleID: domain.RoleSalesperson}
	testInstant = time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)
)

func newTestService(t *testing.T) (*Service, *mocks.MockGoalRepository, *mocks.MockSaleRepository) {
	ctrl := gomock.NewController(t)
	goalRepo := mocks.NewMockGoalRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)

	cfg := &config.Config{}
	cfg.App.Location = time.UTC

	return &Service{goalRepo: goalRepo, saleRepo: saleRepo, cfg: cfg, clock: utils.FixedClock(testInstant)}, goalRepo, saleRepo
}

func goalCode(t *testing.T, err error) string {
	var goalErr *GoalError
	require.True(t, errors.As(err, &goalErr), "erro esperado do tipo GoalError: %v", err)
	return goalErr.Code
}

func TestService_GetAdvisorGoal(t *testing.T) {
	tests := []struct {
		name      string
		session   domain.Session
		forbidden bool
	}{
		{name: "Admin vê qualquer vendedor", session: admin},
		{name: "Gerente vê qualquer vendedor", session: manager},
		{name: "Vendedor vê a própria meta", session: alice},
		{name: "Vendedor não vê a meta de outro", session: bob, forbidden: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, goalRepo, _ := newTestService(t)

			if !tt.forbidden {
				goalRepo.EXPECT().GetGoal("Alice Smith", "2025-06").Return(&domain.Goal{Advisor: "Alice Smith", Month: "2025-06", GoalCount: 12}, nil)
			}

			goal, err := service.GetAdvisorGoal(tt.session, "Alice Smith", "2025-06")
			if tt.forbidden {
				require.Error(t, err)
				assert.Equal(t, apiErrors.ErrGoalForbidden, goalCode(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 12, goal.GoalCount)
		})
	}

	t.Run("Meta não cadastrada vale zero no mês corrente", func(t *testing.T) {
		service, goalRepo, _ := newTestService(t)
		goalRepo.EXPECT().GetGoal("Alice Smith", "2025-06").Return(nil, nil)

		goal, err := service.GetAdvisorGoal(alice, "Alice Smith", "")
		require.NoError(t, err)
		assert.Equal(t, domain.Goal{Advisor: "Alice Smith", Month: "2025-06"}, *goal)
	})

	t.Run("Mês mal formatado", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.GetAdvisorGoal(admin, "Alice Smith", "2025/06")
		assert.True(t, errors.Is(err, ErrInvalidMonth))
		assert.Equal(t, apiErrors.ErrInvalidFormat, goalCode(t, err))
	})
}

func TestService_SetAdvisorGoal(t *testing.T) {
	t.Run("Vendedor altera a própria meta", func(t *testing.T) {
		service, goalRepo, _ := newTestService(t)
		goalRepo.EXPECT().SaveGoal(&domain.Goal{Advisor: "Alice Smith", Month: "2025-07", GoalCount: 15}).Return(nil)

		goal, err := service.SetAdvisorGoal(alice, "Alice Smith", "2025-07", 15)
		require.NoError(t, err)
		assert.Equal(t, 15, goal.GoalCount)
	})

	t.Run("Gerente não altera meta individual", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.SetAdvisorGoal(manager, "Alice Smith", "2025-07", 15)
		assert.Equal(t, apiErrors.ErrGoalForbidden, goalCode(t, err))
	})

	t.Run("Meta negativa", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.SetAdvisorGoal(alice, "Alice Smith", "2025-07", -1)
		assert.Equal(t, apiErrors.ErrInvalidGoal, goalCode(t, err))
	})
}

func TestService_TeamGoal(t *testing.T) {
	t.Run("Meta da equipe ausente vale zero", func(t *testing.T) {
		service, goalRepo, _ := newTestService(t)
		goalRepo.EXPECT().GetTeamGoal("2025-06").Return(nil, nil)

		goal, err := service.GetTeamGoal("2025-06")
		require.NoError(t, err)
		assert.Equal(t, 0, goal.GoalCount)
		assert.Equal(t, "2025-06", goal.Month)
	})

	t.Run("Grava meta da equipe", func(t *testing.T) {
		service, goalRepo, _ := newTestService(t)
		goalRepo.EXPECT().SaveTeamGoal(&domain.TeamGoal{Month: "2025-06", GoalCount: 40}).Return(nil)

		goal, err := service.SetTeamGoal("2025-06", 40)
		require.NoError(t, err)
		assert.Equal(t, 40, goal.GoalCount)
	})

	t.Run("Falha no banco", func(t *testing.T) {
		service, goalRepo, _ := newTestService(t)
		goalRepo.EXPECT().ListGoalsByMonth("2025-06").Return(nil, errors.New("timeout"))

		_, err := service.ListMonthGoals("2025-06")
		assert.Equal(t, apiErrors.ErrDatabaseOperation, goalCode(t, err))
	})
}

func TestService_GetTeamProgress(t *testing.T) {
	service, goalRepo, saleRepo := newTestService(t)

	goalRepo.EXPECT().GetTeamGoal("2025-06").Return(&domain.TeamGoal{Month: "2025-06", GoalCount: 4}, nil)
	saleRepo.EXPECT().
		ListSalesBetween(domain.NewCalendarDate(2025, 6, 1), domain.NewCalendarDate(2025, 6, 30)).
		Return([]domain.Sale{
			{Advisor: "Alice", Delivered: true},
			{Advisor: "Bob", Delivered: true},
			{Advisor: "Bob"},
		}, nil)

	progress, err := service.GetTeamProgress("")
	require.NoError(t, err)
	assert.Equal(t, domain.TeamProgress{Goal: 4, Current: 2, Remaining: 2, Percentage: 50, IsComplete: false}, *progress)
}
