package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, now time.Time) (*AdvisorRankingSyncService, *mocks.MockSaleRepository, *mocks.MockAdvisorRankingRepository) {
	ctrl := gomock.NewController(t)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	rankingRepo := mocks.NewMockAdvisorRankingRepository(ctrl)

	service := &AdvisorRankingSyncService{
		saleRepo:    saleRepo,
		rankingRepo: rankingRepo,
		config:      AdvisorRankingSyncConfig{CronSchedule: "0 6 * * *", SyncEnabled: true},
		location:    time.UTC,
		clock:       utils.FixedClock(now),
	}

	return service, saleRepo, rankingRepo
}

func deliveredSale(advisor string, delivered bool, day int) domain.Sale {
	return domain.Sale{
		Advisor:      advisor,
		Type:         domain.VehicleTypeNewBMW,
		Delivered:    domain.DeliveredFlag(delivered),
		DeliveryDate: domain.NewCalendarDate(2025, 6, day),
	}
}

func TestAdvisorRankingSyncService_processAdvisorRankingWithDate(t *testing.T) {
	// Processamento no dia 1º de julho consolida o mês de junho inteiro
	processingDate := time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC)
	june1 := domain.NewCalendarDate(2025, 6, 1)
	june30 := domain.NewCalendarDate(2025, 6, 30)

	tests := []struct {
		name     string
		sales    []domain.Sale
		previous map[string]*domain.AdvisorRankingItem
		validate func(t *testing.T, result []*domain.AdvisorRankingItem)
	}{
		{
			name: "Vendedores novos no mês - sem variação de posição",
			sales: []domain.Sale{
				deliveredSale("Alice", true, 2),
				deliveredSale("Bob", true, 3),
				deliveredSale("Bob", true, 4),
			},
			previous: map[string]*domain.AdvisorRankingItem{},
			validate: func(t *testing.T, result []*domain.AdvisorRankingItem) {
				require.Len(t, result, 2)
				assert.Equal(t, "Bob", result[0].Advisor)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 2, result[0].Delivered)
				assert.Equal(t, "2025-06", result[0].Month)
				assert.Equal(t, 0, result[0].PositionChange)
				assert.Equal(t, 0, result[0].PreviousPosition)
				assert.Equal(t, "Alice", result[1].Advisor)
				assert.Equal(t, 2, result[1].Position)
			},
		},
		{
			name: "Vendedor ultrapassa outro - variação positiva e negativa",
			sales: []domain.Sale{
				deliveredSale("Alice", true, 2),
				deliveredSale("Alice", true, 5),
				deliveredSale("Alice", false, 20),
				deliveredSale("Bob", true, 3),
			},
			previous: map[string]*domain.AdvisorRankingItem{
				"Alice": {Advisor: "Alice", Position: 2},
				"Bob":   {Advisor: "Bob", Position: 1},
			},
			validate: func(t *testing.T, result []*domain.AdvisorRankingItem) {
				require.Len(t, result, 2)
				assert.Equal(t, "Alice", result[0].Advisor)
				assert.Equal(t, 1, result[0].PositionChange)
				assert.Equal(t, 2, result[0].PreviousPosition)
				assert.Equal(t, 1, result[0].Pending)
				assert.Equal(t, "Bob", result[1].Advisor)
				assert.Equal(t, -1, result[1].PositionChange)
			},
		},
		{
			name: "House fica sempre no final do ranking",
			sales: []domain.Sale{
				deliveredSale(domain.HouseAdvisor, true, 2),
				deliveredSale(domain.HouseAdvisor, true, 3),
				deliveredSale("Carol", true, 4),
			},
			previous: map[string]*domain.AdvisorRankingItem{},
			validate: func(t *testing.T, result []*domain.AdvisorRankingItem) {
				require.Len(t, result, 2)
				assert.Equal(t, "Carol", result[0].Advisor)
				assert.Equal(t, domain.HouseAdvisor, result[1].Advisor)
				assert.Equal(t, 2, result[1].Position)
			},
		},
		{
			name:     "Mês sem vendas - ranking vazio",
			sales:    []domain.Sale{},
			previous: map[string]*domain.AdvisorRankingItem{},
			validate: func(t *testing.T, result []*domain.AdvisorRankingItem) {
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, saleRepo, rankingRepo := newTestSyncService(t, processingDate)

			saleRepo.EXPECT().ListSalesBetween(june1, june30).Return(tt.sales, nil)

			rankingRepo.EXPECT().
				GetByAdvisor(gomock.Any(), "2025-06").
				DoAndReturn(func(advisor, month string) (*domain.AdvisorRankingItem, error) {
					return tt.previous[advisor], nil
				}).
				AnyTimes()

			var saved []*domain.AdvisorRankingItem
			rankingRepo.EXPECT().
				SaveOrUpdateAdvisorRanking(gomock.Any(), "2025-06", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, rankings []*domain.AdvisorRankingItem) error {
					saved = rankings
					return nil
				})

			result, err := service.processAdvisorRankingWithDate(context.Background(), processingDate)
			require.NoError(t, err)
			assert.Equal(t, result, saved)
			tt.validate(t, result)
		})
	}
}

func TestAdvisorRankingSyncService_UpdateAdvisorRanking(t *testing.T) {
	now := time.Date(2025, 6, 15, 6, 0, 0, 0, time.UTC)

	t.Run("Erro ao buscar vendas fica registrado no status", func(t *testing.T) {
		service, saleRepo, _ := newTestSyncService(t, now)

		saleRepo.EXPECT().
			ListSalesBetween(domain.NewCalendarDate(2025, 6, 1), domain.NewCalendarDate(2025, 6, 14)).
			Return(nil, errors.New("conexão recusada"))

		err := service.UpdateAdvisorRanking(context.Background())
		require.Error(t, err)

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Contains(t, status["last_sync_error"], "conexão recusada")
		assert.Equal(t, now, status["last_sync_completed_at"])
	})

	t.Run("Execução concorrente é recusada", func(t *testing.T) {
		service, _, _ := newTestSyncService(t, now)
		service.syncRunning = true

		assert.True(t, errors.Is(service.UpdateAdvisorRanking(context.Background()), ErrSyncInProgress))
		assert.True(t, errors.Is(service.TriggerManualSync(), ErrSyncInProgress))
	})

	t.Run("Erro ao salvar devolve o ranking calculado", func(t *testing.T) {
		service, saleRepo, rankingRepo := newTestSyncService(t, now)

		saleRepo.EXPECT().ListSalesBetween(gomock.Any(), gomock.Any()).Return([]domain.Sale{deliveredSale("Alice", true, 2)}, nil)
		rankingRepo.EXPECT().GetByAdvisor("Alice", "2025-06").Return(nil, errors.New("timeout"))
		rankingRepo.EXPECT().SaveOrUpdateAdvisorRanking(gomock.Any(), "2025-06", gomock.Any()).Return(errors.New("deadlock"))

		result, err := service.processAdvisorRankingWithDate(context.Background(), now)
		require.Error(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 0, result[0].PreviousPosition)
	})
}

func TestAdvisorRankingSyncService_StartDisabled(t *testing.T) {
	service, _, _ := newTestSyncService(t, time.Now())
	service.config.SyncEnabled = false

	assert.NoError(t, service.Start(context.Background()))
}
