package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestAdvisorRankingService_GetAdvisorRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdvisorRankingRepository(ctrl)

	cfg := &config.Config{}
	cfg.App.Location = time.UTC

	service := &AdvisorRankingService{
		AdvisorRankingRepository: repo,
		cfg:                      cfg,
		clock:                    utils.FixedClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)),
	}

	t.Run("Mês corrente quando não informado", func(t *testing.T) {
		expected := &domain.AdvisorRankingResponse{
			Month:   "2025-06",
			Ranking: []domain.AdvisorRankingItem{{Advisor: "Alice", Position: 1, PositionChange: 2}},
		}
		repo.EXPECT().GetAdvisorRanking("2025-06").Return(expected, nil)

		ranking, err := service.GetAdvisorRanking("")
		require.NoError(t, err)
		assert.Equal(t, expected, ranking)
	})

	t.Run("Mês sem ranking retorna lista vazia", func(t *testing.T) {
		repo.EXPECT().GetAdvisorRanking("2025-01").Return(nil, nil)

		ranking, err := service.GetAdvisorRanking("2025-01")
		require.NoError(t, err)
		assert.Equal(t, "2025-01", ranking.Month)
		assert.Empty(t, ranking.Ranking)
	})

	t.Run("Mês inválido", func(t *testing.T) {
		_, err := service.GetAdvisorRanking("01-2025")
		assert.Error(t, err)
	})
}
