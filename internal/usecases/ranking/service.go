package ranking

import (
	"time"

	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

type RankingService interface {
	GetAdvisorRanking(month string) (*domain.AdvisorRankingResponse, error)
}

type AdvisorRankingService struct {
	AdvisorRankingRepository repository.AdvisorRankingRepository
	cfg                      *config.Config
	clock                    utils.Clock
}

func NewAdvisorRankingService(advisorRankingRepository repository.AdvisorRankingRepository, cfg *config.Config) RankingService {
	return &AdvisorRankingService{
		AdvisorRankingRepository: advisorRankingRepository,
		cfg:                      cfg,
		clock:                    time.Now,
	}
}

// GetAdvisorRanking retorna o ranking consolidado do mês (mês corrente quando vazio)
func (s *AdvisorRankingService) GetAdvisorRanking(month string) (*domain.AdvisorRankingResponse, error) {
	if month == "" {
		month = domain.DateIn(s.clock.NowIn(s.cfg.App.Location), s.cfg.App.Location).MonthKey()
	} else if _, err := domain.ParseMonthKey(month); err != nil {
		return nil, err
	}

	ranking, err := s.AdvisorRankingRepository.GetAdvisorRanking(month)
	if err != nil {
		return nil, err
	}

	if ranking == nil {
		return &domain.AdvisorRankingResponse{Month: month, Ranking: []domain.AdvisorRankingItem{}}, nil
	}

	return ranking, nil
}
