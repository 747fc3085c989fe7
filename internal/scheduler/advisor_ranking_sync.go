// Package scheduler contém os serviços de agendamento para consolidação de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

// ErrSyncInProgress indica que já existe uma consolidação em execução
var ErrSyncInProgress = errors.New("sincronização do ranking de vendedores já em andamento")

type AdvisorRankingSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type AdvisorRankingSyncService struct {
	scheduler           *gocron.Scheduler
	saleRepo            repository.SaleRepository
	rankingRepo         repository.AdvisorRankingRepository
	config              AdvisorRankingSyncConfig
	location            *time.Location
	clock               utils.Clock
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewAdvisorRankingSyncService(
	saleRepo repository.SaleRepository,
	rankingRepo repository.AdvisorRankingRepository,
	cfg *config.Config,
) *AdvisorRankingSyncService {
	rankingConfig := AdvisorRankingSyncConfig{
		CronSchedule: cfg.AdvisorRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.AdvisorRankingSync.SyncEnabled,  // Default: desabilitado
	}

	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	scheduler := gocron.NewScheduler(location)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
		"sync_enabled":  rankingConfig.SyncEnabled,
		"timezone":      location.String(),
	}).Info("Configuração do agendador do ranking de vendedores carregada")

	return &AdvisorRankingSyncService{
		scheduler:   scheduler,
		saleRepo:    saleRepo,
		rankingRepo: rankingRepo,
		config:      rankingConfig,
		location:    location,
		clock:       time.Now,
	}
}

func (s *AdvisorRankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do ranking de vendedores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do ranking de vendedores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateAdvisorRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de vendedores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de vendedores: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de vendedores")
		s.scheduler.Stop()
	}()

	return nil
}

// beginSync marca o início de uma consolidação; falso se já houver uma em execução
func (s *AdvisorRankingSyncService) beginSync() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.clock.NowIn(s.location)
	return true
}

func (s *AdvisorRankingSyncService) endSync(err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.clock.NowIn(s.location)
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
}

func (s *AdvisorRankingSyncService) UpdateAdvisorRanking(ctx context.Context) error {
	if !s.beginSync() {
		logrus.Warn("Sincronização do ranking de vendedores já está em execução")
		return ErrSyncInProgress
	}

	_, err := s.processAdvisorRankingWithDate(ctx, s.clock.NowIn(s.location))
	s.endSync(err)

	return err
}

// processAdvisorRankingWithDate consolida o ranking do mês de ontem (em relação a processingDate),
// comparando com as posições gravadas na última execução
func (s *AdvisorRankingSyncService) processAdvisorRankingWithDate(ctx context.Context, processingDate time.Time) ([]*domain.AdvisorRankingItem, error) {
	yesterday := domain.DateIn(processingDate, s.location).AddDays(-1)
	firstDayOfMonth, _ := domain.MonthBounds(yesterday)
	month := yesterday.MonthKey()

	logrus.WithFields(logrus.Fields{
		"month":      month,
		"start_date": firstDayOfMonth.String(),
		"end_date":   yesterday.String(),
	}).Info("AdvisorRankingSyncService: consolidando vendas do mês")

	sales, err := s.saleRepo.ListSalesBetween(firstDayOfMonth, yesterday)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do mês")
	}

	stats := domain.AggregateByAdvisor(sales, domain.HouseLast())

	previousPositions := s.previousPositions(stats, month)

	items := domain.BuildAdvisorRanking(month, stats, previousPositions)

	updatedRankings := make([]*domain.AdvisorRankingItem, 0, len(items))
	for i := range items {
		updatedRankings = append(updatedRankings, &items[i])
	}

	if err := s.rankingRepo.SaveOrUpdateAdvisorRanking(ctx, month, updatedRankings); err != nil {
		return updatedRankings, errors.Wrap(err, "erro ao salvar ranking de vendedores")
	}

	logrus.WithFields(logrus.Fields{
		"month":    month,
		"advisors": len(updatedRankings),
	}).Info("Ranking de vendedores atualizado")

	return updatedRankings, nil
}

// previousPositions busca em paralelo a posição gravada de cada vendedor no mês
func (s *AdvisorRankingSyncService) previousPositions(stats []domain.AdvisorStats, month string) map[string]int {
	wg := sync.WaitGroup{}
	mu := sync.Mutex{}
	positions := make(map[string]int, len(stats))

	for _, advisor := range stats {
		wg.Add(1)

		go func(name string) {
			defer wg.Done()

			item, err := s.rankingRepo.GetByAdvisor(name, month)
			if err != nil {
				logrus.WithError(err).WithField("advisor", name).Error("AdvisorRankingSyncService: Erro ao buscar ranking anterior")
				return
			}

			if item == nil {
				return
			}

			mu.Lock()
			positions[name] = item.Position
			mu.Unlock()
		}(advisor.Name)
	}

	wg.Wait()

	return positions
}

// TriggerManualSync inicia manualmente a consolidação do ranking em segundo plano
func (s *AdvisorRankingSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização do ranking de vendedores já em andamento, ignorando solicitação manual")
		return ErrSyncInProgress
	}

	logrus.Info("Iniciando sincronização manual do ranking de vendedores")
	go func() {
		if err := s.UpdateAdvisorRanking(context.Background()); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("Erro na sincronização manual do ranking de vendedores")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *AdvisorRankingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
