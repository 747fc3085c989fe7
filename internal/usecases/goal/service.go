package goal

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

type GoalManager interface {
	GetAdvisorGoal(session domain.Session, advisor, month string) (*domain.Goal, error)
	SetAdvisorGoal(session domain.Session, advisor, month string, goalCount int) (*domain.Goal, error)
	ListMonthGoals(month string) ([]domain.Goal, error)
	GetTeamGoal(month string) (*domain.TeamGoal, error)
	SetTeamGoal(month string, goalCount int) (*domain.TeamGoal, error)
	GetTeamProgress(month string) (*domain.TeamProgress, error)
}

type Service struct {
	goalRepo repository.GoalRepository
	saleRepo repository.SaleRepository
	cfg      *config.Config
	clock    utils.Clock
}

func NewService(goalRepo repository.GoalRepository, saleRepo repository.SaleRepository, cfg *config.Config) GoalManager {
	return &Service{
		goalRepo: goalRepo,
		saleRepo: saleRepo,
		cfg:      cfg,
		clock:    time.Now,
	}
}

// resolveMonth valida a chave YYYY-MM; vazio equivale ao mês corrente
func (s *Service) resolveMonth(month string) (string, error) {
	if month == "" {
		today := domain.DateIn(s.clock.NowIn(s.cfg.App.Location), s.cfg.App.Location)
		return today.MonthKey(), nil
	}

	if _, err := domain.ParseMonthKey(month); err != nil {
		return "", NewGoalError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, "", month)
	}

	return month, nil
}

// GetAdvisorGoal retorna a meta do vendedor; meta não cadastrada vale 0
func (s *Service) GetAdvisorGoal(session domain.Session, advisor, month string) (*domain.Goal, error) {
	month, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	if !session.CanViewAdvisor(advisor) {
		return nil, NewGoalError(ErrGoalForbidden, apiErrors.ErrGoalForbidden, advisor, month)
	}

	goal, err := s.goalRepo.GetGoal(advisor, month)
	if err != nil {
		logrus.WithError(err).WithField("advisor", advisor).Error("Erro ao consultar meta")
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, advisor, month)
	}

	if goal == nil {
		return &domain.Goal{Advisor: advisor, Month: month}, nil
	}

	return goal, nil
}

// SetAdvisorGoal grava a meta; somente o próprio vendedor pode alterar a sua
func (s *Service) SetAdvisorGoal(session domain.Session, advisor, month string, goalCount int) (*domain.Goal, error) {
	month, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	if !session.CanEditGoal(advisor) {
		return nil, NewGoalError(ErrGoalForbidden, apiErrors.ErrGoalForbidden, advisor, month)
	}

	if goalCount < 0 {
		return nil, NewGoalError(ErrInvalidGoal, apiErrors.ErrInvalidGoal, advisor, month)
	}

	goal := &domain.Goal{Advisor: advisor, Month: month, GoalCount: goalCount}
	if err := s.goalRepo.SaveGoal(goal); err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, advisor, month)
	}

	logrus.WithFields(logrus.Fields{
		"advisor": advisor,
		"month":   month,
		"goal":    goalCount,
	}).Info("Meta do vendedor atualizada")

	return goal, nil
}

func (s *Service) ListMonthGoals(month string) ([]domain.Goal, error) {
	month, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.ListGoalsByMonth(month)
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, "", month)
	}

	return goals, nil
}

func (s *Service) GetTeamGoal(month string) (*domain.TeamGoal, error) {
	month, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.GetTeamGoal(month)
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, "", month)
	}

	if goal == nil {
		return &domain.TeamGoal{Month: month}, nil
	}

	return goal, nil
}

func (s *Service) SetTeamGoal(month string, goalCount int) (*domain.TeamGoal, error) {
	month, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	if goalCount < 0 {
		return nil, NewGoalError(ErrInvalidGoal, apiErrors.ErrInvalidGoal, "", month)
	}

	goal := &domain.TeamGoal{Month: month, GoalCount: goalCount}
	if err := s.goalRepo.SaveTeamGoal(goal); err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, "", month)
	}

	return goal, nil
}

// GetTeamProgress compara as entregas do mês com a meta da equipe
func (s *Service) GetTeamProgress(month string) (*domain.TeamProgress, error) {
	teamGoal, err := s.GetTeamGoal(month)
	if err != nil {
		return nil, err
	}

	first, _ := domain.ParseMonthKey(teamGoal.Month)
	start, end := domain.MonthBounds(first)

	sales, err := s.saleRepo.ListSalesBetween(start, end)
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrDatabaseOperation, "", teamGoal.Month)
	}

	delivered := 0
	for _, sale := range sales {
		if domain.Classify(sale).Delivered {
			delivered++
		}
	}

	progress := domain.NewTeamProgress(teamGoal.GoalCount, delivered)
	return &progress, nil
}
