package dashboard

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

type Dashboard interface {
	GetBoard(session domain.Session, opts BoardOptions) (*Board, error)
	GetTypeTotals(month string) (*domain.TypeStats, error)
	GetSalespersonDashboard(session domain.Session, advisor string) (*SalespersonDashboard, error)
	GetPace(session domain.Session, advisor string) (*domain.MonthPace, error)
	GetManagerDashboard(filter ManagerFilter) (*ManagerDashboard, error)
	GetTeamGoalSummary(month string) (*domain.TeamGoalProgress, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	goalRepo repository.GoalRepository
	userRepo repository.UserRepository
	cfg      *config.Config
	clock    utils.Clock
}

func NewService(
	saleRepo repository.SaleRepository,
	goalRepo repository.GoalRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) Dashboard {
	return &Service{
		saleRepo: saleRepo,
		goalRepo: goalRepo,
		userRepo: userRepo,
		cfg:      cfg,
		clock:    time.Now,
	}
}

func (s *Service) today() domain.CalendarDate {
	return domain.DateIn(s.clock.NowIn(s.cfg.App.Location), s.cfg.App.Location)
}

// monthOf resolve a chave YYYY-MM; vazio equivale ao mês corrente
func (s *Service) monthOf(month string) (domain.CalendarDate, error) {
	if month == "" {
		return s.today().AddMonths(0), nil
	}

	first, err := domain.ParseMonthKey(month)
	if err != nil {
		return domain.CalendarDate{}, NewDashboardError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, err.Error())
	}

	return first, nil
}

func (s *Service) salesBetween(start, end domain.CalendarDate) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSalesBetween(start, end)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start": start.String(),
			"end":   end.String(),
		}).Error("Erro ao carregar vendas do período")
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return sales, nil
}

func (s *Service) monthSales(first domain.CalendarDate) ([]domain.Sale, error) {
	start, end := domain.MonthBounds(first)
	return s.salesBetween(start, end)
}

// GetBoard monta o quadro de chips do mês com os modificadores de ordenação pedidos
func (s *Service) GetBoard(session domain.Session, opts BoardOptions) (*Board, error) {
	first, err := s.monthOf(opts.Month)
	if err != nil {
		return nil, err
	}

	sales, err := s.monthSales(first)
	if err != nil {
		return nil, err
	}

	modifiers := make([]domain.RankingModifier, 0, 2)
	if opts.CurrentUserFirst {
		modifiers = append(modifiers, domain.CurrentUserFirst(session))
	}
	if opts.HouseLast {
		modifiers = append(modifiers, domain.HouseLast())
	}

	return &Board{
		Month:    first.MonthKey(),
		Advisors: domain.AggregateByAdvisor(sales, modifiers...),
		Types:    domain.AggregateByType(sales),
	}, nil
}

func (s *Service) GetTypeTotals(month string) (*domain.TypeStats, error) {
	first, err := s.monthOf(month)
	if err != nil {
		return nil, err
	}

	sales, err := s.monthSales(first)
	if err != nil {
		return nil, err
	}

	stats := domain.AggregateByType(sales)
	return &stats, nil
}

func (s *Service) resolveAdvisor(session domain.Session, advisor string) (string, error) {
	if advisor == "" {
		advisor = session.UserName
	}

	if advisor == "" || !session.CanViewAdvisor(advisor) {
		return "", NewDashboardError(ErrForbidden, apiErrors.ErrInsufficientPrivilege, advisor)
	}

	return advisor, nil
}

func (s *Service) advisorGoal(advisor, month string) (int, error) {
	goal, err := s.goalRepo.GetGoal(advisor, month)
	if err != nil {
		return 0, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if goal == nil {
		return 0, nil
	}
	return goal.GoalCount, nil
}

// GetPace projeta o fechamento do mês corrente do vendedor
func (s *Service) GetPace(session domain.Session, advisor string) (*domain.MonthPace, error) {
	advisor, err := s.resolveAdvisor(session, advisor)
	if err != nil {
		return nil, err
	}

	today := s.today()

	sales, err := s.monthSales(today)
	if err != nil {
		return nil, err
	}

	goal, err := s.advisorGoal(advisor, today.MonthKey())
	if err != nil {
		return nil, err
	}

	pace := domain.ProjectMonthPace(domain.NewPaceInput(domain.FilterByAdvisor(sales, advisor), today, goal))
	return &pace, nil
}

// GetSalespersonDashboard monta o painel individual: ritmo do mês, histórico e posição no ranking
func (s *Service) GetSalespersonDashboard(session domain.Session, advisor string) (*SalespersonDashboard, error) {
	advisor, err := s.resolveAdvisor(session, advisor)
	if err != nil {
		return nil, err
	}

	today := s.today()
	_, monthEnd := domain.MonthBounds(today)
	historyStart := today.AddMonths(-s.cfg.Dashboard.SalesHistoryMonths)

	teamSales, err := s.salesBetween(historyStart, monthEnd)
	if err != nil {
		return nil, err
	}

	goal, err := s.advisorGoal(advisor, today.MonthKey())
	if err != nil {
		return nil, err
	}

	advisorSales := domain.FilterByAdvisor(teamSales, advisor)
	monthSales := domain.FilterByRange(teamSales, domain.MonthRange(today))

	dashboard := &SalespersonDashboard{
		Advisor: advisor,
		Month:   today.MonthKey(),
		Stats:   domain.AdvisorStats{Name: advisor, ShortName: domain.ShortAdvisorName(advisor)},
		Pace:    domain.ProjectMonthPace(domain.NewPaceInput(advisorSales, today, goal)),
		Yearly:  domain.ComputeYearlyStats(advisorSales, today),
		History: domain.MonthlyHistory(advisorSales, teamSales, today),
	}

	for i, stats := range domain.AggregateByAdvisor(monthSales, domain.HouseLast()) {
		if stats.Name == advisor {
			stats.Sales = nil
			dashboard.Stats = stats
			dashboard.Position = i + 1
			break
		}
	}

	return dashboard, nil
}

// activeMembers conta apenas vendedores ativos; gerentes não entram na média por membro
func (s *Service) activeMembers() (int, error) {
	users, err := s.userRepo.ListUsersByRoles([]int{domain.RoleSalesperson})
	if err != nil {
		return 0, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	count := 0
	for _, user := range users {
		if user.IsActive() {
			count++
		}
	}
	return count, nil
}

// GetManagerDashboard consolida a equipe no período e o gráfico dos últimos 12 meses
func (s *Service) GetManagerDashboard(filter ManagerFilter) (*ManagerDashboard, error) {
	timeFrame, err := domain.ParseTimeFrame(filter.TimeFrame)
	if err != nil {
		return nil, NewDashboardError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, err.Error())
	}

	today := s.today()

	period, err := timeFrame.Range(today, domain.ParseCalendarDate(filter.Start), domain.ParseCalendarDate(filter.End))
	if err != nil {
		return nil, NewDashboardError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, err.Error())
	}

	sales, err := s.salesBetween(period.Start, period.End)
	if err != nil {
		return nil, err
	}

	chartSales, err := s.salesBetween(today.AddMonths(-domain.HistoryMonths), today.AddMonths(0).AddDays(-1))
	if err != nil {
		return nil, err
	}

	members, err := s.activeMembers()
	if err != nil {
		return nil, err
	}

	advisors := domain.AggregateByAdvisor(sales, domain.HouseLast())
	for i := range advisors {
		advisors[i].Sales = nil
	}

	return &ManagerDashboard{
		TimeFrame:    timeFrame,
		Range:        period,
		Performance:  domain.ComputeTeamPerformance(sales, members),
		Advisors:     advisors,
		Types:        domain.AggregateByType(sales),
		Distribution: domain.SalesDistribution(sales),
		Chart:        domain.TeamMonthlyChart(chartSales, members, today),
	}, nil
}

// GetTeamGoalSummary consolida metas individuais e entregas contra a meta da equipe
func (s *Service) GetTeamGoalSummary(month string) (*domain.TeamGoalProgress, error) {
	first, err := s.monthOf(month)
	if err != nil {
		return nil, err
	}

	key := first.MonthKey()

	goals, err := s.goalRepo.ListGoalsByMonth(key)
	if err != nil {
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	teamGoal, err := s.goalRepo.GetTeamGoal(key)
	if err != nil {
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	target := 0
	if teamGoal != nil {
		target = teamGoal.GoalCount
	}

	sales, err := s.monthSales(first)
	if err != nil {
		return nil, err
	}

	progress := domain.AggregateTeamGoal(domain.GoalMap(goals), target, sales)
	return &progress, nil
}
