package dashboard

import "github.com/vfg2006/sales-tracker-api/internal/domain"

// BoardOptions são os modificadores opcionais de ordenação do quadro de vendedores
type BoardOptions struct {
	Month            string
	CurrentUserFirst bool
	HouseLast        bool
}

// Board é o quadro de chips do mês: vendedores ranqueados e totais por tipo
type Board struct {
	Month    string                `json:"month"`
	Advisors []domain.AdvisorStats `json:"advisors"`
	Types    domain.TypeStats      `json:"types"`
}

// SalespersonDashboard é o painel individual do vendedor
type SalespersonDashboard struct {
	Advisor  string                `json:"advisor"`
	Month    string                `json:"month"`
	Position int                   `json:"position"`
	Stats    domain.AdvisorStats   `json:"stats"`
	Pace     domain.MonthPace      `json:"pace"`
	Yearly   domain.YearlyStats    `json:"yearly"`
	History  []domain.HistoryPoint `json:"history"`
}

// ManagerDashboard é o painel gerencial para o período escolhido
type ManagerDashboard struct {
	TimeFrame    domain.TimeFrame           `json:"time_frame"`
	Range        domain.DateRange           `json:"range"`
	Performance  domain.TeamPerformance     `json:"performance"`
	Advisors     []domain.AdvisorStats      `json:"advisors"`
	Types        domain.TypeStats           `json:"types"`
	Distribution []domain.DistributionSlice `json:"distribution"`
	Chart        []domain.TeamChartPoint    `json:"chart"`
}

// ManagerFilter define o período do painel gerencial
type ManagerFilter struct {
	TimeFrame string
	Start     string
	End       string
}
