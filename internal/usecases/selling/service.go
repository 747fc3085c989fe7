package selling

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

type Seller interface {
	ListSales(filter domain.SaleFilter) ([]domain.Sale, error)
	GetSale(id string) (*domain.Sale, error)
	CreateSale(sale *domain.Sale) (*domain.Sale, error)
	UpdateSale(sale *domain.Sale) (*domain.Sale, error)
	DeleteSale(id string) error
	ListPendingByAdvisor() ([]domain.AdvisorPending, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	cfg      *config.Config
	clock    utils.Clock
}

func NewService(saleRepo repository.SaleRepository, cfg *config.Config) Seller {
	return &Service{
		saleRepo: saleRepo,
		cfg:      cfg,
		clock:    time.Now,
	}
}

// ListSales aplica os filtros estruturados no banco e os filtros de tabela em memória
func (s *Service) ListSales(filter domain.SaleFilter) ([]domain.Sale, error) {
	if err := filter.Validate(); err != nil {
		return nil, NewSaleError(ErrInvalidFilter, apiErrors.ErrInvalidRequest, "", err.Error())
	}

	sales, err := s.saleRepo.ListSales(filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar vendas")
		return nil, NewSaleError(err, apiErrors.ErrDatabaseOperation, "", "Erro ao listar vendas")
	}

	if len(filter.Columns) > 0 {
		sales = domain.FilterSales(sales, filter.Columns)
	}

	if filter.SortBy != "" {
		sales = domain.SortSales(sales, filter.SortBy, filter.SortDir == domain.SortDesc)
	}

	return sales, nil
}

func (s *Service) GetSale(id string) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetSaleByID(id)
	if err != nil {
		return nil, NewSaleError(err, apiErrors.ErrDatabaseOperation, id, "Erro ao consultar venda")
	}

	if sale == nil {
		return nil, NewSaleError(ErrSaleNotFound, apiErrors.ErrSaleNotFound, id, "")
	}

	return sale, nil
}

func (s *Service) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	if err := validateSale(sale); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewSaleError(err, apiErrors.ErrInternalServer, "", "Erro ao gerar identificador da venda")
	}
	sale.ID = id

	if err := s.saleRepo.CreateSale(sale); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewSaleError(ErrSaleAlreadyExists, apiErrors.ErrSaleAlreadyExists, sale.ID, "")
		}
		return nil, NewSaleError(err, apiErrors.ErrDatabaseOperation, sale.ID, "Erro ao criar venda")
	}

	logrus.WithFields(logrus.Fields{
		"sale_id": sale.ID,
		"advisor": sale.Advisor,
		"bucket":  domain.Classify(*sale).Bucket,
	}).Info("Venda cadastrada")

	return sale, nil
}

func (s *Service) UpdateSale(sale *domain.Sale) (*domain.Sale, error) {
	if sale.ID == "" {
		return nil, NewSaleError(ErrInvalidSale, apiErrors.ErrMissingRequiredData, "", "ID é obrigatório")
	}

	if err := validateSale(sale); err != nil {
		return nil, err
	}

	if err := s.saleRepo.UpdateSale(sale); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewSaleError(ErrSaleNotFound, apiErrors.ErrSaleNotFound, sale.ID, "")
		}
		return nil, NewSaleError(err, apiErrors.ErrDatabaseOperation, sale.ID, "Erro ao atualizar venda")
	}

	return sale, nil
}

func (s *Service) DeleteSale(id string) error {
	if err := s.saleRepo.DeleteSale(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewSaleError(ErrSaleNotFound, apiErrors.ErrSaleNotFound, id, "")
		}
		return NewSaleError(err, apiErrors.ErrDatabaseOperation, id, "Erro ao remover venda")
	}

	return nil
}

// ListPendingByAdvisor agrupa as vendas pendentes por vendedor para os próximos meses
func (s *Service) ListPendingByAdvisor() ([]domain.AdvisorPending, error) {
	pending, err := s.saleRepo.ListPendingSales()
	if err != nil {
		return nil, NewSaleError(err, apiErrors.ErrDatabaseOperation, "", "Erro ao listar vendas pendentes")
	}

	today := domain.DateIn(s.clock.NowIn(s.cfg.App.Location), s.cfg.App.Location)

	return domain.GroupPendingByAdvisor(pending, today, s.cfg.Dashboard.PendingWindowMonths), nil
}

func validateSale(sale *domain.Sale) error {
	// O nome do vendedor é gravado como veio; o agrupamento compara nomes exatos
	sale.ClientName = strings.TrimSpace(sale.ClientName)

	if sale.Advisor == "" || sale.ClientName == "" {
		return NewSaleError(ErrInvalidSale, apiErrors.ErrMissingRequiredData, sale.ID, "Cliente e vendedor são obrigatórios")
	}

	if sale.Type != "" && !domain.BucketForType(sale.Type).IsClassified() {
		logrus.WithFields(logrus.Fields{
			"sale_id": sale.ID,
			"type":    sale.Type,
		}).Warn("Tipo de veículo desconhecido, a venda ficará sem classificação")
	}

	return nil
}
