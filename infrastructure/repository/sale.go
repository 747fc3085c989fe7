package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	salesTable = "sales s"
)

var saleColumns = []string{
	"s.id",
	"s.client_name",
	"s.stock_number",
	"s.year",
	"s.make",
	"s.model",
	"s.color",
	"s.advisor",
	"s.type",
	"s.delivered",
	"s.delivery_date",
	"s.created_at",
	"s.updated_at",
}

type SaleRepository interface {
	ListSales(filter domain.SaleFilter) ([]domain.Sale, error)
	ListSalesBetween(start, end domain.CalendarDate) ([]domain.Sale, error)
	ListPendingSales() ([]domain.Sale, error)
	GetSaleByID(id string) (*domain.Sale, error)
	CreateSale(sale *domain.Sale) error
	UpdateSale(sale *domain.Sale) error
	DeleteSale(id string) error
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// buildListSalesQuery aplica no banco os filtros estruturados; filtros de tabela ficam no domínio
func buildListSalesQuery(filter domain.SaleFilter) (squirrel.SelectBuilder, error) {
	queryBuilder := squirrel.
		Select(saleColumns...).
		From(salesTable).
		OrderBy("s.delivery_date DESC NULLS LAST", "s.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Advisor != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.advisor": filter.Advisor})
	}

	if filter.Type != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.type": filter.Type})
	}

	if filter.Delivered != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.delivered": *filter.Delivered})
	}

	if filter.Month != "" {
		month, err := domain.ParseMonthKey(filter.Month)
		if err != nil {
			return queryBuilder, err
		}
		start, end := domain.MonthBounds(month)
		queryBuilder = queryBuilder.Where(squirrel.And{
			squirrel.GtOrEq{"s.delivery_date": start},
			squirrel.LtOrEq{"s.delivery_date": end},
		})
	}

	return queryBuilder, nil
}

func (r *saleRepository) ListSales(filter domain.SaleFilter) ([]domain.Sale, error) {
	queryBuilder, err := buildListSalesQuery(filter)
	if err != nil {
		return nil, err
	}

	return r.query(queryBuilder)
}

func (r *saleRepository) ListSalesBetween(start, end domain.CalendarDate) ([]domain.Sale, error) {
	queryBuilder := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.And{
			squirrel.GtOrEq{"s.delivery_date": start},
			squirrel.LtOrEq{"s.delivery_date": end},
		}).
		OrderBy("s.delivery_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(queryBuilder)
}

func (r *saleRepository) ListPendingSales() ([]domain.Sale, error) {
	queryBuilder := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"s.delivered": false}).
		OrderBy("s.delivery_date ASC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(queryBuilder)
}

func (r *saleRepository) query(queryBuilder squirrel.SelectBuilder) ([]domain.Sale, error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, *sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) GetSaleByID(id string) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale, err := scanSale(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) CreateSale(sale *domain.Sale) error {
	query, args, err := squirrel.
		Insert("sales").
		Columns(
			"id",
			"client_name",
			"stock_number",
			"year",
			"make",
			"model",
			"color",
			"advisor",
			"type",
			"delivered",
			"delivery_date",
		).
		Values(
			sale.ID,
			sale.ClientName,
			sale.StockNumber,
			sale.Year,
			sale.Make,
			sale.Model,
			sale.Color,
			sale.Advisor,
			sale.Type,
			sale.Delivered,
			sale.DeliveryDate,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *saleRepository) UpdateSale(sale *domain.Sale) error {
	query, args, err := squirrel.
		Update("sales").
		Set("client_name", sale.ClientName).
		Set("stock_number", sale.StockNumber).
		Set("year", sale.Year).
		Set("make", sale.Make).
		Set("model", sale.Model).
		Set("color", sale.Color).
		Set("advisor", sale.Advisor).
		Set("type", sale.Type).
		Set("delivered", sale.Delivered).
		Set("delivery_date", sale.DeliveryDate).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": sale.ID}).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("erro ao executar query de atualização: %w", err)
	}

	return nil
}

func (r *saleRepository) DeleteSale(id string) error {
	query, args, err := squirrel.
		Delete("sales").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de remoção: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSale(row scanner) (*domain.Sale, error) {
	sale := &domain.Sale{}
	var year sql.NullInt64

	err := row.Scan(
		&sale.ID,
		&sale.ClientName,
		&sale.StockNumber,
		&year,
		&sale.Make,
		&sale.Model,
		&sale.Color,
		&sale.Advisor,
		&sale.Type,
		&sale.Delivered,
		&sale.DeliveryDate,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sale.Year = int(year.Int64)

	return sale, nil
}
