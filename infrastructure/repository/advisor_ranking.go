package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	advisorRankingTable = "advisor_ranking ar"
)

var advisorRankingColumns = []string{
	"ar.id",
	"ar.advisor",
	"ar.month",
	"ar.delivered",
	"ar.pending",
	"ar.position",
	"ar.position_change",
	"ar.previous_position",
	"ar.created_at",
	"ar.updated_at",
}

type AdvisorRankingRepository interface {
	GetByAdvisor(advisor string, month string) (*domain.AdvisorRankingItem, error)
	GetAdvisorRanking(month string) (*domain.AdvisorRankingResponse, error)
	SaveOrUpdateAdvisorRanking(ctx context.Context, month string, rankings []*domain.AdvisorRankingItem) error
}

type advisorRankingRepository struct {
	conn postgres.Conn
}

func NewAdvisorRankingRepository(conn postgres.Conn) AdvisorRankingRepository {
	return &advisorRankingRepository{
		conn: conn,
	}
}

func (r *advisorRankingRepository) GetAdvisorRanking(month string) (*domain.AdvisorRankingResponse, error) {
	queryBuilder := squirrel.
		Select(advisorRankingColumns...).
		From(advisorRankingTable).
		Where(squirrel.Eq{"ar.month": month}).
		OrderBy("ar.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.AdvisorRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanAdvisorRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	// Se não há registros, usar tempo atual para lastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.AdvisorRankingResponse{
		Month:      month,
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *advisorRankingRepository) GetByAdvisor(advisor string, month string) (*domain.AdvisorRankingItem, error) {
	query, args, err := squirrel.
		Select(advisorRankingColumns...).
		From(advisorRankingTable).
		Where(squirrel.Eq{"ar.advisor": advisor, "ar.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ranking, err := scanAdvisorRankingItem(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}
	return ranking, nil
}

// SaveOrUpdateAdvisorRanking grava o ranking do mês e remove vendedores que saíram dele,
// tudo na mesma transação
func (r *advisorRankingRepository) SaveOrUpdateAdvisorRanking(ctx context.Context, month string, rankings []*domain.AdvisorRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	upsert := squirrel.StatementBuilder.
		Insert("advisor_ranking").
		Columns(
			"advisor",
			"month",
			"delivered",
			"pending",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	advisors := make([]string, 0, len(rankings))
	for _, ranking := range rankings {
		upsert = upsert.Values(
			ranking.Advisor,
			ranking.Month,
			ranking.Delivered,
			ranking.Pending,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
		advisors = append(advisors, ranking.Advisor)
	}

	upsert = upsert.Suffix(`
		ON CONFLICT (advisor, month) DO UPDATE SET
			delivered = EXCLUDED.delivered,
			pending = EXCLUDED.pending,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	upsertSQL, upsertArgs, err := upsert.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	cleanupSQL, cleanupArgs, err := squirrel.
		Delete("advisor_ranking").
		Where(squirrel.Eq{"month": month}).
		Where(squirrel.NotEq{"advisor": advisors}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de limpeza: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if _, err := tx.Exec(cleanupSQL, cleanupArgs...); err != nil {
			return fmt.Errorf("erro ao executar query de limpeza: %w", err)
		}

		if _, err := tx.Exec(upsertSQL, upsertArgs...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		return nil
	})
}

func scanAdvisorRankingItem(row scanner) (*domain.AdvisorRankingItem, error) {
	item := &domain.AdvisorRankingItem{}

	err := row.Scan(
		&item.ID,
		&item.Advisor,
		&item.Month,
		&item.Delivered,
		&item.Pending,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
