package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	goalsTable     = "goals"
	teamGoalsTable = "team_goals"
)

type GoalRepository interface {
	GetGoal(advisor, month string) (*domain.Goal, error)
	ListGoalsByMonth(month string) ([]domain.Goal, error)
	SaveGoal(goal *domain.Goal) error
	GetTeamGoal(month string) (*domain.TeamGoal, error)
	SaveTeamGoal(goal *domain.TeamGoal) error
}

type goalRepository struct {
	conn postgres.Queryer
}

func NewGoalRepository(conn postgres.Queryer) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) GetGoal(advisor, month string) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select("id", "advisor", "month", "goal_count", "created_at", "updated_at").
		From(goalsTable).
		Where(squirrel.Eq{"advisor": advisor, "month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal := &domain.Goal{}
	err = r.conn.QueryRow(query, args...).Scan(
		&goal.ID,
		&goal.Advisor,
		&goal.Month,
		&goal.GoalCount,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) ListGoalsByMonth(month string) ([]domain.Goal, error) {
	query, args, err := squirrel.
		Select("id", "advisor", "month", "goal_count", "created_at", "updated_at").
		From(goalsTable).
		Where(squirrel.Eq{"month": month}).
		OrderBy("advisor ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	goals := make([]domain.Goal, 0)
	for rows.Next() {
		var goal domain.Goal
		if err := rows.Scan(
			&goal.ID,
			&goal.Advisor,
			&goal.Month,
			&goal.GoalCount,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

func (r *goalRepository) SaveGoal(goal *domain.Goal) error {
	query, args, err := squirrel.
		Insert(goalsTable).
		Columns("advisor", "month", "goal_count").
		Values(goal.Advisor, goal.Month, goal.GoalCount).
		Suffix(`
			ON CONFLICT (advisor, month) DO UPDATE SET
				goal_count = EXCLUDED.goal_count,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *goalRepository) GetTeamGoal(month string) (*domain.TeamGoal, error) {
	query, args, err := squirrel.
		Select("id", "month", "goal_count", "created_at", "updated_at").
		From(teamGoalsTable).
		Where(squirrel.Eq{"month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal := &domain.TeamGoal{}
	err = r.conn.QueryRow(query, args...).Scan(
		&goal.ID,
		&goal.Month,
		&goal.GoalCount,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta da equipe: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) SaveTeamGoal(goal *domain.TeamGoal) error {
	query, args, err := squirrel.
		Insert(teamGoalsTable).
		Columns("month", "goal_count").
		Values(goal.Month, goal.GoalCount).
		Suffix(`
			ON CONFLICT (month) DO UPDATE SET
				goal_count = EXCLUDED.goal_count,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
