package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type sqliteSolution struct {
	db *sql.DB
}

// NewSQLiteSolutionRepository expects the solutions table created by storage.SQLiteStorage.Init.
func NewSQLiteSolutionRepository(db *sql.DB) SolutionRepository {
	return &sqliteSolution{
		db: db,
	}
}

func (that *sqliteSolution) CreateOrUpdate(ctx context.Context, solution *entity.Solution) error {
	query := `INSERT INTO solutions (position_key, move_row, move_col, score, nodes) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(position_key) DO UPDATE SET
			move_row = excluded.move_row, move_col = excluded.move_col, score = excluded.score, nodes = excluded.nodes`

	_, err := that.db.ExecContext(ctx, query, solution.Key, solution.Row, solution.Col, solution.Value, solution.Nodes)
	if err != nil {
		return fmt.Errorf("failed to upsert solution: %w", err)
	}

	return nil
}

func (that *sqliteSolution) GetByKey(ctx context.Context, key string) (*entity.Solution, error) {
	query := `SELECT position_key, move_row, move_col, score, nodes FROM solutions WHERE position_key = ?`

	var solution entity.Solution
	err := that.db.QueryRowContext(ctx, query, key).Scan(&solution.Key, &solution.Row, &solution.Col, &solution.Value, &solution.Nodes)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSolutionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get solution by key: %w", err)
	}

	return &solution, nil
}
