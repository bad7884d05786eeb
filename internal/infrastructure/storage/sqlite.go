package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"svw.info/fitcube/internal/domain"
)

const createSolutions = `CREATE TABLE IF NOT EXISTS solutions (
    solution_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    sequence TEXT NOT NULL,
    moves TEXT NOT NULL,
    nodes INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);`

// SQLite stores solutions in a single table of dir/fitcube.db. Sequence
// and moves are kept as JSON text.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates dir if needed, opens the database and applies the schema.
func OpenSQLite(dir string) (*SQLite, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "fitcube.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(createSolutions); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, sol *domain.Solution) error {
	if sol == nil || sol.ID == "" {
		return errors.New("invalid solution: missing ID")
	}
	seq, err := json.Marshal(sol.Sequence)
	if err != nil {
		return err
	}
	moves, err := json.Marshal(sol.Moves)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO solutions (solution_id, name, sequence, moves, nodes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sol.ID, sol.Name, string(seq), string(moves), sol.Nodes, sol.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert solution: %w", err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Solution, error) {
	var (
		out        domain.Solution
		seq, moves string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT solution_id, name, sequence, moves, nodes, created_at FROM solutions WHERE solution_id = ?`, id,
	).Scan(&out.ID, &out.Name, &seq, &moves, &out.Nodes, &out.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("query solution: %w", err)
	}
	if err := json.Unmarshal([]byte(seq), &out.Sequence); err != nil {
		return nil, fmt.Errorf("decode sequence: %w", err)
	}
	if err := json.Unmarshal([]byte(moves), &out.Moves); err != nil {
		return nil, fmt.Errorf("decode moves: %w", err)
	}
	return &out, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT solution_id, name, json_array_length(moves), created_at FROM solutions ORDER BY created_at, solution_id`)
	if err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}
	defer rows.Close()

	out := []domain.SolutionMeta{}
	for rows.Next() {
		var m domain.SolutionMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.Moves, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
