package repository

import (
	"context"
	"fmt"
)

// StatusRepository answers diagnostic questions about the database itself
type StatusRepository interface {
	ListTables(ctx context.Context) ([]string, error)
}

type statusRepository struct {
	db DBTX
}

// NewStatusRepository creates a new StatusRepository
func NewStatusRepository(db DBTX) StatusRepository {
	return &statusRepository{db: db}
}

// ListTables returns the tables in the public schema
func (r *statusRepository) ListTables(ctx context.Context) ([]string, error) {
	sql := `SELECT table_name FROM information_schema.tables
            WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
            ORDER BY table_name`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	tables := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table names: %w", err)
	}
	return tables, nil
}
