package repository

import (
	"context"
	"database/sql"
	"fmt"

	"library-catalog-backend/internal/domains/maintenance"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new maintenance repository instance.
func NewSQLiteRepository(db *sql.DB) maintenance.Repository {
	return &sqliteRepository{db: db}
}

// ResetAll wipes all tables in dependency order inside one transaction.
func (r *sqliteRepository) ResetAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"books", "authors", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset transaction: %w", err)
	}
	return nil
}
