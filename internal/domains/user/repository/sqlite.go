package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"library-catalog-backend/internal/domains/user"
)

// sqliteRepository implements user.Repository on the shared SQLite handle.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new user repository instance.
func NewSQLiteRepository(db *sql.DB) user.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, u *user.User) error {
	query := `
        INSERT INTO users (id, username, password_hash, created_at)
        VALUES (?, ?, ?, ?)
    `

	if _, err := r.db.ExecContext(ctx, query, u.ID.String(), u.Username, u.PasswordHash, u.CreatedAt); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqliteRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
        SELECT id, username, password_hash, created_at
        FROM users
        WHERE username = ?
    `

	var u user.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &u, nil
}

func (r *sqliteRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return exists, nil
}
