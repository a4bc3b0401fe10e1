package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/author"
)

// sqliteRepository implements author.Repository on the shared SQLite handle.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new author repository instance.
func NewSQLiteRepository(db *sql.DB) author.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, a *author.Author) error {
	query := `
        INSERT INTO authors (id, name, bio, creator_id, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		a.ID.String(),
		a.Name,
		a.Bio,
		a.CreatorID.String(),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}
	return nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
        SELECT id, name, bio, creator_id, created_at, updated_at
        FROM authors
        WHERE id = ?
    `

	var a author.Author
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&a.ID,
		&a.Name,
		&a.Bio,
		&a.CreatorID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *sqliteRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT id, name, bio, creator_id, created_at, updated_at
        FROM authors
        ORDER BY created_at
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	// Empty slice, not nil: the endpoint serializes this as [].
	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Bio, &a.CreatorID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

func (r *sqliteRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *sqliteRepository) CountBooks(ctx context.Context, authorID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM books WHERE author_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, authorID.String()).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}
