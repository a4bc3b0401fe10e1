package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/book"
)

// sqliteRepository implements book.Repository on the shared SQLite handle.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new book repository instance.
func NewSQLiteRepository(db *sql.DB) book.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
        INSERT INTO books (id, author_id, title, pub_year, genre, creator_id, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		b.ID.String(),
		b.AuthorID.String(),
		b.Title,
		b.PubYear,
		string(b.Genre),
		b.CreatorID.String(),
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `
        SELECT id, author_id, title, pub_year, genre, creator_id, created_at, updated_at
        FROM books
        WHERE id = ?
    `

	var b book.Book
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&b.ID,
		&b.AuthorID,
		&b.Title,
		&b.PubYear,
		&b.Genre,
		&b.CreatorID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

// List builds the filter dynamically. pub_year is TEXT in the schema, the
// integer cast makes the range comparison numeric rather than lexical.
func (r *sqliteRepository) List(ctx context.Context, filter book.ListFilter) ([]book.Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, author_id, title, pub_year, genre, creator_id, created_at, updated_at
        FROM books
        WHERE 1=1
    `)

	args := []interface{}{}

	if filter.PubYearMin != "" {
		queryBuilder.WriteString(" AND CAST(pub_year AS INTEGER) >= ?")
		args = append(args, filter.PubYearMin)
	}
	if filter.Genre != "" {
		queryBuilder.WriteString(" AND genre = ?")
		args = append(args, filter.Genre)
	}

	queryBuilder.WriteString(" ORDER BY created_at")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(
			&b.ID,
			&b.AuthorID,
			&b.Title,
			&b.PubYear,
			&b.Genre,
			&b.CreatorID,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *sqliteRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
        UPDATE books
        SET title = ?, author_id = ?, pub_year = ?, genre = ?, updated_at = ?
        WHERE id = ?
    `

	result, err := r.db.ExecContext(ctx, query,
		b.Title,
		b.AuthorID.String(),
		b.PubYear,
		string(b.Genre),
		b.UpdatedAt,
		b.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}
