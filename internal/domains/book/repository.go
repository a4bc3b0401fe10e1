package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Book data access operations.
type Repository interface {
	// Create inserts a new book.
	Create(ctx context.Context, b *Book) error

	// GetByID retrieves a book by id.
	// Returns ErrBookNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// List retrieves books matching the filter. Filtering happens in SQL,
	// not in application memory; pub_year is compared via an integer cast.
	// Returns an empty slice, never nil.
	List(ctx context.Context, filter ListFilter) ([]Book, error)

	// Update replaces title, author_id, pub_year and genre wholesale.
	// Returns ErrBookNotFound if absent.
	Update(ctx context.Context, b *Book) error

	// Delete removes a book by id.
	// Returns ErrBookNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
