package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Author data access operations.
type Repository interface {
	// Create inserts a new author.
	Create(ctx context.Context, a *Author) error

	// GetByID retrieves an author by id.
	// Returns ErrAuthorNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves every author. Returns an empty slice, never nil.
	GetAll(ctx context.Context) ([]Author, error)

	// Delete removes an author by id.
	// Returns ErrAuthorNotFound if absent. The referential guard belongs
	// to the service layer; the schema-level FK is defense-in-depth only.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the row. Used by the
	// book domain to resolve author_id references.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// CountBooks returns the number of books referencing the author.
	CountBooks(ctx context.Context, authorID uuid.UUID) (int, error)
}
