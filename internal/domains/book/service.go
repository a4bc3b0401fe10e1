package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Book domain.
type Service interface {
	// Create inserts a new book owned by creatorID. The author reference is
	// resolved first; a dangling author_id fails before anything is written.
	// Errors: author.ErrAuthorNotFound
	Create(ctx context.Context, req BookRequest, creatorID uuid.UUID) (*Book, error)

	// GetByID retrieves a book.
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// List retrieves books matching the (conjunctive) filter.
	List(ctx context.Context, filter ListFilter) ([]Book, error)

	// Update replaces the mutable fields wholesale. The new author_id is
	// re-validated against the authors table, same as on create.
	// Errors: ErrBookNotFound, ErrNotOwner, author.ErrAuthorNotFound
	Update(ctx context.Context, id uuid.UUID, req BookRequest, callerID uuid.UUID) (*Book, error)

	// Delete removes a book.
	// Errors: ErrBookNotFound, ErrNotOwner
	Delete(ctx context.Context, id uuid.UUID, callerID uuid.UUID) error
}
