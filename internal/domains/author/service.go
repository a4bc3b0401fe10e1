package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Author domain.
type Service interface {
	// Create creates a new author owned by creatorID.
	// Always succeeds for valid input; the id is server-assigned.
	Create(ctx context.Context, req CreateAuthorRequest, creatorID uuid.UUID) (*Author, error)

	// GetByID retrieves an author.
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll lists all authors.
	GetAll(ctx context.Context) ([]Author, error)

	// Delete removes an author.
	// Check order: existence, then ownership, then the referential guard.
	// Errors: ErrAuthorNotFound, ErrNotOwner, ErrAuthorHasBooks
	Delete(ctx context.Context, id uuid.UUID, callerID uuid.UUID) error
}
