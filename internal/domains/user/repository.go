package user

import (
	"context"
)

// Repository defines data access for the credential store.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *User) error

	// FindByUsername retrieves a user by exact username.
	// Returns ErrUserNotFound if absent.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername checks registration uniqueness without fetching
	// the full row.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
