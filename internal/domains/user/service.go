package user

import (
	"context"
)

// Service defines the auth business logic.
type Service interface {
	// Register creates a new user.
	// Business rules:
	// - Username must be unique (case-sensitive exact match)
	// - Password is stored only as a salted argon2id hash
	// Errors: ErrUsernameTaken
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login authenticates and issues a signed bearer token (1h expiry).
	// Unknown username and wrong password are indistinguishable to the
	// caller.
	// Errors: ErrInvalidCredentials
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}
