package user

import "errors"

var (
	// ErrUsernameTaken rejects a second registration of the same username
	// (case-sensitive exact match).
	ErrUsernameTaken = errors.New("Username already taken")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so login responses carry no enumeration signal.
	ErrInvalidCredentials = errors.New("Invalid username or password")

	ErrUserNotFound = errors.New("user not found")
)
