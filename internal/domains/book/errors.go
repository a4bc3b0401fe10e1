package book

import "errors"

var (
	ErrBookNotFound = errors.New("Book not found.")

	// ErrNotOwner rejects mutation by anyone but the creating user.
	ErrNotOwner = errors.New("Forbidden: you are not the creator of this book")
)
