package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("Author not found.")

	// ErrAuthorHasBooks is the referential guard: checked at the application
	// layer so the client sees a friendly 400 instead of a raw foreign-key
	// constraint violation.
	ErrAuthorHasBooks = errors.New("Cannot delete author with associated books.")

	// ErrNotOwner rejects mutation by anyone but the creating user.
	ErrNotOwner = errors.New("Forbidden: you are not the creator of this author")
)
