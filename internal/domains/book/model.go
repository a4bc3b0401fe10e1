package book

import (
	"time"

	"github.com/google/uuid"
)

// Genre is the closed enumeration of book genres. Unrecognized values are
// rejected at validation, never coerced.
type Genre string

const (
	GenreAdventure  Genre = "adventure"
	GenreSciFi      Genre = "sci-fi"
	GenreRomance    Genre = "romance"
	GenreMystery    Genre = "mystery"
	GenreFantasy    Genre = "fantasy"
	GenreNonFiction Genre = "non-fiction"
)

// Genres lists every valid genre, in enum order.
var Genres = []Genre{
	GenreAdventure,
	GenreSciFi,
	GenreRomance,
	GenreMystery,
	GenreFantasy,
	GenreNonFiction,
}

// IsValid reports whether g is a member of the closed set.
func (g Genre) IsValid() bool {
	for _, valid := range Genres {
		if g == valid {
			return true
		}
	}
	return false
}

// Book represents the core Book entity.
type Book struct {
	ID uuid.UUID `json:"id" db:"id"`

	// AuthorID must resolve to an existing author at create and update time.
	AuthorID uuid.UUID `json:"author_id" db:"author_id"`

	Title string `json:"title" db:"title"`

	// PubYear is stored as text (exactly 4 digits) but compared numerically
	// for range filtering.
	PubYear string `json:"pub_year" db:"pub_year"`

	Genre Genre `json:"genre" db:"genre"`

	// CreatorID is the user that created the record; only that user may
	// update or delete it.
	CreatorID uuid.UUID `json:"creator_id" db:"creator_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
