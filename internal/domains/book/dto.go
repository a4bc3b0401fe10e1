package book

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var pubYearPattern = regexp.MustCompile(`^\d{4}$`)

// BookRequest - POST /books and PATCH /books/:id share this schema: an
// update replaces title, author_id, pub_year and genre wholesale, it is not
// a partial merge. The id is server-assigned and excluded from the input.
type BookRequest struct {
	AuthorID uuid.UUID `json:"author_id"`
	Title    string    `json:"title"`
	PubYear  string    `json:"pub_year"`
	Genre    Genre     `json:"genre"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		// Required sees a uuid.UUID as a non-empty 16-byte array and never
		// fires, so the zero value needs an explicit check.
		validation.Field(&r.AuthorID,
			validation.By(uuidRequired("author_id is required")),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.PubYear,
			validation.Required.Error("pub_year is required"),
			validation.Match(pubYearPattern).Error("Invalid year format"),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("genre is required"),
			validation.In(genreValues()...).Error("genre must be one of: adventure, sci-fi, romance, mystery, fantasy, non-fiction"),
		),
	)
}

func uuidRequired(message string) validation.RuleFunc {
	return func(value interface{}) error {
		if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
			return errors.New(message)
		}
		return nil
	}
}

func genreValues() []interface{} {
	values := make([]interface{}, len(Genres))
	for i, g := range Genres {
		values[i] = g
	}
	return values
}

// ListFilter - GET /books query parameters. Filters are conjunctive; both
// absent means all books.
type ListFilter struct {
	// PubYearMin keeps the original query name: books with
	// pub_year >= this value (numeric comparison) are returned.
	PubYearMin string `form:"pub_year"`

	// Genre is an exact match when present.
	Genre string `form:"genre"`
}
