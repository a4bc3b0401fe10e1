package book

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() BookRequest {
	return BookRequest{
		AuthorID: uuid.New(),
		Title:    "Dune",
		PubYear:  "1965",
		Genre:    GenreSciFi,
	}
}

func TestBookRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validRequest().Validate())
	})

	t.Run("missing author_id", func(t *testing.T) {
		req := validRequest()
		req.AuthorID = uuid.Nil
		err := req.Validate()
		require.Error(t, err)
		// A zero author_id is a field error, not a not-found fallthrough.
		assert.Contains(t, err.Error(), "author_id is required")
	})

	t.Run("author_id absent from body", func(t *testing.T) {
		req := BookRequest{Title: "T", PubYear: "2020", Genre: GenreMystery}
		require.Error(t, req.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		req := validRequest()
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("year not four digits", func(t *testing.T) {
		for _, year := range []string{"196", "19655", "abcd", "19a5", "-965", ""} {
			req := validRequest()
			req.PubYear = year
			err := req.Validate()
			assert.Error(t, err, "pub_year %q should be rejected", year)
		}
	})

	t.Run("year format message", func(t *testing.T) {
		req := validRequest()
		req.PubYear = "draft"
		err := req.Validate()
		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "Invalid year format"))
	})

	t.Run("unknown genre", func(t *testing.T) {
		req := validRequest()
		req.Genre = "horror"
		assert.Error(t, req.Validate())
	})

	t.Run("every listed genre accepted", func(t *testing.T) {
		for _, g := range Genres {
			req := validRequest()
			req.Genre = g
			assert.NoError(t, req.Validate(), "genre %q should be accepted", g)
		}
	})
}

func TestGenreIsValid(t *testing.T) {
	assert.True(t, GenreFantasy.IsValid())
	assert.False(t, Genre("horror").IsValid())
	assert.False(t, Genre("").IsValid())
	// Case sensitive, no coercion.
	assert.False(t, Genre("Fantasy").IsValid())
}
