package author

import (
	"time"

	"github.com/google/uuid"
)

// Author represents the core Author entity.
type Author struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Bio  string    `json:"bio" db:"bio"`

	// CreatorID is the user that created the record; only that user may
	// delete it.
	CreatorID uuid.UUID `json:"creator_id" db:"creator_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
