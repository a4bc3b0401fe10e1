package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorRequest - POST /authors
// The id is server-assigned and deliberately absent from the input schema.
type CreateAuthorRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Bio, validation.Required.Error("bio is required")),
	)
}
