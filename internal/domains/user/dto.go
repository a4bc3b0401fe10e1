package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest - POST /register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 0).Error("username must be at least 3 characters"),
			validation.Length(0, 32).Error("username must be at most 32 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 0).Error("password must be at least 6 characters"),
			validation.Length(0, 128).Error("password must be at most 128 characters"),
		),
	)
}

// LoginRequest - POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginResponse - bearer token plus the authenticated user
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
