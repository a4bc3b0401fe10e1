package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/domains/user"
	"library-catalog-backend/internal/shared/middleware"
	"library-catalog-backend/internal/shared/response"
	"library-catalog-backend/internal/shared/validation"
	"library-catalog-backend/pkg/logger"
)

// UserHandler handles HTTP requests for the user domain.
// Stateless - only holds dependencies.
type UserHandler struct {
	service user.Service
}

// NewUserHandler creates the handler instance.
func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, []string{"invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationErrors(c, validation.Messages(err))
		return
	}

	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			response.BadRequest(c, user.ErrUsernameTaken.Error())
			return
		}
		logger.Error("register failed", err)
		response.InternalServerError(c)
		return
	}

	response.Message(c, http.StatusCreated, "User registered successfully")
}

// Login handles POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unauthorized(c, user.ErrInvalidCredentials.Error())
		return
	}

	loginResp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Unauthorized(c, user.ErrInvalidCredentials.Error())
			return
		}
		logger.Error("login failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, loginResp)
}

// Logout handles POST /logout. Tokens are stateless, so logout is a
// client-side discard; the endpoint only acknowledges it.
func (h *UserHandler) Logout(c *gin.Context) {
	response.Message(c, http.StatusOK, "Logout successful")
}

// Profile handles GET /profile (protected).
func (h *UserHandler) Profile(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized: No token provided")
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("Welcome, %s!", username))
}
