package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/shared/middleware"
	"library-catalog-backend/internal/shared/response"
	"library-catalog-backend/internal/shared/validation"
	"library-catalog-backend/pkg/logger"
)

// AuthorHandler handles HTTP requests for the author domain.
type AuthorHandler struct {
	service author.Service
}

// NewAuthorHandler creates the handler instance.
func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Create handles POST /authors (protected)
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, []string{"invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationErrors(c, validation.Messages(err))
		return
	}

	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized: No token provided")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req, callerID)
	if err != nil {
		logger.Error("create author failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// GetAll handles GET /authors (public)
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("list authors failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, authors)
}

// GetByID handles GET /authors/:id (public)
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, author.ErrAuthorNotFound.Error())
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}

// Delete handles DELETE /authors/:id (protected)
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, author.ErrAuthorNotFound.Error())
		return
	}

	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized: No token provided")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Author deleted successfully.")
}

// handleError maps domain errors to HTTP status codes.
func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, author.ErrAuthorNotFound):
		response.NotFound(c, author.ErrAuthorNotFound.Error())
	case errors.Is(err, author.ErrNotOwner):
		response.Forbidden(c, author.ErrNotOwner.Error())
	case errors.Is(err, author.ErrAuthorHasBooks):
		// Integrity conflict, surfaced as a 400-class error by contract.
		response.BadRequest(c, author.ErrAuthorHasBooks.Error())
	default:
		logger.Error("author operation failed", err)
		response.InternalServerError(c)
	}
}
