package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/internal/shared/middleware"
	"library-catalog-backend/internal/shared/response"
	"library-catalog-backend/internal/shared/validation"
	"library-catalog-backend/pkg/logger"
)

// BookHandler handles HTTP requests for the book domain.
type BookHandler struct {
	service book.Service
}

// NewBookHandler creates the handler instance.
func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /books (protected)
func (h *BookHandler) Create(c *gin.Context) {
	var req book.BookRequest
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
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// List handles GET /books?pub_year=&genre= (public)
func (h *BookHandler) List(c *gin.Context) {
	var filter book.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationErrors(c, []string{"invalid query parameters"})
		return
	}

	books, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("list books failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, books)
}

// GetByID handles GET /books/:id (public)
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, book.ErrBookNotFound.Error())
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// Update handles PATCH /books/:id (protected). The body replaces title,
// author_id, pub_year and genre wholesale.
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, book.ErrBookNotFound.Error())
		return
	}

	var req book.BookRequest
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

	if _, err := h.service.Update(c.Request.Context(), id, req, callerID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Book updated successfully.")
}

// Delete handles DELETE /books/:id (protected)
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, book.ErrBookNotFound.Error())
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

	response.Message(c, http.StatusOK, "Book deleted successfully.")
}

// handleError maps domain errors to HTTP status codes.
func (h *BookHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, book.ErrBookNotFound.Error())
	case errors.Is(err, author.ErrAuthorNotFound):
		response.NotFound(c, author.ErrAuthorNotFound.Error())
	case errors.Is(err, book.ErrNotOwner):
		response.Forbidden(c, book.ErrNotOwner.Error())
	default:
		logger.Error("book operation failed", err)
		response.InternalServerError(c)
	}
}
