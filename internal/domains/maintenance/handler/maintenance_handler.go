package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/domains/maintenance"
	"library-catalog-backend/internal/shared/response"
	"library-catalog-backend/pkg/logger"
)

// MaintenanceHandler exposes the test-only reset endpoint.
type MaintenanceHandler struct {
	repo maintenance.Repository
}

// NewMaintenanceHandler creates the handler instance.
func NewMaintenanceHandler(repo maintenance.Repository) *MaintenanceHandler {
	return &MaintenanceHandler{repo: repo}
}

// Reset handles DELETE /tests/reset. The route is only registered when
// ENABLE_TEST_ROUTES is set, so reaching here means the guard passed.
func (h *MaintenanceHandler) Reset(c *gin.Context) {
	if err := h.repo.ResetAll(c.Request.Context()); err != nil {
		logger.Error("database reset failed", err)
		response.InternalServerError(c)
		return
	}

	response.Message(c, http.StatusOK, "Test database reset.")
}
