package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/shared/middleware"
	"library-catalog-backend/pkg/container"
)

// SetupRouter wires all routes against the container's handlers.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	authRequired := middleware.AuthMiddleware(c.JWTManager)

	// Health check
	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c, authRequired)
	setupAuthorRoutes(router, c, authRequired)
	setupBookRoutes(router, c, authRequired)

	// Destructive reset route, registered only when explicitly enabled.
	// Config validation already refuses this flag in production.
	if c.Config.EnableTestRoutes {
		router.DELETE("/tests/reset", c.MaintenanceHandler.Reset)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(router *gin.Engine, c *container.Container, authRequired gin.HandlerFunc) {
	router.POST("/register", c.UserHandler.Register)
	router.POST("/login", c.UserHandler.Login)
	router.POST("/logout", c.UserHandler.Logout)
	router.GET("/profile", authRequired, c.UserHandler.Profile)
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(router *gin.Engine, c *container.Container, authRequired gin.HandlerFunc) {
	authors := router.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.GetAll)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.POST("", authRequired, c.AuthorHandler.Create)
		authors.DELETE("/:id", authRequired, c.AuthorHandler.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(router *gin.Engine, c *container.Container, authRequired gin.HandlerFunc) {
	books := router.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
		books.POST("", authRequired, c.BookHandler.Create)
		books.PATCH("/:id", authRequired, c.BookHandler.Update)
		books.DELETE("/:id", authRequired, c.BookHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "healthy"
		code := http.StatusOK

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		ctx.JSON(code, gin.H{
			"status":  status,
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}
