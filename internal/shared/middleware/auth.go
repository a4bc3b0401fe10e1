package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog-backend/internal/shared/response"
	"library-catalog-backend/pkg/jwt"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
)

// AuthMiddleware authenticates the request from the Authorization header.
// A missing token is 401 (unauthenticated); a present but invalid or expired
// token is 403 — the two outcomes are distinct on purpose.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Unauthorized: No token provided")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Unauthorized: No token provided")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Forbidden(c, "Forbidden: Invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Forbidden(c, "Forbidden: Invalid token")
			c.Abort()
			return
		}

		// Attach the decoded identity for downstream ownership checks.
		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUsernameKey, claims.Username)

		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id from the context.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// CurrentUsername returns the authenticated caller's username.
func CurrentUsername(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUsernameKey)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
