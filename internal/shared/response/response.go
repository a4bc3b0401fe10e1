package response

import (
	"github.com/gin-gonic/gin"
)

// The API contract is flat JSON: entities are returned as-is, every failure
// carries an "error" or "errors" key.

// JSON writes data unchanged with the given status code.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes {"message": ...}.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error writes {"error": ...}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ValidationErrors writes 400 {"errors": [...]}, one entry per failing field
// (or a single whole-object message).
func ValidationErrors(c *gin.Context, messages []string) {
	c.JSON(400, gin.H{"errors": messages})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// InternalServerError deliberately hides the underlying cause; storage
// failures are logged server-side, not echoed to clients.
func InternalServerError(c *gin.Context) {
	Error(c, 500, "internal server error")
}
