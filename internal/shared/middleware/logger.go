package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Logger emits one structured line per request. The raw path and the matched
// route pattern are both logged: the pattern groups /books/:id across ids,
// the path keeps the concrete request reconstructible.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		event := log.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency_ms", time.Since(start)).
			Str("ip", c.ClientIP())

		// Present only past the auth middleware.
		if userID, ok := CurrentUserID(c); ok {
			event = event.Str("user_id", userID.String())
		}

		event.Msg("request completed")
	}
}
