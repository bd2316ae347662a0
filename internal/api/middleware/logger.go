package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tohsaka888/societies-server/internal/logging"
)

// RequestLogger logs one line per request after it has been served.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
