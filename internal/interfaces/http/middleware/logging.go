package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"rentora/internal/shared/logger"
)

// RequestLogger logs every request with latency and outcome, at a level
// matching the response class.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		if userID, exists := c.Get("user_id"); exists {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.Last().Err)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("request completed", args...)
		case status >= 400:
			log.Warnw("request completed", args...)
		default:
			log.Debugw("request completed", args...)
		}
	}
}
