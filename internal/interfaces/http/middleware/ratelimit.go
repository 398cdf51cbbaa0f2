package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rentora/internal/infrastructure/ratelimit"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

// RateLimit throttles requests per client IP over a one-minute sliding
// window. When the limiter backend is unreachable the request is allowed
// through rather than failing the whole API.
func RateLimit(limiter ratelimit.Limiter, requestsPerMinute int, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP(), requestsPerMinute, time.Minute)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
