// File: internal/handler/http/middleware/rate_limit_middleware.go
package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/config"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
)

// RateLimitMiddleware gates a route on a fixed-window rule keyed by client
// IP. The limiter itself fails open, so a broken limiter backend never takes
// the route down with it.
func RateLimitMiddleware(limiter interfaces.RateLimiter, rule config.RateLimitRule, scope string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rule.Enabled {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			logger.Error("rate limiter failed", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		if !allowed {
			logger.Warn("rate limit exceeded",
				zap.String("key", key),
				zap.Int("limit", rule.Limit),
				zap.Duration("window", rule.Window),
			)
			c.Header("Retry-After", fmt.Sprintf("%.0f", rule.Window.Seconds()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
