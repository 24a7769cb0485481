package middleware

import (
	"net/http"
	"prowash_quote/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, please slow down", http.StatusTooManyRequests)

// RateLimit rejects requests from a client IP that exhausted its bucket.
func RateLimit(limiter *RateLimiter, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			logger.Warn("[http][ratelimit] request rejected", zap.String("client_ip", ip), zap.String("path", c.FullPath()))
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
