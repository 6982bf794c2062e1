package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware caps a route group at perMinute requests per minute
// process-wide, with a burst of perMinute. Used on the AI endpoints, which
// fan out to a metered external API.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many AI requests, slow down"})
			return
		}
		c.Next()
	}
}
