// api/middleware/rate_limiter.go

package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EivorRrz/restro/api/util"
)

// RateLimiter counts requests per authenticated user, or per client IP when
// the request is anonymous.
func RateLimiter(limiter *util.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := util.GetUserIDFromContext(c)
		if identity == "" {
			identity = c.ClientIP()
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Window", limiter.Window().String())

		if !limiter.Check(c.Request.Context(), identity) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
