// api/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/audit"
	food_errors "github.com/EivorRrz/restro/api/errors"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/service"
	"github.com/EivorRrz/restro/api/util"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// Auth rejects requests without a valid, unrevoked, unexpired bearer token
// and attaches the authenticated user to the request.
func Auth(authService service.IAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		user, _, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if authErr, ok := food_errors.AsAuthError(err); ok {
				logger.Warn("Authentication failed",
					zap.String("reason", string(authErr.Kind)),
					zap.String("path", c.Request.URL.Path),
					zap.String("ip", c.ClientIP()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": authErr.Message()})
				return
			}
			util.RespondWithError(c, http.StatusInternalServerError, "Authentication failed", err)
			return
		}

		c.Set(util.ContextUserID, user.ID)
		c.Set(util.ContextUser, user)
		c.Set(util.ContextToken, token)
		c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), user.ID))
		c.Next()
	}
}

// Admin allows only users of type admin. It must run after Auth.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access token is required"})
			return
		}
		if !user.IsAdmin() {
			logger.Warn("Admin access denied", zap.String("userID", user.ID), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
			return
		}
		c.Next()
	}
}
