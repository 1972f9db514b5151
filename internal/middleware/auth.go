package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"klagedok/internal/domain"
	"klagedok/internal/service"
)

const (
	ContextKeyUserID       = "user_id"
	ContextKeyEmail        = "email"
	ContextKeyCapabilities = "capabilities"
	ContextKeyClaims       = "claims"
)

// AuthMiddleware returns Gin middleware that validates JWT tokens and injects
// the acting identity into the request context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyCapabilities, claims.Capabilities)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireCapability returns middleware that checks the user holds at least one
// of the given capabilities.
func RequireCapability(capabilities ...domain.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(ContextKeyCapabilities)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "capabilities not found in context"},
			})
			return
		}

		held := val.(domain.Capabilities)
		for _, want := range capabilities {
			for _, have := range held {
				if have == want {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   gin.H{"code": "FORBIDDEN", "message": "insufficient permissions"},
		})
	}
}

// GetUserID extracts the acting user's ID from the Gin context.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return val.(uuid.UUID), nil
}
