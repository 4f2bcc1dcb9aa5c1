package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorcare/vehicle-service-api/internal/auth"
)

// RequireRole rejects callers whose role does not match. Must run
// after AuthMiddleware.
func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}

		if ident.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "insufficient permissions"})
			return
		}

		c.Next()
	}
}
