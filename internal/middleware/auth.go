package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/motorcare/vehicle-service-api/internal/auth"
	"github.com/motorcare/vehicle-service-api/internal/config"
)

const contextIdentity = "identity"

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token claims"})
			return
		}

		sub, okSub := claims["sub"].(float64)
		roleStr, okRole := claims["role"].(string)
		if !okSub || !okRole {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token payload"})
			return
		}

		role, err := auth.ParseRole(roleStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token payload"})
			return
		}

		c.Set(contextIdentity, auth.Identity{
			UserID: uint(sub),
			Role:   role,
		})

		c.Next()
	}
}

// IdentityFrom retrieves the authenticated caller placed on the
// context by AuthMiddleware.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(contextIdentity)
	if !ok {
		return auth.Identity{}, false
	}

	ident, ok := v.(auth.Identity)
	return ident, ok
}

// SetIdentity exists for handler tests that bypass AuthMiddleware.
func SetIdentity(c *gin.Context, ident auth.Identity) {
	c.Set(contextIdentity, ident)
}
