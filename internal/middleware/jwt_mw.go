package middleware

import (
	"errors"
	"net/http"
	"strings"

	"marketing_cms/internal/service"
	"marketing_cms/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthUserKey is the context key under which the authenticated user is stored.
const AuthUserKey = "authUser"

// JWTAuthMiddleware verifies the bearer token and attaches the resolved
// current user record to the request context. A missing or malformed header
// is 401, a bad or expired token is 403, and a token whose subject no longer
// exists is 401.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil, authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			return
		}

		user, err := authService.ResolveUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Authentication error"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}
