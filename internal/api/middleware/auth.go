package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"babybites/internal/core/auth"
)

const claimsKey = "auth_claims"

// RequireAuth verifies the bearer token and stores the session claims on the
// context. Requests without a valid session never reach the handler.
func RequireAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "you must be logged in",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		claims, err := authService.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "session is invalid or expired",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin gates a route to admin accounts. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := SessionClaims(c)
		if !ok || !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
				"code":  "FORBIDDEN",
			})
			return
		}
		c.Next()
	}
}

// SessionClaims returns the verified claims set by RequireAuth.
func SessionClaims(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
