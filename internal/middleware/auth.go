package middleware

import (
	"net/http"
	"strings"

	"githubsearch/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// JWTAuth verifies the bearer access token and exposes the authenticated
// identity to downstream handlers through the request context. Identity is
// never stashed globally; everything flows through gin's per-request context.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "AUTH_HEADER_MISSING", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "INVALID_AUTH_FORMAT", "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "INVALID_AUTH_FORMAT", "Empty token")
			return
		}

		claims, err := jwt.VerifyAccess(tokenStr, secret)
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid token")
			return
		}

		c.Set("user_id", claims.Data.ID)
		c.Set("username", claims.Data.Username)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
