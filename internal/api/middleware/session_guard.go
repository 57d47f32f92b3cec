package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"cvlab/internal/auth"
)

// SessionGuard accepts either a bearer access token or the refresh cookie,
// for endpoints hit both by scripts and by plain browser navigation. It
// responds 401 rather than redirecting.
func SessionGuard(authService *auth.Service, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.Fields(header)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				claims, err := authService.ValidateToken(parts[1])
				if err == nil && claims.TokenType == "access" {
					c.Set("userID", claims.UserID)
					c.Next()
					return
				}
			}
			abortUnauthorized(c)
			return
		}

		token, err := c.Cookie(refreshTokenCookieName)
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}
		claims, ok := liveRefreshClaims(c, authService, revocations, token)
		if !ok {
			abortUnauthorized(c)
			return
		}
		c.Set("userID", claims.UserID)
		c.Next()
	}
}
