package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"cvlab/internal/auth"
)

const refreshTokenCookieName = "refresh_token"

// RevocationChecker reports whether a refresh token id was revoked by
// logout or rotation. Satisfied by auth.RevocationList.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// PageGuard protects server-rendered pages. Unlike the API middleware it
// authenticates off the refresh cookie, and an anonymous visitor gets a
// redirect to the login page with the original path in ?next= instead of a
// JSON 401.
func PageGuard(authService *auth.Service, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(refreshTokenCookieName)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		claims, ok := liveRefreshClaims(c, authService, revocations, token)
		if !ok {
			redirectToLogin(c)
			return
		}

		c.Set("userID", claims.UserID)
		c.Next()
	}
}

// liveRefreshClaims validates a refresh token and rejects it when its jti
// sits on the blacklist. Lookup failures fail closed.
func liveRefreshClaims(c *gin.Context, authService *auth.Service, revocations RevocationChecker, token string) (*auth.TokenClaims, bool) {
	claims, err := authService.ValidateToken(token)
	if err != nil || claims.TokenType != "refresh" || claims.ID == "" {
		return nil, false
	}
	revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
	if err != nil || revoked {
		return nil, false
	}
	return claims, true
}

func redirectToLogin(c *gin.Context) {
	next := c.Request.URL.RequestURI()
	c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(next))
	c.Abort()
}
