package middleware

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cvlab/internal/auth"
)

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[jti], nil
}

func newGuardTestService(t *testing.T) *auth.Service {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	svc, err := auth.NewService(privPEM, pubPEM, 15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func guardedRouter(t *testing.T, svc *auth.Service, revocations RevocationChecker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/builder/:id", PageGuard(svc, revocations), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/export/:id", SessionGuard(svc, revocations), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api", AuthMiddleware(svc), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func refreshJTI(t *testing.T, svc *auth.Service, token string) string {
	t.Helper()
	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate refresh token: %v", err)
	}
	return claims.ID
}

func TestPageGuardRedirectsAnonymousWithNext(t *testing.T) {
	router := guardedRouter(t, newGuardTestService(t), &fakeRevocations{})

	req := httptest.NewRequest(http.MethodGet, "/builder/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login?next=%2Fbuilder%2F7" {
		t.Errorf("location = %q", loc)
	}
}

func TestPageGuardAcceptsRefreshCookie(t *testing.T) {
	svc := newGuardTestService(t)
	router := guardedRouter(t, svc, &fakeRevocations{})

	pair, err := svc.GenerateTokenPair(7)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/builder/7", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookieName, Value: pair.RefreshToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	// The access token is not a session cookie; it must not pass the guard.
	req = httptest.NewRequest(http.MethodGet, "/builder/7", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookieName, Value: pair.AccessToken})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusSeeOther {
		t.Errorf("access token in cookie: status = %d, want redirect", w.Code)
	}
}

func TestPageGuardRejectsRevokedCookie(t *testing.T) {
	svc := newGuardTestService(t)
	pair, err := svc.GenerateTokenPair(7)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	jti := refreshJTI(t, svc, pair.RefreshToken)
	router := guardedRouter(t, svc, &fakeRevocations{revoked: map[string]bool{jti: true}})

	// A logged-out cookie is still signature-valid; the blacklist must
	// catch it.
	req := httptest.NewRequest(http.MethodGet, "/builder/7", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookieName, Value: pair.RefreshToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusSeeOther {
		t.Errorf("revoked cookie: status = %d, want redirect", w.Code)
	}
}

func TestSessionGuardAcceptsTokenOrCookie(t *testing.T) {
	svc := newGuardTestService(t)
	pair, err := svc.GenerateTokenPair(7)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	router := guardedRouter(t, svc, &fakeRevocations{})

	req := httptest.NewRequest(http.MethodGet, "/export/7", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("bearer access token: status = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/export/7", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookieName, Value: pair.RefreshToken})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("refresh cookie: status = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/export/7", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: status = %d, want 401", w.Code)
	}
}

func TestSessionGuardRejectsRevokedCookie(t *testing.T) {
	svc := newGuardTestService(t)
	pair, err := svc.GenerateTokenPair(7)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	jti := refreshJTI(t, svc, pair.RefreshToken)
	router := guardedRouter(t, svc, &fakeRevocations{revoked: map[string]bool{jti: true}})

	req := httptest.NewRequest(http.MethodGet, "/export/7", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookieName, Value: pair.RefreshToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("revoked cookie: status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	svc := newGuardTestService(t)
	router := guardedRouter(t, svc, &fakeRevocations{})

	pair, err := svc.GenerateTokenPair(7)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"malformed", "Bearer", http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"refresh as access", "Bearer " + pair.RefreshToken, http.StatusUnauthorized},
		{"valid", "Bearer " + pair.AccessToken, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, w.Code, tc.want)
		}
	}
}
