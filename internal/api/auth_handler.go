package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	stdhttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvlab/internal/api/middleware"
	"cvlab/internal/auth"
	"cvlab/internal/database"
)

const refreshTokenCookieName = "refresh_token"

// LinkSender delivers a login link to the address. The default
// implementation only logs it; a mail integration satisfies the same
// interface.
type LinkSender interface {
	SendLoginLink(ctx context.Context, email, link string) error
}

// LogLinkSender writes the login link to the application log. Useful for
// development and for deployments where links are handed out by an admin.
type LogLinkSender struct {
	Logger *slog.Logger
}

func (s LogLinkSender) SendLoginLink(_ context.Context, email, link string) error {
	s.Logger.Info("login link issued",
		slog.String("email", email),
		slog.String("link", link),
	)
	return nil
}

// AuthHandler implements the passwordless login flow: a posted email gets a
// single-use login link, the callback exchanges it for the token pair.
type AuthHandler struct {
	db               *gorm.DB
	authService      *auth.Service
	loginTokens      *auth.LoginTokenService
	revocations      *auth.RevocationList
	redis            redis.UniversalClient
	sender           LinkSender
	logger           *slog.Logger
	publicBaseURL    string
	loginRatePerHour int
	exposeLoginLink  bool
	cookieDomain     string
}

func NewAuthHandler(
	db *gorm.DB,
	authService *auth.Service,
	loginTokens *auth.LoginTokenService,
	revocations *auth.RevocationList,
	redisClient redis.UniversalClient,
	sender LinkSender,
	logger *slog.Logger,
	publicBaseURL string,
	loginRatePerHour int,
	exposeLoginLink bool,
	cookieDomain string,
) *AuthHandler {
	return &AuthHandler{
		db:               db,
		authService:      authService,
		loginTokens:      loginTokens,
		revocations:      revocations,
		redis:            redisClient,
		sender:           sender,
		logger:           logger,
		publicBaseURL:    strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
		loginRatePerHour: loginRatePerHour,
		exposeLoginLink:  exposeLoginLink,
		cookieDomain:     cookieDomain,
	}
}

type loginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Next  string `json:"next"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login issues a login link for the address. The response is the same
// whether or not an account exists, so the endpoint cannot be used to probe
// for registered emails.
func (h *AuthHandler) Login(c *gin.Context) {
	ip := c.ClientIP()
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c).With(slog.String("email", email))

	// Per IP+email, per hour.
	rateKey := "rate:login:" + ip + ":" + email + ":" + time.Now().UTC().Format("2006010215")
	count, err := incrWithTTL(ctx, h.redis, rateKey, time.Hour)
	if err != nil {
		count = 0
	}
	if h.loginRatePerHour > 0 && count > int64(h.loginRatePerHour) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	token, err := h.loginTokens.Issue(ctx, email)
	if err != nil {
		logger.Error("issue login token failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	link := h.buildCallbackLink(email, token, req.Next)
	if err := h.sender.SendLoginLink(ctx, email, link); err != nil {
		logger.Error("send login link failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	logger.Info("login link requested")
	resp := gin.H{"message": "login link sent"}
	if h.exposeLoginLink {
		resp["link"] = link
	}
	c.JSON(http.StatusOK, resp)
}

// Callback exchanges a login link for the session. The first successful
// login for an address provisions the account.
func (h *AuthHandler) Callback(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	token := strings.TrimSpace(c.Query("token"))
	if email == "" || token == "" {
		BadRequest(c, "email and token are required")
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c).With(slog.String("email", email))

	if err := h.loginTokens.Verify(ctx, email, token); err != nil {
		if errors.Is(err, auth.ErrLoginTokenInvalid) {
			logger.Info("login link rejected")
			Unauthorized(c)
			return
		}
		logger.Error("verify login token failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	var user database.User
	if err := h.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("login lookup failed", slog.Any("error", err))
			Internal(c, "internal error")
			return
		}
		user = database.User{Email: email}
		if err := h.db.WithContext(ctx).Create(&user).Error; err != nil {
			logger.Error("provision user failed", slog.Any("error", err))
			Internal(c, "internal error")
			return
		}
		logger.Info("user provisioned on first login", slog.Uint64("user_id", uint64(user.ID)))
	}

	now := time.Now()
	if err := h.db.WithContext(ctx).Model(&user).Update("last_login_at", now).Error; err != nil {
		logger.Warn("update last login failed", slog.Any("error", err))
	}

	tokenPair, err := h.authService.GenerateTokenPair(user.ID)
	if err != nil {
		logger.Error("generate token pair failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	h.setRefreshCookie(c, tokenPair.RefreshToken)
	logger.Info("login succeeded", slog.Uint64("user_id", uint64(user.ID)))

	if next := safeNextPath(c.Query("next")); next != "" {
		c.Redirect(http.StatusSeeOther, next)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: tokenPair.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.authService.AccessTokenTTL().Seconds()),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh validates the refresh token, rotates it and issues a fresh pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := h.extractRefreshToken(c)
	if refreshToken == "" {
		Unauthorized(c)
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c)

	claims, err := h.validRefreshClaims(ctx, refreshToken, logger)
	if err != nil {
		if errors.Is(err, errRefreshRejected) {
			Unauthorized(c)
		} else {
			Internal(c, "internal error")
		}
		return
	}

	var user database.User
	if err := h.db.WithContext(ctx).First(&user, claims.UserID).Error; err != nil {
		logger.Info("refresh user not found", slog.Any("error", err))
		Unauthorized(c)
		return
	}

	tokenPair, err := h.authService.GenerateTokenPair(claims.UserID)
	if err != nil {
		logger.Error("refresh generate token pair failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	// Rotate: the old refresh token must not work twice.
	if err := h.revokeRefreshToken(ctx, claims.ID, claims.ExpiresAt); err != nil {
		logger.Error("refresh revoke old token failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	h.setRefreshCookie(c, tokenPair.RefreshToken)
	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: tokenPair.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.authService.AccessTokenTTL().Seconds()),
	})
}

// Logout blacklists the refresh token and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken := h.extractRefreshToken(c)
	if refreshToken == "" {
		BadRequest(c, "refresh token missing")
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c)

	claims, err := h.validRefreshClaims(ctx, refreshToken, logger)
	if err != nil {
		if errors.Is(err, errRefreshRejected) {
			Unauthorized(c)
		} else {
			Internal(c, "internal error")
		}
		return
	}

	if err := h.revokeRefreshToken(ctx, claims.ID, claims.ExpiresAt); err != nil {
		logger.Error("logout revoke token failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	stdhttp.SetCookie(c.Writer, &stdhttp.Cookie{
		Name:     refreshTokenCookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		Secure:   h.isHTTPSRequest(c),
		HttpOnly: true,
		SameSite: stdhttp.SameSiteLaxMode,
		Domain:   h.getCookieDomain(),
	})
	c.Status(http.StatusOK)
}

var errRefreshRejected = errors.New("refresh token rejected")

func (h *AuthHandler) validRefreshClaims(ctx context.Context, refreshToken string, logger *slog.Logger) (*auth.TokenClaims, error) {
	claims, err := h.authService.ValidateToken(refreshToken)
	if err != nil {
		logger.Info("refresh token invalid", slog.Any("error", err))
		return nil, errRefreshRejected
	}
	if claims.TokenType != "refresh" {
		logger.Info("refresh token wrong type", slog.String("token_type", claims.TokenType))
		return nil, errRefreshRejected
	}
	if claims.ID == "" {
		logger.Info("refresh token missing jti")
		return nil, errRefreshRejected
	}

	revoked, err := h.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		logger.Error("refresh token blacklist lookup failed", slog.Any("error", err))
		return nil, err
	}
	if revoked {
		logger.Info("refresh token revoked", slog.String("jti", claims.ID))
		return nil, errRefreshRejected
	}
	return claims, nil
}

func (h *AuthHandler) buildCallbackLink(email, token, next string) string {
	values := url.Values{}
	values.Set("email", email)
	values.Set("token", token)
	if next := safeNextPath(next); next != "" {
		values.Set("next", next)
	}
	return fmt.Sprintf("%s/v1/auth/callback?%s", h.publicBaseURL, values.Encode())
}

// safeNextPath keeps redirects on-site: only rooted paths pass through.
func safeNextPath(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}

func (h *AuthHandler) extractRefreshToken(c *gin.Context) string {
	if token, err := c.Cookie(refreshTokenCookieName); err == nil && token != "" {
		return token
	}

	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		return req.RefreshToken
	}
	return ""
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	maxAge := int(h.authService.RefreshTokenTTL().Seconds())
	if maxAge <= 0 {
		maxAge = int(time.Hour.Seconds())
	}
	cookie := &stdhttp.Cookie{
		Name:     refreshTokenCookieName,
		Value:    refreshToken,
		MaxAge:   maxAge,
		Path:     "/",
		Secure:   h.isHTTPSRequest(c),
		HttpOnly: true,
		SameSite: stdhttp.SameSiteLaxMode,
		Domain:   h.getCookieDomain(),
		Expires:  time.Now().Add(h.authService.RefreshTokenTTL()),
	}
	stdhttp.SetCookie(c.Writer, cookie)
}

func (h *AuthHandler) revokeRefreshToken(ctx context.Context, jti string, expiresAt *jwt.NumericDate) error {
	var ttl time.Duration
	if expiresAt == nil {
		ttl = h.authService.RefreshTokenTTL()
	} else {
		ttl = time.Until(expiresAt.Time)
	}
	return h.revocations.Revoke(ctx, jti, ttl)
}

func (h *AuthHandler) loggerFromContext(c *gin.Context) *slog.Logger {
	if logger := middleware.LoggerFromContext(c); logger != nil {
		return logger
	}
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}

func (h *AuthHandler) isHTTPSRequest(c *gin.Context) bool {
	if c.Request == nil {
		return false
	}
	if c.Request.TLS != nil {
		return true
	}
	return strings.EqualFold(c.Request.Header.Get("X-Forwarded-Proto"), "https")
}

func (h *AuthHandler) getCookieDomain() string { return strings.TrimSpace(h.cookieDomain) }
