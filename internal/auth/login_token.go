package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// ErrLoginTokenInvalid covers expired, consumed and never-issued tokens
// alike so callers cannot distinguish them.
var ErrLoginTokenInvalid = errors.New("login token invalid or expired")

// LoginTokenService issues the single-use tokens behind passwordless login
// links. Only a bcrypt hash of the token lands in Redis; the plaintext
// exists once, inside the emailed link. Verification deletes the key, so a
// link works exactly once.
type LoginTokenService struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewLoginTokenService(redisClient *redis.Client, ttl time.Duration) *LoginTokenService {
	return &LoginTokenService{redis: redisClient, ttl: ttl}
}

func loginTokenKey(email string) string {
	return "login_token:" + email
}

// Issue mints a fresh token for the address, replacing any outstanding one.
func (s *LoginTokenService) Issue(ctx context.Context, email string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate login token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash login token: %w", err)
	}
	if err := s.redis.Set(ctx, loginTokenKey(email), string(hash), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store login token: %w", err)
	}
	return token, nil
}

// Verify consumes the outstanding token for the address. The stored hash is
// deleted before the bcrypt comparison, so a second attempt with the same
// link fails even when the first one carried a wrong token.
func (s *LoginTokenService) Verify(ctx context.Context, email, token string) error {
	key := loginTokenKey(email)
	hash, err := s.redis.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrLoginTokenInvalid
	}
	if err != nil {
		return fmt.Errorf("load login token: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) != nil {
		return ErrLoginTokenInvalid
	}
	return nil
}
