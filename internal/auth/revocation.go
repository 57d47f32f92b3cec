package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "auth:refresh:blacklist:"

// RevocationList records refresh token ids that must no longer be honored.
// Logout and rotation write here; every guard that accepts a refresh token
// reads it. Entries expire together with the token they revoke.
type RevocationList struct {
	redis redis.UniversalClient
}

func NewRevocationList(client redis.UniversalClient) *RevocationList {
	return &RevocationList{redis: client}
}

// Revoke blacklists jti for ttl, which should match the remaining lifetime
// of the token carrying it.
func (r *RevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Second
	}
	return r.redis.Set(ctx, revocationKeyPrefix+jti, "revoked", ttl).Err()
}

func (r *RevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.redis.Get(ctx, revocationKeyPrefix+jti).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, err
	}
}
