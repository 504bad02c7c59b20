package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const expiredTokenPrefix = "expiredToken:"

// TokenDenylist tracks signed-out access tokens in Redis until their own
// expiry, after which the entries lapse on their TTL.
type TokenDenylist struct {
	rdb *redis.Client
}

func NewTokenDenylist(rdb *redis.Client) *TokenDenylist {
	return &TokenDenylist{rdb: rdb}
}

// Revoke denylists a token for the given remaining lifetime. A token that has
// already expired needs no entry.
func (d *TokenDenylist) Revoke(ctx context.Context, accessToken string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, expiredTokenPrefix+accessToken, "1", ttl).Err()
}

// IsRevoked reports whether a token has been signed out
func (d *TokenDenylist) IsRevoked(ctx context.Context, accessToken string) (bool, error) {
	err := d.rdb.Get(ctx, expiredTokenPrefix+accessToken).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
