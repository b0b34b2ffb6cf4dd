package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./denylist.go -destination=./mocks/denylist_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hostel/shared"
	"hostel/shared/cache"
)

const cacheKeyDenylist = "jwt:denylist"

// Denylist remembers signed out token ids until the token would have expired anyway.
type Denylist interface {
	Revoke(ctx context.Context, claims *Claims) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type denylistImpl struct {
	cache cache.RedisCache
}

func NewDenylist(redisCache cache.RedisCache) Denylist {
	return &denylistImpl{cache: redisCache}
}

func (d *denylistImpl) Revoke(ctx context.Context, claims *Claims) error {
	ttl := int(claims.RemainingTTL().Seconds())
	if ttl <= 0 {
		return nil
	}

	if err := d.cache.Save(ctx, shared.BuildCacheKey(cacheKeyDenylist, claims.TokenID), claims.UserID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (d *denylistImpl) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := d.cache.Exists(ctx, shared.BuildCacheKey(cacheKeyDenylist, tokenID))
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}

	return revoked, nil
}
