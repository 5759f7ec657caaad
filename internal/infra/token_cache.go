package infra

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenCache remembers recently verified bearer tokens so hot endpoints
// skip signature verification. Entries expire individually via redis TTL;
// there is no global flush. Keys are token hashes, never raw tokens.
type TokenCache interface {
	Get(ctx context.Context, token string) (string, bool)
	Set(ctx context.Context, token, userID string)
}

type redisTokenCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenCache(rdb *redis.Client, ttl time.Duration) TokenCache {
	return &redisTokenCache{rdb: rdb, ttl: ttl}
}

func (c *redisTokenCache) Get(ctx context.Context, token string) (string, bool) {
	userID, err := c.rdb.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		return "", false
	}
	return userID, true
}

func (c *redisTokenCache) Set(ctx context.Context, token, userID string) {
	// Best effort: a cache miss on the next request just re-verifies.
	c.rdb.Set(ctx, tokenKey(token), userID, c.ttl)
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:token:" + hex.EncodeToString(sum[:])
}
