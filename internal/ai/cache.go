package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cached memoizes completions in Redis, keyed by a hash of the request.
// Identical prompts within the TTL hit the cache instead of the provider;
// Redis being down or unset degrades silently to pass-through.
type Cached struct {
	inner Provider
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCached wraps inner with Redis memoization. When rdb is nil the wrapper
// is a transparent pass-through.
func NewCached(inner Provider, rdb *redis.Client, ttl time.Duration) *Cached {
	return &Cached{inner: inner, rdb: rdb, ttl: ttl}
}

// Name implements Provider.
func (c *Cached) Name() string { return c.inner.Name() }

func cacheKey(req Request) string {
	h := sha256.New()
	h.Write([]byte(req.System))
	h.Write([]byte{0})
	h.Write([]byte(req.Prompt))
	return "ai:resp:" + hex.EncodeToString(h.Sum(nil))
}

// Complete implements Provider.
func (c *Cached) Complete(ctx context.Context, req Request) (string, error) {
	if c.rdb == nil {
		return c.inner.Complete(ctx, req)
	}
	key := cacheKey(req)
	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil && cached != "" {
		return cached, nil
	} else if err != nil && err != redis.Nil {
		log.Debug().Err(err).Msg("ai cache read failed")
	}
	text, err := c.inner.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	if err := c.rdb.Set(ctx, key, text, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Msg("ai cache write failed")
	}
	return text, nil
}
