package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewCache stores rendered view payloads in Redis, keyed by view path.
// Entries expire on their own; mutations additionally invalidate the
// affected paths through the event bus.
type ViewCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewViewCache(client *redis.Client, ttl time.Duration) *ViewCache {
	return &ViewCache{
		redis: client,
		ttl:   ttl,
	}
}

func viewKey(path string) string {
	return fmt.Sprintf("view:%s", path)
}

// Get returns the cached payload for a view path, or false on a miss.
func (c *ViewCache) Get(ctx context.Context, path string) ([]byte, bool) {
	data, err := c.redis.Get(ctx, viewKey(path)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set caches a rendered view payload. Failures are ignored; the cache is an
// optimization, never the source of truth.
func (c *ViewCache) Set(ctx context.Context, path string, payload []byte) {
	_ = c.redis.Set(ctx, viewKey(path), payload, c.ttl).Err()
}

// Invalidate drops the cached payloads for the given view paths.
func (c *ViewCache) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	keys := make([]string, len(paths))
	for i, path := range paths {
		keys[i] = viewKey(path)
	}

	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate view cache: %w", err)
	}
	return nil
}
