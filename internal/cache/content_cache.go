package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

const keyPrefix = "content:published:"

// ContentCache keeps published content collections in Redis so public pages
// avoid a database round trip. Only published rows are ever cached; scope
// and role data never pass through here.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewContentCache constructs the cache. A nil client disables caching.
func NewContentCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ContentCache {
	return &ContentCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached collection and whether it was present.
func (c *ContentCache) Get(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, keyPrefix+string(kind)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("content cache read failed", zap.String("kind", string(kind)), zap.Error(err))
		}
		return nil, false
	}
	var items []domain.ContentItem
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("content cache entry corrupt; dropping", zap.String("kind", string(kind)), zap.Error(err))
		c.Invalidate(ctx, kind)
		return nil, false
	}
	return items, true
}

// Set stores the collection. Failures are logged and ignored; the cache is
// an optimization, not a source of truth.
func (c *ContentCache) Set(ctx context.Context, kind domain.ContentKind, items []domain.ContentItem) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, keyPrefix+string(kind), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("content cache write failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}

// Invalidate drops the cached collection after a publish flip.
func (c *ContentCache) Invalidate(ctx context.Context, kind domain.ContentKind) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, keyPrefix+string(kind)).Err(); err != nil {
		c.logger.Debug("content cache invalidation failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}
