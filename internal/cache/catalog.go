package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/vetcare/clinic-service/internal/domain"
	"github.com/vetcare/clinic-service/internal/persistence"
)

const (
	catalogKey = "catalog:servicios"
	catalogTTL = 5 * time.Minute
)

// CatalogCache keeps the servicios listing in Redis. Every admin write to the
// catalog invalidates it, so readers never observe a stale admin edit. Cache
// failures degrade to the store, never to the request.
type CatalogCache struct {
	redis  *persistence.Redis
	logger *zap.Logger
}

// NewCatalogCache builds the cache around the shared Redis handle.
func NewCatalogCache(redis *persistence.Redis, logger *zap.Logger) *CatalogCache {
	return &CatalogCache{redis: redis, logger: logger}
}

// Get returns the cached catalog, reporting a miss on any failure.
func (c *CatalogCache) Get(ctx context.Context) ([]domain.Service, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, false
	}
	payload, err := c.redis.Client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}
	var services []domain.Service
	if err := json.Unmarshal(payload, &services); err != nil {
		c.logger.Warn("corrupt catalog cache entry; dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return services, true
}

// Set stores the catalog with a bounded TTL.
func (c *CatalogCache) Set(ctx context.Context, services []domain.Service) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	payload, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, catalogKey, payload, catalogTTL).Err(); err != nil {
		c.logger.Debug("catalog cache set failed", zap.Error(err))
	}
}

// Invalidate drops the cached catalog.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	if err := c.redis.Client.Del(ctx, catalogKey).Err(); err != nil {
		c.logger.Debug("catalog cache invalidation failed", zap.Error(err))
	}
}
