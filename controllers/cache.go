package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/cemerttu/backend-store-master/services"
)

const (
	catalogListCachePrefix = "catalog:list:"
	catalogVersionKey      = "catalog:version"

	// DefaultCacheTTL bounds how stale a cached catalog list can get even
	// if invalidation is missed.
	DefaultCacheTTL = 10 * time.Minute
)

// CatalogCache is an optional Redis-backed cache for catalog list responses.
// Every catalog mutation bumps a version key, so stale entries are simply
// never read again. A nil *CatalogCache disables caching entirely.
type CatalogCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCatalogCache creates a catalog cache on the given client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{
		redis: client,
		ttl:   DefaultCacheTTL,
	}
}

// GetList retrieves a cached list response for the given filter set.
func (cc *CatalogCache) GetList(ctx context.Context, params services.ListParams) (gin.H, bool) {
	if cc == nil {
		return nil, false
	}
	version := cc.version(ctx)
	if version == 0 {
		return nil, false
	}

	cached, err := cc.redis.Get(ctx, cc.listKey(version, params)).Result()
	if err != nil {
		return nil, false
	}

	var response gin.H
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return response, true
}

// SetListAsync caches a list response in the background.
func (cc *CatalogCache) SetListAsync(params services.ListParams, response gin.H) {
	if cc == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version := cc.version(bgCtx)
		if version == 0 {
			return
		}

		jsonBytes, err := json.Marshal(response)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}
		if err := cc.redis.Set(bgCtx, cc.listKey(version, params), jsonBytes, cc.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// Invalidate bumps the catalog version after any catalog mutation.
func (cc *CatalogCache) Invalidate(ctx context.Context) {
	if cc == nil {
		return
	}
	if err := cc.redis.Incr(ctx, catalogVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to bump catalog cache version", zap.Error(err))
	}
}

func (cc *CatalogCache) listKey(version int64, params services.ListParams) string {
	return fmt.Sprintf("%s%d:%s|%s|%s|%s|%d",
		catalogListCachePrefix, version,
		params.Category, params.Gender, params.Search, params.Sort, params.Limit,
	)
}

func (cc *CatalogCache) version(ctx context.Context) int64 {
	val, err := cc.redis.Get(ctx, catalogVersionKey).Int64()
	if err == redis.Nil {
		if err := cc.redis.Set(ctx, catalogVersionKey, 1, 0).Err(); err != nil {
			return 0
		}
		return 1
	}
	if err != nil {
		return 0
	}
	return val
}
