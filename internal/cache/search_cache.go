package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/TailorConnectApp/tailor-marketplace/internal/config"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

const searchKey = "tailors:search:verified"

// NewClient returns nil when no REDIS_URL is configured; callers treat
// a nil client as "cache disabled".
func NewClient(cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, search cache disabled: %v", err)
		return nil
	}
	return redis.NewClient(opts)
}

// SearchCache holds the unfiltered verified-tailor search result. It is
// best effort: any redis failure falls through to the database.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSearchCache(rdb *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{rdb: rdb, ttl: ttl}
}

func (c *SearchCache) Get(ctx context.Context) ([]models.Tailor, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, searchKey).Bytes()
	if err != nil {
		return nil, false
	}

	var tailors []models.Tailor
	if err := json.Unmarshal(raw, &tailors); err != nil {
		return nil, false
	}
	return tailors, true
}

func (c *SearchCache) Set(ctx context.Context, tailors []models.Tailor) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(tailors)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, searchKey, raw, c.ttl).Err(); err != nil {
		log.Printf("search cache set failed: %v", err)
	}
}

// Invalidate drops the cached result. Called whenever a tailor's
// aggregate rating or verification changes.
func (c *SearchCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, searchKey).Err(); err != nil {
		log.Printf("search cache invalidate failed: %v", err)
	}
}
