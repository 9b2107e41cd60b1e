package category_cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/redis/go-redis/v9"
)

const TTL = 5 * time.Minute

// ── In-process directory cache ───────────────────────────────────────────────
// Holds the validated category directory so every view mounted within the TTL
// shares one menu fetch.

type directoryEntry struct {
	categories []models.Category
	fetchedAt  time.Time
}

type DirectoryCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	entry *directoryEntry
	now   func() time.Time
}

// NewDirectoryCache returns an empty cache. A non-positive ttl falls back to TTL.
func NewDirectoryCache(ttl time.Duration) *DirectoryCache {
	if ttl <= 0 {
		ttl = TTL
	}
	return &DirectoryCache{ttl: ttl, now: time.Now}
}

func (c *DirectoryCache) Get() ([]models.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry != nil && c.now().Sub(c.entry.fetchedAt) < c.ttl {
		return c.entry.categories, true
	}
	return nil, false
}

func (c *DirectoryCache) Set(categories []models.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = &directoryEntry{
		categories: categories,
		fetchedAt:  c.now(),
	}
}

func (c *DirectoryCache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}

// ── Shared directory cache (Redis) ───────────────────────────────────────────
// Lets several service instances share one menu fetch. Every method is a no-op
// on a nil client.

const redisDirectoryKey = "menu:categories:v1"

type RedisDirectory struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDirectory(client *redis.Client, ttl time.Duration) *RedisDirectory {
	if ttl <= 0 {
		ttl = TTL
	}
	return &RedisDirectory{client: client, ttl: ttl}
}

func (r *RedisDirectory) Get(ctx context.Context) ([]models.Category, bool, error) {
	if r == nil || r.client == nil {
		return nil, false, nil
	}
	raw, err := r.client.Get(ctx, redisDirectoryKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var categories []models.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, false, err
	}
	return categories, true, nil
}

func (r *RedisDirectory) Set(ctx context.Context, categories []models.Category) error {
	if r == nil || r.client == nil {
		return nil
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisDirectoryKey, raw, r.ttl).Err()
}

func (r *RedisDirectory) Invalidate(ctx context.Context) error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Del(ctx, redisDirectoryKey).Err()
}
