package utils

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	rstore "github.com/eko/gocache/store/ristretto/v4"
)

func NewCache(ttl time.Duration) (*cache.Cache[[]byte], error) {
	rcache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100000,
		MaxCost:     10000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	store_ := rstore.NewRistretto(rcache, store.WithExpiration(ttl), store.WithCost(1))
	manager := cache.New[[]byte](store_)
	return manager, nil
}

// GetOrLoad returns the cached value of key or calls load and caches its
// result. A zero ttl disables caching.
func GetOrLoad(ctx context.Context, c *cache.Cache[[]byte], key string, ttl time.Duration, load func() ([]byte, error)) ([]byte, error) {
	if ttl > 0 {
		if data, err := c.Get(ctx, key); err == nil {
			return data, nil
		}
	}

	data, err := load()
	if err != nil {
		return nil, err
	}

	if ttl > 0 {
		_ = c.Set(ctx, key, data, store.WithExpiration(ttl))
	}
	return data, nil
}
