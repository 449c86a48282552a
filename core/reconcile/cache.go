package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Cache holds the loaded indices of both sources.
type Cache struct {
	Left  *Index
	Right *Index

	// Built is the timestamp when this cache was built.
	Built time.Time

	// TTL is the time-to-live for this cache.
	TTL time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *Cache) IsExpired() bool {
	if c.TTL == 0 {
		return true
	}
	return time.Since(c.Built) > c.TTL
}

// cacheStore holds all caches keyed by spec cache key.
type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*Cache
	sf     singleflight.Group
}

var globalCacheStore = &cacheStore{
	caches: make(map[string]*Cache),
}

// BuildCache loads both sources concurrently. It does NOT store the result; use
// GetOrBuildCache for that.
func BuildCache(ctx context.Context, spec *Spec) (*Cache, error) {
	var left, right *Index

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		idx, err := spec.Left.LoadIndex(gctx)
		if err != nil {
			return fmt.Errorf("load %s: %w", spec.Left.Name(), err)
		}
		left = idx
		return nil
	})
	g.Go(func() error {
		idx, err := spec.Right.LoadIndex(gctx)
		if err != nil {
			return fmt.Errorf("load %s: %w", spec.Right.Name(), err)
		}
		right = idx
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Cache{
		Left:  left,
		Right: right,
		Built: time.Now(),
		TTL:   spec.CacheTTL,
	}, nil
}

// GetOrBuildCache returns the stored cache for spec, building it when missing or
// expired. Concurrent callers share one build.
func GetOrBuildCache(ctx context.Context, spec *Spec) (*Cache, error) {
	key := spec.CacheKey()

	globalCacheStore.mu.RLock()
	cache, exists := globalCacheStore.caches[key]
	globalCacheStore.mu.RUnlock()

	if exists && !cache.IsExpired() {
		return cache, nil
	}

	result, err, _ := globalCacheStore.sf.Do(key, func() (any, error) {
		globalCacheStore.mu.RLock()
		cache, exists := globalCacheStore.caches[key]
		globalCacheStore.mu.RUnlock()

		if exists && !cache.IsExpired() {
			return cache, nil
		}

		fresh, err := BuildCache(ctx, spec)
		if err != nil {
			return nil, err
		}

		globalCacheStore.mu.Lock()
		globalCacheStore.caches[key] = fresh
		globalCacheStore.mu.Unlock()

		return fresh, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Cache), nil
}

// InvalidateCache removes the cache for the given spec from the store.
func InvalidateCache(spec *Spec) {
	key := spec.CacheKey()
	globalCacheStore.mu.Lock()
	delete(globalCacheStore.caches, key)
	globalCacheStore.mu.Unlock()
}
