package store

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lcw/v2"
)

// Cached wraps a store Interface with a loading cache and satisfies the Interface itself.
// Cache is populated on reads via loader function, invalidated on writes.
type Cached struct {
	store Interface
	cache lcw.LoadingCache[string]
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of entries in the cache.
func NewCached(store Interface, maxKeys int) (*Cached, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[string]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cached{store: store, cache: cache}, nil
}

// Get retrieves the value for a scoped key, using cache with load-through.
// Missing keys are not cached.
func (c *Cached) Get(ctx context.Context, scope, key string) (string, error) {
	val, err := c.cache.Get(cacheKey(scope, key), func() (string, error) {
		v, loadErr := c.store.Get(ctx, scope, key)
		if loadErr != nil {
			return "", fmt.Errorf("load from store: %w", loadErr)
		}
		return v, nil
	})
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	return val, nil
}

// Set stores a value and invalidates the cache entry.
func (c *Cached) Set(ctx context.Context, scope, key, value string) error {
	if err := c.store.Set(ctx, scope, key, value); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	ck := cacheKey(scope, key)
	c.cache.Invalidate(func(k string) bool { return k == ck })
	return nil
}

// Close closes the cache and underlying store.
func (c *Cached) Close() error {
	_ = c.cache.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}

// cacheKey joins scope and key with a separator that can't appear in a visitor id.
func cacheKey(scope, key string) string {
	return scope + "\x00" + key
}
