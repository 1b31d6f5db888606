package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadFunc produces the value for a cache miss.
type LoadFunc func(ctx context.Context) ([]byte, error)

// Loader wraps a Store with read-through loading and stampede protection.
type Loader struct {
	store Store
	ttl   time.Duration
	sf    singleflight.Group
}

// NewLoader creates a Loader. A zero ttl disables caching entirely.
func NewLoader(store Store, ttl time.Duration) *Loader {
	return &Loader{store: store, ttl: ttl}
}

// GetOrLoad returns the cached value for key, or calls load once per key
// across concurrent callers and stores the result.
func (l *Loader) GetOrLoad(ctx context.Context, key string, load LoadFunc) ([]byte, error) {
	if l.ttl == 0 || l.store == nil {
		return load(ctx)
	}

	// Fast path. A failing cache backend degrades to a direct load.
	if val, ok, err := l.store.Get(ctx, key); err == nil && ok {
		return val, nil
	}

	result, err, _ := l.sf.Do(key, func() (interface{}, error) {
		if val, ok, err := l.store.Get(ctx, key); err == nil && ok {
			return val, nil
		}

		val, err := load(ctx)
		if err != nil {
			return nil, err
		}
		_ = l.store.Set(ctx, key, val, l.ttl)
		return val, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// Invalidate drops the cached value for key.
func (l *Loader) Invalidate(ctx context.Context, key string) error {
	if l.store == nil {
		return nil
	}
	return l.store.Delete(ctx, key)
}
