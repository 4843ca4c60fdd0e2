package cache

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store is a keyed identity cache. Entries never expire; callers drop a scope
// with Reset. Concurrent loads of one key share a single call.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	flight  singleflight.Group
}

func NewStore[V any]() *Store[V] {
	return &Store[V]{
		entries: make(map[string]V),
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	return v, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

func (s *Store[V]) Reset() {
	s.mu.Lock()
	s.entries = make(map[string]V)
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key or runs loader once. A failed load
// is not cached, so the next call retries it.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return zero, fmt.Errorf("cache key is required")
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	out, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := out.(V)
	if !ok {
		return zero, fmt.Errorf("unexpected cached value type %T", out)
	}
	return value, nil
}
