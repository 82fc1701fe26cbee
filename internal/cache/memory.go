// Package cache holds the two cache tiers used in front of the upstream
// APIs: a process-local TTL map and a persisted key/value store.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"libfinder/internal/metrics"
)

// Default TTLs for upstream responses.
const (
	DefaultTTL = 5 * time.Minute
	SlowTTL    = 60 * time.Minute
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Memory is a TTL map. Expired entries are dropped when read.
type Memory[V any] struct {
	name  string
	mu    sync.Mutex
	items map[string]entry[V]
	now   func() time.Time
	group singleflight.Group
}

// NewMemory returns an empty cache. name labels its metrics.
func NewMemory[V any](name string) *Memory[V] {
	return NewMemoryWithClock[V](name, time.Now)
}

func NewMemoryWithClock[V any](name string, now func() time.Time) *Memory[V] {
	return &Memory[V]{name: name, items: make(map[string]entry[V]), now: now}
}

func (m *Memory[V]) Get(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		metrics.CacheLookupsTotal.WithLabelValues(m.name, "miss").Inc()
		var zero V
		return zero, false
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.items, key)
		metrics.CacheLookupsTotal.WithLabelValues(m.name, "expired").Inc()
		var zero V
		return zero, false
	}
	metrics.CacheLookupsTotal.WithLabelValues(m.name, "hit").Inc()
	return e.value, true
}

func (m *Memory[V]) Set(key string, value V, ttl time.Duration) {
	m.mu.Lock()
	m.items[key] = entry[V]{value: value, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
}

func (m *Memory[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *Memory[V]) Delete(key string) {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
}

// Len counts stored entries, including expired ones not yet read.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Do returns the cached value for key, or calls fn and caches its result
// for ttl. Concurrent misses on the same key share one fn call, run
// detached from the caller's cancellation. A caller whose ctx ends stops
// waiting with ctx.Err().
// Errors are not cached.
func (m *Memory[V]) Do(ctx context.Context, key string, ttl time.Duration, fn func(context.Context) (V, error)) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	ch := m.group.DoChan(key, func() (any, error) {
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		v, err := fn(context.WithoutCancel(ctx))
		if err != nil {
			return v, err
		}
		m.Set(key, v, ttl)
		return v, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}
