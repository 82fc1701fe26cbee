package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"libfinder/internal/logger"
	"libfinder/internal/metrics"
)

// TTLs for persisted entries.
const (
	CoverTTL   = 30 * 24 * time.Hour
	PopularTTL = 24 * time.Hour
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is a persisted byte cache shared across restarts.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Has(ctx context.Context, key string) (bool, error)
}

// RedisStore keeps entries in Redis under a common key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// OpenRedis returns nil when addr is empty so callers can fall back to
// the in-memory store.
func OpenRedis(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Has(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", key, err)
	}
	return n > 0, nil
}

// MemoryStore is a Store backed by a Memory map, used when Redis is not
// configured and in tests.
type MemoryStore struct {
	m *Memory[[]byte]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: NewMemory[[]byte]("persistent_fallback")}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := s.m.Get(key); ok {
		return v, nil
	}
	return nil, ErrMiss
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.m.Set(key, value, ttl)
	return nil
}

func (s *MemoryStore) Has(_ context.Context, key string) (bool, error) {
	return s.m.Has(key), nil
}

// Fetch reads key from store and decodes it as JSON. On a miss or any read
// or decode failure it calls fn; a successful result is written back with
// ttl. Write failures are logged and never fail the call.
func Fetch[T any](ctx context.Context, store Store, key string, ttl time.Duration, fn func(context.Context) (T, error)) (T, error) {
	raw, err := store.Get(ctx, key)
	switch {
	case err == nil:
		var v T
		jerr := json.Unmarshal(raw, &v)
		if jerr == nil {
			metrics.CacheLookupsTotal.WithLabelValues("persistent", "hit").Inc()
			return v, nil
		}
		logger.L().Warn("cache_decode_failed", "key", key, "err", jerr)
	case errors.Is(err, ErrMiss):
		metrics.CacheLookupsTotal.WithLabelValues("persistent", "miss").Inc()
	default:
		metrics.CacheLookupsTotal.WithLabelValues("persistent", "error").Inc()
		logger.L().Warn("cache_read_failed", "key", key, "err", err)
	}

	v, err := fn(ctx)
	if err != nil {
		return v, err
	}
	if raw, merr := json.Marshal(v); merr != nil {
		logger.L().Warn("cache_encode_failed", "key", key, "err", merr)
	} else if werr := store.Set(ctx, key, raw, ttl); werr != nil {
		logger.L().Warn("cache_write_failed", "key", key, "err", werr)
	}
	return v, nil
}
