package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrCacheMiss is returned by Get for a missing or expired key.
var ErrCacheMiss = errors.New("cache miss")

type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCacheRepository keeps the cache in process. Used when no Redis
// address is configured; state is lost on restart and not shared between
// replicas.
type MemoryCacheRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCacheRepository() CacheRepositoryInterface {
	return &MemoryCacheRepository{entries: make(map[string]memoryEntry), now: time.Now}
}

func (r *MemoryCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprint(v)
	}

	entry := memoryEntry{value: s}
	if expiration > 0 {
		entry.expiresAt = r.now().Add(expiration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	r.entries[key] = entry
	return nil
}

func (r *MemoryCacheRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[key]
	if !ok || entry.expired(r.now()) {
		delete(r.entries, key)
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

func (r *MemoryCacheRepository) Del(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.entries, k)
	}
	return nil
}

// sweep drops expired entries; called with mu held.
func (r *MemoryCacheRepository) sweep() {
	now := r.now()
	for k, e := range r.entries {
		if e.expired(now) {
			delete(r.entries, k)
		}
	}
}
