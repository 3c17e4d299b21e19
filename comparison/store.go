package comparison

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/uniscope/uniscope-api/model"
	"github.com/uniscope/uniscope-api/utils/cache"
)

// StorageKey is the fixed key a selection is kept under within a
// client's namespace.
const StorageKey = "comparison"

// Store persists a comparison selection between sessions. Implementations
// must treat a missing key as an empty selection, not an error.
type Store interface {
	Load(ctx context.Context) ([]model.University, error)
	Save(ctx context.Context, universities []model.University) error
	Clear(ctx context.Context) error
}

// NewClientKey mints a namespace for one client's selection. Clients
// that already have a key reuse it so their selection survives restarts.
func NewClientKey() string {
	return fmt.Sprintf("%s:%s", StorageKey, uuid.New().String())
}

// RedisStore keeps the selection in Redis so it survives process
// restarts and is shared across instances.
type RedisStore struct {
	cache *cache.RedisCache
	key   string
	ttl   time.Duration
}

// NewRedisStore creates a Redis-backed store under the given client key.
// A zero ttl means the selection never expires.
func NewRedisStore(c *cache.RedisCache, key string, ttl time.Duration) *RedisStore {
	if key == "" {
		key = StorageKey
	}
	return &RedisStore{cache: c, key: key, ttl: ttl}
}

// Load retrieves the persisted selection
func (s *RedisStore) Load(ctx context.Context) ([]model.University, error) {
	var universities []model.University
	err := s.cache.GetJSON(ctx, s.key, &universities)
	if errors.Is(err, cache.ErrNotFound) {
		return []model.University{}, nil
	}
	if err != nil {
		return nil, err
	}
	return universities, nil
}

// Save persists the selection, replacing whatever was stored before
func (s *RedisStore) Save(ctx context.Context, universities []model.University) error {
	return s.cache.SetJSON(ctx, s.key, universities, s.ttl)
}

// Clear removes the persisted selection
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key)
}

// MemoryStore keeps the selection in process memory. It exists for
// clients that run without Redis; the selection then lives only as long
// as the process.
type MemoryStore struct {
	mu           sync.Mutex
	universities []model.University
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the current selection
func (s *MemoryStore) Load(ctx context.Context) ([]model.University, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.University, len(s.universities))
	copy(out, s.universities)
	return out, nil
}

// Save replaces the current selection
func (s *MemoryStore) Save(ctx context.Context, universities []model.University) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.universities = make([]model.University, len(universities))
	copy(s.universities, universities)
	return nil
}

// Clear empties the selection
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.universities = nil
	return nil
}
