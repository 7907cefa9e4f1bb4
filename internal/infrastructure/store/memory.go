package store

import (
	"context"
	"sync"
	"time"

	"github.com/wellnest/backend/internal/domain"
)

// item is a single stored blob with expiration. A zero expiration means the
// blob never expires.
type item struct {
	value      []byte
	expiration time.Time
}

// MemoryStore is a thread-safe in-memory key-value store with optional TTL.
// It backs the user-profile blob storage; there is no durable persistence in
// the current design.
type MemoryStore struct {
	data  map[string]item
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory store and starts a background sweep
// that drops expired entries every 10 minutes.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		data: make(map[string]item),
	}

	go s.cleanupExpired()

	return s
}

// Put stores a blob under key. A ttl of zero means no expiration. The blob is
// copied so callers may reuse their buffer.
func (s *MemoryStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored := item{value: append([]byte(nil), value...)}
	if ttl > 0 {
		stored.expiration = time.Now().Add(ttl)
	}
	s.data[key] = stored

	return nil
}

// Get retrieves the blob stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	it, exists := s.data[key]
	if !exists {
		return nil, domain.ErrProfileNotFound
	}
	if !it.expiration.IsZero() && time.Now().After(it.expiration) {
		return nil, domain.ErrProfileNotFound
	}

	return it.value, nil
}

// Delete removes the blob stored under key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

// Size returns the current number of stored blobs.
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// cleanupExpired removes expired entries periodically.
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, it := range s.data {
			if !it.expiration.IsZero() && now.After(it.expiration) {
				delete(s.data, key)
			}
		}
		s.mutex.Unlock()
	}
}
