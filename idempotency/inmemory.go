package idempotency

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore is the single-instance fallback used when Redis is not
// configured. Expired entries are swept lazily on access.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
}

type inMemoryEntry struct {
	bookingId string
	expiresAt time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{entries: map[string]inMemoryEntry{}}
}

func (s *InMemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return "", false, nil
	}

	return entry.bookingId, true, nil
}

func (s *InMemoryStore) Put(_ context.Context, key, bookingId string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = inMemoryEntry{
		bookingId: bookingId,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}
