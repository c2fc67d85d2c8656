package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    int64
	expiresAt time.Time
}

// memoryStore is an in-process Store for tests and redis-less development.
type memoryStore struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]memoryEntry
}

// NewMemoryStore creates an in-memory Store. Expired bindings are dropped
// lazily on lookup.
func NewMemoryStore(ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &memoryStore{ttl: ttl, m: make(map[string]memoryEntry)}
}

func (s *memoryStore) Create(_ context.Context, userID int64) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.m[token] = memoryEntry{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *memoryStore) Resolve(_ context.Context, token string) (int64, error) {
	s.mu.RLock()
	entry, ok := s.m[token]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.m, token)
		s.mu.Unlock()
		return 0, ErrNotFound
	}
	return entry.userID, nil
}

func (s *memoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.m, token)
	s.mu.Unlock()
	return nil
}
