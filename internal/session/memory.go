package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store for tests and single-process dev
// setups without Redis. Sessions do not expire and are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]int)}
}

func (s *MemoryStore) Create(_ context.Context, adminID int) (string, error) {
	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = adminID
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (int, bool, error) {
	s.mu.RLock()
	adminID, ok := s.sessions[token]
	s.mu.RUnlock()
	return adminID, ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
