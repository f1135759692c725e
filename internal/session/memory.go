package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used by the test suites.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]string)}
}

func (s *MemoryStore) Create(_ context.Context, id, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = username
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.sessions[id]
	if !ok {
		return "", ErrSessionNotFound
	}
	return username, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
