package session

import (
	"context"
	"sync"
)

// MemoryStore holds sessions in process memory, for registers running
// without redis and for tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Save(_ context.Context, registerID string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[registerID] = s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, registerID string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.sessions[registerID]
	if !exists {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, registerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, registerID)
	return nil
}
