package storage

import (
	"context"
	"sync"

	"storefront/storefront-svc/internal/domain"
)

// MemorySessionStore is the process-local fallback when Redis is not configured.
// It holds one user per session id.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.UserSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domain.UserSession)}
}

func (s *MemorySessionStore) Load(_ context.Context, sessionID string) (domain.UserSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	return session, ok, nil
}

func (s *MemorySessionStore) Save(_ context.Context, sessionID string, session domain.UserSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = session
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
