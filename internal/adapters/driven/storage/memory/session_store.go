// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and as lightweight fallbacks.
package memory

import (
	"context"
	"sync"

	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu      sync.RWMutex
	session *domain.Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Save stores the session, replacing the current one if present.
func (s *SessionStore) Save(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

// Current returns the stored session.
func (s *SessionStore) Current(_ context.Context) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	copied := *s.session
	return &copied, nil
}

// Delete removes the stored session.
func (s *SessionStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
