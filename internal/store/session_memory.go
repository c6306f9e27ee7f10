package store

import (
	"context"
	"sync"
	"time"

	"github.com/serroba/pdf-link-shortener/internal/documents"
)

type sessionEntry struct {
	session   documents.Session
	expiresAt time.Time
}

// SessionMemoryStore is an in-memory documents.Store whose entries expire
// ttl after their last save.
type SessionMemoryStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionMemoryStore creates a session store. A zero ttl never expires.
func NewSessionMemoryStore(ttl time.Duration) *SessionMemoryStore {
	return &SessionMemoryStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *SessionMemoryStore) Save(_ context.Context, session *documents.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := sessionEntry{session: *session}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}

	m.sessions[session.ID] = entry
	m.pruneLocked()

	return nil
}

func (m *SessionMemoryStore) Get(_ context.Context, id string) (*documents.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok || m.expired(entry) {
		delete(m.sessions, id)

		return nil, documents.ErrNotFound
	}

	session := entry.session

	return &session, nil
}

func (m *SessionMemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok || m.expired(entry) {
		delete(m.sessions, id)

		return documents.ErrNotFound
	}

	delete(m.sessions, id)

	return nil
}

func (m *SessionMemoryStore) expired(entry sessionEntry) bool {
	return !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt)
}

func (m *SessionMemoryStore) pruneLocked() {
	for id, entry := range m.sessions {
		if m.expired(entry) {
			delete(m.sessions, id)
		}
	}
}

var _ documents.Store = (*SessionMemoryStore)(nil)
