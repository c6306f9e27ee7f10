package store

import (
	"context"
	"sync"

	"github.com/serroba/pdf-link-shortener/internal/credentials"
	"github.com/serroba/pdf-link-shortener/internal/linkly"
)

// CredentialMemoryStore is an in-memory credentials.Store.
type CredentialMemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]linkly.Credentials
}

// NewCredentialMemoryStore creates an empty credential store.
func NewCredentialMemoryStore() *CredentialMemoryStore {
	return &CredentialMemoryStore{profiles: make(map[string]linkly.Credentials)}
}

func (m *CredentialMemoryStore) Save(_ context.Context, profile string, creds linkly.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profiles[profile] = creds

	return nil
}

func (m *CredentialMemoryStore) Get(_ context.Context, profile string) (*linkly.Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	creds, ok := m.profiles[profile]
	if !ok {
		return nil, credentials.ErrNotFound
	}

	return &creds, nil
}

func (m *CredentialMemoryStore) Delete(_ context.Context, profile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[profile]; !ok {
		return credentials.ErrNotFound
	}

	delete(m.profiles, profile)

	return nil
}

var _ credentials.Store = (*CredentialMemoryStore)(nil)
