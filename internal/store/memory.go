package store

import (
	"context"
	"sync"

	"github.com/serroba/pdf-link-shortener/internal/shortener"
)

// MemoryStore is an in-memory shortener.Repository.
type MemoryStore struct {
	mu     sync.RWMutex
	urls   map[shortener.Code]shortener.ShortURL
	hashes map[shortener.URLHash]shortener.Code
}

// NewMemoryStore creates an empty short URL store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		urls:   make(map[shortener.Code]shortener.ShortURL),
		hashes: make(map[shortener.URLHash]shortener.Code),
	}
}

// Save keeps the first URL stored under a code.
func (m *MemoryStore) Save(_ context.Context, shortURL *shortener.ShortURL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.urls[shortURL.Code]; exists {
		return nil
	}

	m.urls[shortURL.Code] = *shortURL

	if shortURL.URLHash != "" {
		m.hashes[shortURL.URLHash] = shortURL.Code
	}

	return nil
}

func (m *MemoryStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	url, ok := m.urls[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &url, nil
}

func (m *MemoryStore) GetByHash(_ context.Context, hash shortener.URLHash) (*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	code, ok := m.hashes[hash]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	url := m.urls[code]

	return &url, nil
}

var _ shortener.Repository = (*MemoryStore)(nil)
