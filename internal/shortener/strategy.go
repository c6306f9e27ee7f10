package shortener

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// StrategyName selects how codes are assigned.
type StrategyName string

const (
	// StrategyToken issues a fresh code per request.
	StrategyToken StrategyName = "token"
	// StrategyHash reuses the code of an equivalent URL.
	StrategyHash StrategyName = "hash"
)

// Strategy creates short URLs.
type Strategy interface {
	Shorten(ctx context.Context, url string) (*ShortURL, error)
}

// CodeGenerator returns a new random code.
type CodeGenerator func() string

// TokenStrategy always generates a new code.
type TokenStrategy struct {
	store        Repository
	generateCode CodeGenerator
	now          func() time.Time
}

// NewTokenStrategy creates a token strategy.
func NewTokenStrategy(store Repository, generator CodeGenerator) *TokenStrategy {
	return &TokenStrategy{store: store, generateCode: generator, now: time.Now}
}

func (s *TokenStrategy) Shorten(ctx context.Context, url string) (*ShortURL, error) {
	if _, err := NormalizeURL(url); err != nil {
		return nil, err
	}

	shortURL := &ShortURL{
		Code:        Code(s.generateCode()),
		OriginalURL: url,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.store.Save(ctx, shortURL); err != nil {
		return nil, fmt.Errorf("save %s: %w", shortURL.Code, err)
	}

	return shortURL, nil
}

// HashStrategy returns the existing code for equivalent URLs.
type HashStrategy struct {
	store        Repository
	generateCode CodeGenerator
	now          func() time.Time
}

// NewHashStrategy creates a hash strategy.
func NewHashStrategy(store Repository, generator CodeGenerator) *HashStrategy {
	return &HashStrategy{store: store, generateCode: generator, now: time.Now}
}

func (s *HashStrategy) Shorten(ctx context.Context, rawURL string) (*ShortURL, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	hash := HashURL(normalized)

	existing, err := s.store.GetByHash(ctx, hash)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup hash: %w", err)
	}

	shortURL := &ShortURL{
		Code:        Code(s.generateCode()),
		OriginalURL: rawURL,
		URLHash:     hash,
		CreatedAt:   s.now().UTC(),
	}

	if err = s.store.Save(ctx, shortURL); err != nil {
		return nil, fmt.Errorf("save %s: %w", shortURL.Code, err)
	}

	return shortURL, nil
}
