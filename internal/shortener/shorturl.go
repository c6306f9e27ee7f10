package shortener

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no short URL matches a code or hash.
	ErrNotFound = errors.New("short url not found")
	// ErrInvalidURL is returned for URLs without a scheme and host.
	ErrInvalidURL = errors.New("invalid url")
)

// Code is the path segment that identifies a short URL.
type Code string

// URLHash is the hex SHA-256 of a normalized URL.
type URLHash string

// ShortURL maps a code to the URL it redirects to.
type ShortURL struct {
	Code        Code
	OriginalURL string
	URLHash     URLHash // set only by the hash strategy
	CreatedAt   time.Time
}

// Repository persists short URLs.
type Repository interface {
	Save(ctx context.Context, shortURL *ShortURL) error
	GetByCode(ctx context.Context, code Code) (*ShortURL, error)
	GetByHash(ctx context.Context, hash URLHash) (*ShortURL, error)
}
