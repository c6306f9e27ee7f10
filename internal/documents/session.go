// Package documents keeps uploaded PDFs between the inspect, shorten and
// generate steps.
package documents

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/serroba/pdf-link-shortener/internal/links"
	"github.com/serroba/pdf-link-shortener/internal/shortening"
)

var (
	// ErrNotFound is returned for unknown or expired sessions.
	ErrNotFound = errors.New("document not found")
	// ErrTooLarge is returned for uploads over the configured limit.
	ErrTooLarge = errors.New("document too large")
)

// Session is one uploaded document and everything derived from it.
type Session struct {
	ID        string              `json:"id"`
	Filename  string              `json:"filename"`
	Document  []byte              `json:"document"`
	Info      *links.DocumentInfo `json:"info"`
	Provider  string              `json:"provider,omitempty"`
	Results   []shortening.Result `json:"results,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// Links returns the discovered links.
func (s *Session) Links() []links.DiscoveredLink {
	if s.Info == nil {
		return nil
	}

	return s.Info.Links
}

// OutputFilename names the rewritten document.
func (s *Session) OutputFilename() string {
	name := filepath.Base(s.Filename)
	if name == "." || name == "/" || name == "" {
		name = "document.pdf"
	}

	ext := filepath.Ext(name)
	if strings.EqualFold(ext, ".pdf") {
		name = strings.TrimSuffix(name, ext)
	}

	return name + "_with_short_links.pdf"
}

// Store persists sessions.
type Store interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
