package store

import (
	"context"

	"github.com/serroba/pdf-link-shortener/internal/analytics"
	"go.uber.org/zap"
)

// Noop is an analytics.Store that only logs what it receives.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a logging no-op store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveDocumentProcessed(_ context.Context, event *analytics.DocumentProcessedEvent) error {
	n.logger.Info("document processed event received",
		zap.String("documentId", event.DocumentID),
		zap.String("filename", event.Filename),
		zap.Int("pageCount", event.PageCount),
		zap.Int("linkCount", event.LinkCount),
	)

	return nil
}

func (n *Noop) SaveLinksShortened(_ context.Context, event *analytics.LinksShortenedEvent) error {
	n.logger.Info("links shortened event received",
		zap.String("documentId", event.DocumentID),
		zap.String("provider", event.Provider),
		zap.Int("succeeded", event.Succeeded),
		zap.Int("failed", event.Failed),
	)

	return nil
}

func (n *Noop) SaveDocumentGenerated(_ context.Context, event *analytics.DocumentGeneratedEvent) error {
	n.logger.Info("document generated event received",
		zap.String("documentId", event.DocumentID),
		zap.Int("linksUpdated", event.LinksUpdated),
		zap.Int("size", event.Size),
	)

	return nil
}

func (n *Noop) SaveURLCreated(_ context.Context, event *analytics.URLCreatedEvent) error {
	n.logger.Info("url created event received",
		zap.String("code", event.Code),
		zap.String("originalUrl", event.OriginalURL),
		zap.String("strategy", event.Strategy),
		zap.Time("createdAt", event.CreatedAt),
	)

	return nil
}

func (n *Noop) SaveURLAccessed(_ context.Context, event *analytics.URLAccessedEvent) error {
	n.logger.Info("url accessed event received",
		zap.String("code", event.Code),
		zap.Time("accessedAt", event.AccessedAt),
		zap.String("referrer", event.Referrer),
	)

	return nil
}

var _ analytics.Store = (*Noop)(nil)
