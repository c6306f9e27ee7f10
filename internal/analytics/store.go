package analytics

import "context"

// Store persists analytics events.
type Store interface {
	SaveDocumentProcessed(ctx context.Context, event *DocumentProcessedEvent) error
	SaveLinksShortened(ctx context.Context, event *LinksShortenedEvent) error
	SaveDocumentGenerated(ctx context.Context, event *DocumentGeneratedEvent) error
	SaveURLCreated(ctx context.Context, event *URLCreatedEvent) error
	SaveURLAccessed(ctx context.Context, event *URLAccessedEvent) error
}
