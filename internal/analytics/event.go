package analytics

import "time"

// Topics events are published on.
const (
	TopicDocumentProcessed = "document.processed"
	TopicLinksShortened    = "links.shortened"
	TopicDocumentGenerated = "document.generated"
	TopicURLCreated        = "url.created"
	TopicURLAccessed       = "url.accessed"
)

// DocumentProcessedEvent is emitted after an upload has been inspected.
type DocumentProcessedEvent struct {
	DocumentID  string    `json:"documentId"`
	Filename    string    `json:"filename"`
	Size        int       `json:"size"`
	PageCount   int       `json:"pageCount"`
	LinkCount   int       `json:"linkCount"`
	ProcessedAt time.Time `json:"processedAt"`
	ClientIP    string    `json:"clientIp"`
	UserAgent   string    `json:"userAgent"`
}

// LinksShortenedEvent is emitted after a document's links went through a provider.
type LinksShortenedEvent struct {
	DocumentID  string    `json:"documentId"`
	Provider    string    `json:"provider"`
	Succeeded   int       `json:"succeeded"`
	Failed      int       `json:"failed"`
	ShortenedAt time.Time `json:"shortenedAt"`
}

// DocumentGeneratedEvent is emitted when a rewritten document is produced.
type DocumentGeneratedEvent struct {
	DocumentID   string    `json:"documentId"`
	LinksUpdated int       `json:"linksUpdated"`
	Size         int       `json:"size"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

// URLCreatedEvent is emitted when the local shortener issues a code.
type URLCreatedEvent struct {
	Code        string    `json:"code"`
	OriginalURL string    `json:"originalUrl"`
	URLHash     string    `json:"urlHash,omitempty"`
	Strategy    string    `json:"strategy"`
	CreatedAt   time.Time `json:"createdAt"`
	ClientIP    string    `json:"clientIp"`
	UserAgent   string    `json:"userAgent"`
}

// URLAccessedEvent is emitted on every local short URL redirect.
type URLAccessedEvent struct {
	Code       string    `json:"code"`
	AccessedAt time.Time `json:"accessedAt"`
	ClientIP   string    `json:"clientIp"`
	UserAgent  string    `json:"userAgent"`
	Referrer   string    `json:"referrer"`
}
