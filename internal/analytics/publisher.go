package analytics

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/pdf-link-shortener/internal/messaging"
)

// Publishers holds one typed publish function per topic.
type Publishers struct {
	DocumentProcessed messaging.Publish[DocumentProcessedEvent]
	LinksShortened    messaging.Publish[LinksShortenedEvent]
	DocumentGenerated messaging.Publish[DocumentGeneratedEvent]
	URLCreated        messaging.Publish[URLCreatedEvent]
	URLAccessed       messaging.Publish[URLAccessedEvent]
}

// NewPublishers binds every topic to publisher.
func NewPublishers(publisher message.Publisher) *Publishers {
	return &Publishers{
		DocumentProcessed: messaging.NewPublishFunc[DocumentProcessedEvent](publisher, TopicDocumentProcessed),
		LinksShortened:    messaging.NewPublishFunc[LinksShortenedEvent](publisher, TopicLinksShortened),
		DocumentGenerated: messaging.NewPublishFunc[DocumentGeneratedEvent](publisher, TopicDocumentGenerated),
		URLCreated:        messaging.NewPublishFunc[URLCreatedEvent](publisher, TopicURLCreated),
		URLAccessed:       messaging.NewPublishFunc[URLAccessedEvent](publisher, TopicURLAccessed),
	}
}

// Discard returns publishers that drop every event.
func Discard() *Publishers {
	return &Publishers{
		DocumentProcessed: discard[DocumentProcessedEvent],
		LinksShortened:    discard[LinksShortenedEvent],
		DocumentGenerated: discard[DocumentGeneratedEvent],
		URLCreated:        discard[URLCreatedEvent],
		URLAccessed:       discard[URLAccessedEvent],
	}
}

func discard[T any](*T) error { return nil }
