package analytics

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/pdf-link-shortener/internal/messaging"
	"go.uber.org/zap"
)

// RegisterConsumers adds one consumer per topic to group, each persisting into store.
func RegisterConsumers(group *messaging.ConsumerGroup, subscriber message.Subscriber, store Store, logger *zap.Logger) {
	group.Add(messaging.NewConsumer(subscriber, TopicDocumentProcessed, store.SaveDocumentProcessed, logger))
	group.Add(messaging.NewConsumer(subscriber, TopicLinksShortened, store.SaveLinksShortened, logger))
	group.Add(messaging.NewConsumer(subscriber, TopicDocumentGenerated, store.SaveDocumentGenerated, logger))
	group.Add(messaging.NewConsumer(subscriber, TopicURLCreated, store.SaveURLCreated, logger))
	group.Add(messaging.NewConsumer(subscriber, TopicURLAccessed, store.SaveURLAccessed, logger))
}
