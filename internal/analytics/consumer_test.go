package analytics_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/serroba/pdf-link-shortener/internal/analytics"
	"github.com/serroba/pdf-link-shortener/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type topicSubscriber struct {
	mu     sync.Mutex
	chans  map[string]chan *message.Message
	closed bool
}

func newTopicSubscriber() *topicSubscriber {
	return &topicSubscriber{chans: make(map[string]chan *message.Message)}
}

func (s *topicSubscriber) channel(topic string) chan *message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.chans[topic]
	if !ok {
		ch = make(chan *message.Message, 10)
		s.chans[topic] = ch
	}

	return ch
}

func (s *topicSubscriber) Subscribe(_ context.Context, topic string) (<-chan *message.Message, error) {
	return s.channel(topic), nil
}

func (s *topicSubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		for _, ch := range s.chans {
			close(ch)
		}
	}

	return nil
}

type recordingStore struct {
	mu     sync.Mutex
	topics []string
}

func (r *recordingStore) record(topic string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.topics = append(r.topics, topic)

	return nil
}

func (r *recordingStore) SaveDocumentProcessed(context.Context, *analytics.DocumentProcessedEvent) error {
	return r.record(analytics.TopicDocumentProcessed)
}

func (r *recordingStore) SaveLinksShortened(context.Context, *analytics.LinksShortenedEvent) error {
	return r.record(analytics.TopicLinksShortened)
}

func (r *recordingStore) SaveDocumentGenerated(context.Context, *analytics.DocumentGeneratedEvent) error {
	return r.record(analytics.TopicDocumentGenerated)
}

func (r *recordingStore) SaveURLCreated(context.Context, *analytics.URLCreatedEvent) error {
	return r.record(analytics.TopicURLCreated)
}

func (r *recordingStore) SaveURLAccessed(context.Context, *analytics.URLAccessedEvent) error {
	return r.record(analytics.TopicURLAccessed)
}

func waitAck(t *testing.T, msg *message.Message) {
	t.Helper()

	select {
	case <-msg.Acked():
	case <-msg.Nacked():
		t.Fatal("message was nacked")
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for ack")
	}
}

func TestRegisterConsumers(t *testing.T) {
	sub := newTopicSubscriber()
	st := &recordingStore{}
	group := messaging.NewConsumerGroup(sub, zap.NewNop())

	analytics.RegisterConsumers(group, sub, st, zap.NewNop())
	require.NoError(t, group.Start(context.Background()))

	topics := []string{
		analytics.TopicDocumentProcessed,
		analytics.TopicLinksShortened,
		analytics.TopicDocumentGenerated,
		analytics.TopicURLCreated,
		analytics.TopicURLAccessed,
	}

	for _, topic := range topics {
		payload, _ := json.Marshal(map[string]string{"documentId": "d1", "code": "c1"})
		msg := message.NewMessage(uuid.NewString(), payload)

		sub.channel(topic) <- msg

		waitAck(t, msg)
	}

	require.NoError(t, group.Shutdown())

	st.mu.Lock()
	defer st.mu.Unlock()

	assert.Equal(t, topics, st.topics)
}
