package messaging_test

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/pdf-link-shortener/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	messages   []*message.Message
	topic      string
	publishErr error
	closeErr   error
}

func (m *mockPublisher) Publish(topic string, msgs ...*message.Message) error {
	if m.publishErr != nil {
		return m.publishErr
	}

	m.topic = topic
	m.messages = append(m.messages, msgs...)

	return nil
}

func (m *mockPublisher) Close() error {
	return m.closeErr
}

func TestNewPublishFunc(t *testing.T) {
	t.Run("publishes the encoded event with metadata", func(t *testing.T) {
		mock := &mockPublisher{}
		publish := messaging.NewPublishFunc[testEvent](mock, "document.processed")

		require.NoError(t, publish(&testEvent{ID: "123", Name: "test"}))

		assert.Equal(t, "document.processed", mock.topic)
		require.Len(t, mock.messages, 1)
		assert.JSONEq(t, `{"id":"123","name":"test"}`, string(mock.messages[0].Payload))
		assert.Equal(t, "document.processed", mock.messages[0].Metadata.Get(messaging.MetadataTopic))
		assert.NotEmpty(t, mock.messages[0].Metadata.Get(messaging.MetadataPublishedAt))
	})

	t.Run("wraps publisher errors with the topic", func(t *testing.T) {
		cause := errors.New("broker down")
		publish := messaging.NewPublishFunc[testEvent](&mockPublisher{publishErr: cause}, "links.shortened")

		err := publish(&testEvent{ID: "123"})

		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "links.shortened")
	})
}

func TestPublisherGroup(t *testing.T) {
	t.Run("exposes and closes the publisher", func(t *testing.T) {
		mock := &mockPublisher{}
		group := messaging.NewPublisherGroup(mock)

		assert.Same(t, mock, group.Publisher())
		assert.NoError(t, group.Shutdown())
	})

	t.Run("returns close errors", func(t *testing.T) {
		group := messaging.NewPublisherGroup(&mockPublisher{closeErr: errors.New("close error")})

		assert.Error(t, group.Shutdown())
	})
}
