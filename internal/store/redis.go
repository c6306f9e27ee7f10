package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/pdf-link-shortener/internal/documents"
)

// RedisSessionStore is a Redis documents.Store. Sessions are stored as JSON
// under "document:{id}" and expire ttl after their last save.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		prefix: "document:",
		ttl:    ttl,
	}
}

func (r *RedisSessionStore) Save(ctx context.Context, session *documents.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	return r.client.Set(ctx, r.prefix+session.ID, payload, r.ttl).Err()
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*documents.Session, error) {
	payload, err := r.client.Get(ctx, r.prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, documents.ErrNotFound
		}

		return nil, err
	}

	var session documents.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}

	return &session, nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, r.prefix+id).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return documents.ErrNotFound
	}

	return nil
}

var _ documents.Store = (*RedisSessionStore)(nil)
