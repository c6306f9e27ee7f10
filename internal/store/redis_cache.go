package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/pdf-link-shortener/internal/shortener"
)

type cachedURL struct {
	Code        string `redis:"code"`
	OriginalURL string `redis:"original_url"`
	URLHash     string `redis:"url_hash"`
	CreatedAt   int64  `redis:"created_at"`
}

// RedisCacheRepository is a read-through, write-through Redis cache in front
// of another shortener.Repository. Redirects hit it on every access.
type RedisCacheRepository struct {
	store   shortener.Repository
	client  *redis.Client
	prefix  string
	hashKey string
	ttl     time.Duration
}

// NewRedisCacheRepository wraps store with a Redis cache.
func NewRedisCacheRepository(store shortener.Repository, client *redis.Client, ttl time.Duration) *RedisCacheRepository {
	return &RedisCacheRepository{
		store:   store,
		client:  client,
		prefix:  "short:",
		hashKey: "short_hashes",
		ttl:     ttl,
	}
}

func (r *RedisCacheRepository) Save(ctx context.Context, shortURL *shortener.ShortURL) error {
	if err := r.store.Save(ctx, shortURL); err != nil {
		return err
	}

	r.cache(ctx, shortURL)

	return nil
}

func (r *RedisCacheRepository) GetByCode(ctx context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	if url, ok := r.cached(ctx, code); ok {
		return url, nil
	}

	url, err := r.store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	r.cache(ctx, url)

	return url, nil
}

func (r *RedisCacheRepository) GetByHash(ctx context.Context, hash shortener.URLHash) (*shortener.ShortURL, error) {
	code, err := r.client.HGet(ctx, r.hashKey, string(hash)).Result()
	if err == nil {
		if url, ok := r.cached(ctx, shortener.Code(code)); ok {
			return url, nil
		}
	}

	url, err := r.store.GetByHash(ctx, hash)
	if err != nil {
		return nil, err
	}

	r.cache(ctx, url)

	return url, nil
}

func (r *RedisCacheRepository) cached(ctx context.Context, code shortener.Code) (*shortener.ShortURL, bool) {
	res := r.client.HGetAll(ctx, r.prefix+string(code))
	if res.Err() != nil || len(res.Val()) == 0 {
		return nil, false
	}

	var c cachedURL
	if err := res.Scan(&c); err != nil {
		return nil, false
	}

	return &shortener.ShortURL{
		Code:        shortener.Code(c.Code),
		OriginalURL: c.OriginalURL,
		URLHash:     shortener.URLHash(c.URLHash),
		CreatedAt:   time.Unix(0, c.CreatedAt).UTC(),
	}, true
}

// cache is best effort; a failed write only costs a later miss.
func (r *RedisCacheRepository) cache(ctx context.Context, url *shortener.ShortURL) {
	key := r.prefix + string(url.Code)

	_, _ = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, cachedURL{
			Code:        string(url.Code),
			OriginalURL: url.OriginalURL,
			URLHash:     string(url.URLHash),
			CreatedAt:   url.CreatedAt.UnixNano(),
		})

		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}

		if url.URLHash != "" {
			pipe.HSet(ctx, r.hashKey, string(url.URLHash), string(url.Code))
		}

		return nil
	})
}

var _ shortener.Repository = (*RedisCacheRepository)(nil)
