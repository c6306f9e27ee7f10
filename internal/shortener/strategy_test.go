package shortener_test

import (
	"context"
	"errors"
	"testing"

	"github.com/serroba/pdf-link-shortener/internal/shortener"
	"github.com/serroba/pdf-link-shortener/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com/very/long/path"

// mockRepository returns configured errors.
type mockRepository struct {
	saveErr      error
	getByCodeErr error
	getByHashErr error
	saved        []*shortener.ShortURL
}

func (m *mockRepository) Save(_ context.Context, shortURL *shortener.ShortURL) error {
	m.saved = append(m.saved, shortURL)

	return m.saveErr
}

func (m *mockRepository) GetByCode(_ context.Context, _ shortener.Code) (*shortener.ShortURL, error) {
	return nil, m.getByCodeErr
}

func (m *mockRepository) GetByHash(_ context.Context, _ shortener.URLHash) (*shortener.ShortURL, error) {
	return nil, m.getByHashErr
}

func sequence(codes ...string) shortener.CodeGenerator {
	i := 0

	return func() string {
		code := codes[i%len(codes)]
		i++

		return code
	}
}

func TestTokenStrategy(t *testing.T) {
	t.Run("issues a new code every time", func(t *testing.T) {
		s := shortener.NewTokenStrategy(store.NewMemoryStore(), sequence("aaa", "bbb"))

		first, err := s.Shorten(context.Background(), testURL)
		require.NoError(t, err)

		second, err := s.Shorten(context.Background(), testURL)
		require.NoError(t, err)

		assert.Equal(t, shortener.Code("aaa"), first.Code)
		assert.Equal(t, shortener.Code("bbb"), second.Code)
		assert.Empty(t, first.URLHash)
		assert.False(t, first.CreatedAt.IsZero())
	})

	t.Run("rejects relative urls", func(t *testing.T) {
		s := shortener.NewTokenStrategy(store.NewMemoryStore(), sequence("aaa"))

		_, err := s.Shorten(context.Background(), "/just/a/path")

		assert.Error(t, err)
	})

	t.Run("returns save errors", func(t *testing.T) {
		s := shortener.NewTokenStrategy(&mockRepository{saveErr: errMock}, sequence("aaa"))

		got, err := s.Shorten(context.Background(), testURL)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errMock)
	})
}

func TestHashStrategy(t *testing.T) {
	t.Run("reuses the code for equivalent urls", func(t *testing.T) {
		s := shortener.NewHashStrategy(store.NewMemoryStore(), sequence("aaa", "bbb"))

		first, err := s.Shorten(context.Background(), "https://example.com/path")
		require.NoError(t, err)

		second, err := s.Shorten(context.Background(), "HTTPS://EXAMPLE.COM:443/path/#top")
		require.NoError(t, err)

		assert.Equal(t, first.Code, second.Code)
		assert.Equal(t, "https://example.com/path", second.OriginalURL)
	})

	t.Run("different urls get different codes", func(t *testing.T) {
		s := shortener.NewHashStrategy(store.NewMemoryStore(), sequence("aaa", "bbb"))

		first, _ := s.Shorten(context.Background(), "https://example.com/path1")
		second, _ := s.Shorten(context.Background(), "https://example.com/path2")

		assert.NotEqual(t, first.Code, second.Code)
	})

	t.Run("returns unexpected lookup errors", func(t *testing.T) {
		repo := &mockRepository{getByHashErr: errMock}
		s := shortener.NewHashStrategy(repo, sequence("aaa"))

		_, err := s.Shorten(context.Background(), testURL)

		require.ErrorIs(t, err, errMock)
		assert.Empty(t, repo.saved)
	})

	t.Run("returns save errors", func(t *testing.T) {
		s := shortener.NewHashStrategy(&mockRepository{getByHashErr: shortener.ErrNotFound, saveErr: errMock}, sequence("aaa"))

		_, err := s.Shorten(context.Background(), testURL)

		assert.ErrorIs(t, err, errMock)
	})

	t.Run("rejects invalid urls", func(t *testing.T) {
		s := shortener.NewHashStrategy(store.NewMemoryStore(), sequence("aaa"))

		_, err := s.Shorten(context.Background(), "://invalid")

		assert.Error(t, err)
	})
}

func TestProvider(t *testing.T) {
	p := shortener.NewProvider(
		shortener.NewHashStrategy(store.NewMemoryStore(), sequence("xyz789")),
		"http://localhost:8888/",
	)

	short, err := p.Shorten(context.Background(), testURL, "ignored")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8888/s/xyz789", short)

	again, err := p.Shorten(context.Background(), testURL, "ignored")
	require.NoError(t, err)
	assert.Equal(t, short, again)
}
