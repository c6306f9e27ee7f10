package shortening_test

import (
	"context"
	"errors"
	"testing"

	"github.com/serroba/pdf-link-shortener/internal/shortening"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	local := &mockProvider{}
	registry := shortening.NewRegistry("local")
	registry.Register("local", func(context.Context) (shortening.Provider, error) { return local, nil })
	registry.Register("linkly", func(context.Context) (shortening.Provider, error) {
		return nil, errors.New("no credentials")
	})

	t.Run("empty name resolves to the default", func(t *testing.T) {
		p, err := registry.Resolve(context.Background(), "")

		require.NoError(t, err)
		assert.Same(t, local, p)
	})

	t.Run("factory errors are returned", func(t *testing.T) {
		p, err := registry.Resolve(context.Background(), "linkly")

		assert.Nil(t, p)
		assert.EqualError(t, err, "no credentials")
	})

	t.Run("unknown names fail", func(t *testing.T) {
		_, err := registry.Resolve(context.Background(), "bitly")

		assert.ErrorIs(t, err, shortening.ErrUnknownProvider)
	})

	t.Run("empty name means the default", func(t *testing.T) {
		assert.Equal(t, "local", registry.Name(""))
		assert.Equal(t, "linkly", registry.Name("linkly"))
	})

	t.Run("names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"linkly", "local"}, registry.Names())
	})
}
