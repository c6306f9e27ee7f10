package linkly_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/serroba/pdf-link-shortener/internal/linkly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = linkly.Credentials{
	APIKey:       "key-123",
	AccountEmail: "owner@example.com",
	WorkspaceID:  42,
}

func newServer(t *testing.T, handler http.HandlerFunc) *linkly.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return linkly.NewClient(srv.URL, testCreds, srv.Client())
}

func TestCredentials_Validate(t *testing.T) {
	tests := []struct {
		name  string
		creds linkly.Credentials
		ok    bool
	}{
		{name: "complete", creds: testCreds, ok: true},
		{name: "missing key", creds: linkly.Credentials{AccountEmail: "a@b.c", WorkspaceID: 1}},
		{name: "blank email", creds: linkly.Credentials{APIKey: "k", AccountEmail: "  ", WorkspaceID: 1}},
		{name: "zero workspace", creds: linkly.Credentials{APIKey: "k", AccountEmail: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()

			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, linkly.ErrIncompleteCredentials)
			}
		})
	}
}

func TestClient_CreateLink(t *testing.T) {
	t.Run("sends credentials and returns the full url", func(t *testing.T) {
		var got map[string]any

		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/link", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			_, _ = w.Write([]byte(`{"id": 991, "url": "https://example.com/a", "full_url": "https://l.ink/abc"}`))
		})

		link, err := client.CreateLink(context.Background(), linkly.CreateLinkRequest{
			URL:  "https://example.com/a",
			Name: "PDF Link: https://example.com/a",
		})

		require.NoError(t, err)
		assert.Equal(t, linkly.LinkID("991"), link.ID)
		assert.Equal(t, "https://l.ink/abc", link.Public())
		assert.Equal(t, "key-123", got["api_key"])
		assert.Equal(t, "owner@example.com", got["account_email"])
		assert.InDelta(t, 42, got["workspace_id"], 0)
		assert.Equal(t, "PDF Link: https://example.com/a", got["name"])
	})

	t.Run("reads the enveloped shape", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success": true, "data": {"id": "x1", "url": "https://example.com", "short_url": "https://l.ink/x1"}, "error": null}`))
		})

		link, err := client.CreateLink(context.Background(), linkly.CreateLinkRequest{URL: "https://example.com"})

		require.NoError(t, err)
		assert.Equal(t, linkly.LinkID("x1"), link.ID)
		assert.Equal(t, "https://l.ink/x1", link.Public())
	})

	t.Run("unsuccessful envelope is rejected", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "data": null, "error": "invalid url"}`))
		})

		link, err := client.CreateLink(context.Background(), linkly.CreateLinkRequest{URL: "nope"})

		assert.Nil(t, link)
		require.ErrorIs(t, err, linkly.ErrRejected)
		assert.Contains(t, err.Error(), "invalid url")
	})

	t.Run("missing short url is rejected", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id": 1, "url": "https://example.com"}`))
		})

		_, err := client.CreateLink(context.Background(), linkly.CreateLinkRequest{URL: "https://example.com"})

		assert.ErrorIs(t, err, linkly.ErrRejected)
	})

	t.Run("non-2xx becomes an upstream error", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "slow down", http.StatusTooManyRequests)
		})

		_, err := client.CreateLink(context.Background(), linkly.CreateLinkRequest{URL: "https://example.com"})

		var upstream *linkly.UpstreamError

		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
		assert.Equal(t, "slow down", upstream.Message)
		assert.True(t, upstream.Temporary())
	})

	t.Run("garbage body is rejected", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})

		_, err := client.CreateLink(context.Background(), linkly.CreateLinkRequest{URL: "https://example.com"})

		assert.ErrorIs(t, err, linkly.ErrRejected)
	})
}

func TestClient_ListLinks(t *testing.T) {
	t.Run("lists workspace links", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/workspace/42/list_links", r.URL.Path)
			assert.Equal(t, "key-123", r.URL.Query().Get("api_key"))

			_, _ = w.Write([]byte(`{"links": [{"id": 1, "url": "https://a.example"}, {"id": 2, "url": "https://b.example"}]}`))
		})

		got, err := client.ListLinks(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "https://b.example", got[1].URL)
	})

	t.Run("unauthorized is not temporary", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.ListLinks(context.Background())

		var upstream *linkly.UpstreamError

		require.ErrorAs(t, err, &upstream)
		assert.False(t, upstream.Temporary())
	})
}

func TestProvider_Shorten(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": 7, "url": "https://example.com", "short_url": "l.ink/7", "full_url": "https://l.ink/7"}`))
	})

	short, err := linkly.NewProvider(client).Shorten(context.Background(), "https://example.com", "name")

	require.NoError(t, err)
	assert.Equal(t, "https://l.ink/7", short)
}
