package shortener_test

import (
	"testing"

	"github.com/serroba/pdf-link-shortener/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase scheme and host", input: "HTTPS://EXAMPLE.COM/Path", expected: "https://example.com/Path"},
		{name: "remove trailing slash", input: "https://example.com/path/", expected: "https://example.com/path"},
		{name: "keep root slash", input: "https://example.com/", expected: "https://example.com/"},
		{name: "remove default https port", input: "https://example.com:443/path", expected: "https://example.com/path"},
		{name: "remove default http port", input: "http://example.com:80/path", expected: "http://example.com/path"},
		{name: "keep port that is default for the other scheme", input: "http://example.com:443/path", expected: "http://example.com:443/path"},
		{name: "keep non-default port", input: "https://example.com:8080/path", expected: "https://example.com:8080/path"},
		{name: "remove fragment", input: "https://example.com/path#section", expected: "https://example.com/path"},
		{name: "preserve query string", input: "https://example.com/path?foo=bar", expected: "https://example.com/path?foo=bar"},
		{name: "everything at once", input: "HTTPS://EXAMPLE.COM:443/path/?foo=bar#section", expected: "https://example.com/path?foo=bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shortener.NormalizeURL(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeURL_Invalid(t *testing.T) {
	for _, input := range []string{"://invalid", "relative/path", "mailto:someone@example.com"} {
		t.Run(input, func(t *testing.T) {
			_, err := shortener.NormalizeURL(input)

			assert.ErrorIs(t, err, shortener.ErrInvalidURL)
		})
	}
}

func TestHashURL(t *testing.T) {
	a := shortener.HashURL("https://example.com/path")

	assert.Len(t, a, 64)
	assert.Equal(t, a, shortener.HashURL("https://example.com/path"))
	assert.NotEqual(t, a, shortener.HashURL("https://example.com/other"))
}
