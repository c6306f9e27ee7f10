package shortener

import (
	"context"
	"strings"
)

// Provider exposes a Strategy as a link-shortening provider whose short URLs
// are served under baseURL/s/{code}.
type Provider struct {
	strategy Strategy
	baseURL  string
}

// NewProvider creates a local provider.
func NewProvider(strategy Strategy, baseURL string) *Provider {
	return &Provider{strategy: strategy, baseURL: strings.TrimRight(baseURL, "/")}
}

// Shorten ignores name; local short URLs are unlabeled.
func (p *Provider) Shorten(ctx context.Context, url, _ string) (string, error) {
	shortURL, err := p.strategy.Shorten(ctx, url)
	if err != nil {
		return "", err
	}

	return p.URL(shortURL.Code), nil
}

// URL is the public address for code.
func (p *Provider) URL(code Code) string {
	return PublicURL(p.baseURL, code)
}

// PublicURL is the address under baseURL that redirects for code.
func PublicURL(baseURL string, code Code) string {
	return strings.TrimRight(baseURL, "/") + "/s/" + string(code)
}
