// Package shortening turns discovered links into short links and then into
// rewrite replacements.
package shortening

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/serroba/pdf-link-shortener/internal/links"
	"go.uber.org/zap"
)

const (
	// DefaultDelay is the pause between provider calls.
	DefaultDelay = 100 * time.Millisecond
	// DefaultPrefix starts every link name when no prefix is given.
	DefaultPrefix = "PDF Link:"

	nameURLLimit = 30
)

// Provider creates one short link.
type Provider interface {
	Shorten(ctx context.Context, url, name string) (string, error)
}

// Result is the outcome for one discovered link.
type Result struct {
	Link     links.DiscoveredLink `json:"link"`
	ShortURL string               `json:"shortUrl,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// Succeeded reports whether a short URL was produced.
func (r Result) Succeeded() bool {
	return r.Error == "" && r.ShortURL != ""
}

// Batch shortens links one at a time.
type Batch struct {
	provider Provider
	delay    time.Duration
	logger   *zap.Logger
}

// NewBatch creates a batch runner. A negative delay is treated as zero.
func NewBatch(provider Provider, delay time.Duration, logger *zap.Logger) *Batch {
	if delay < 0 {
		delay = 0
	}

	return &Batch{provider: provider, delay: delay, logger: logger}
}

// Run shortens every link in order and returns one Result per link. A failed
// link does not stop the batch; a cancelled ctx marks the remaining links as
// failed.
func (b *Batch) Run(ctx context.Context, discovered []links.DiscoveredLink, prefix string) []Result {
	results := make([]Result, 0, len(discovered))

	for i, link := range discovered {
		if i > 0 && b.delay > 0 {
			if err := sleep(ctx, b.delay); err != nil {
				return append(results, cancelled(discovered[i:], err)...)
			}
		}

		if err := ctx.Err(); err != nil {
			return append(results, cancelled(discovered[i:], err)...)
		}

		short, err := b.provider.Shorten(ctx, link.URL, LinkName(prefix, link.URL))
		if err != nil {
			b.logger.Warn("failed to shorten link",
				zap.String("identity", link.Identity.String()),
				zap.String("url", link.URL),
				zap.Error(err),
			)

			results = append(results, Result{Link: link, Error: err.Error()})

			continue
		}

		results = append(results, Result{Link: link, ShortURL: short})
	}

	return results
}

// LinkName labels a short link with prefix and the start of url.
func LinkName(prefix, url string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	if utf8.RuneCountInString(url) <= nameURLLimit {
		return prefix + " " + url
	}

	return prefix + " " + string([]rune(url)[:nameURLLimit]) + "..."
}

// Replacements keeps the successful results, keyed by annotation identity.
func Replacements(results []Result) []links.Replacement {
	out := make([]links.Replacement, 0, len(results))

	for _, r := range results {
		if !r.Succeeded() {
			continue
		}

		out = append(out, links.Replacement{Identity: r.Link.Identity, URL: r.ShortURL})
	}

	return out
}

// Summary counts successes and failures.
func Summary(results []Result) (succeeded, failed int) {
	for _, r := range results {
		if r.Succeeded() {
			succeeded++
		} else {
			failed++
		}
	}

	return succeeded, failed
}

func cancelled(rest []links.DiscoveredLink, err error) []Result {
	out := make([]Result, 0, len(rest))
	for _, link := range rest {
		out = append(out, Result{Link: link, Error: err.Error()})
	}

	return out
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
