// Package requestmeta carries client details from the HTTP edge to the
// services that publish analytics events.
package requestmeta

import "context"

type contextKey struct{}

// Meta holds HTTP request metadata for analytics.
type Meta struct {
	ClientIP  string
	UserAgent string
	Referrer  string
}

// WithMeta returns a copy of ctx carrying meta.
func WithMeta(ctx context.Context, meta Meta) context.Context {
	return context.WithValue(ctx, contextKey{}, meta)
}

// FromContext returns the metadata stored in ctx, or the zero Meta.
func FromContext(ctx context.Context) Meta {
	if v, ok := ctx.Value(contextKey{}).(Meta); ok {
		return v
	}

	return Meta{}
}
