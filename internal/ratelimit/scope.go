// Package ratelimit applies sliding-window request limits per client and scope.
package ratelimit

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Scope names a class of requests that shares limits.
type Scope string

const (
	// ScopeGlobal applies to every request.
	ScopeGlobal Scope = "global"
	// ScopeRead applies to GET, HEAD and OPTIONS.
	ScopeRead Scope = "read"
	// ScopeWrite applies to every other method.
	ScopeWrite Scope = "write"
	// ScopeUpload applies to document uploads.
	ScopeUpload Scope = "upload"
	// ScopeShorten applies to requests that call a shortening provider.
	ScopeShorten Scope = "shorten"
)

// MetadataKey is the huma.Operation metadata key holding an EndpointConfig.
const MetadataKey = "rateLimit"

// EndpointConfig tunes rate limiting for one operation.
type EndpointConfig struct {
	// Scope is checked in addition to the global and method scopes.
	Scope Scope

	// Limits replaces the policy for this operation. When set, Scope is
	// ignored and only these limits apply.
	Limits []LimitConfig

	// Disabled skips rate limiting.
	Disabled bool
}

// ScopeResolver determines which scopes apply to a request.
type ScopeResolver interface {
	Resolve(ctx huma.Context) []Scope
}

// MethodScopeResolver classifies requests by HTTP method.
type MethodScopeResolver struct{}

// NewMethodScopeResolver creates a method-based resolver.
func NewMethodScopeResolver() *MethodScopeResolver {
	return &MethodScopeResolver{}
}

// Resolve returns the global scope plus read or write.
func (r *MethodScopeResolver) Resolve(ctx huma.Context) []Scope {
	switch ctx.Method() {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return []Scope{ScopeGlobal, ScopeRead}
	default:
		return []Scope{ScopeGlobal, ScopeWrite}
	}
}

// OperationScopeResolver adds the scope named in operation metadata to the
// method-based scopes.
type OperationScopeResolver struct {
	fallback *MethodScopeResolver
}

// NewOperationScopeResolver creates an operation-aware resolver.
func NewOperationScopeResolver() *OperationScopeResolver {
	return &OperationScopeResolver{fallback: NewMethodScopeResolver()}
}

func (r *OperationScopeResolver) Resolve(ctx huma.Context) []Scope {
	scopes := r.fallback.Resolve(ctx)

	cfg := GetEndpointConfig(ctx)
	if cfg == nil || cfg.Scope == "" {
		return scopes
	}

	for _, s := range scopes {
		if s == cfg.Scope {
			return scopes
		}
	}

	return append(scopes, cfg.Scope)
}

// GetEndpointConfig returns the operation's EndpointConfig, or nil.
func GetEndpointConfig(ctx huma.Context) *EndpointConfig {
	op := ctx.Operation()
	if op == nil || op.Metadata == nil {
		return nil
	}

	cfg, ok := op.Metadata[MetadataKey].(EndpointConfig)
	if !ok {
		return nil
	}

	return &cfg
}
