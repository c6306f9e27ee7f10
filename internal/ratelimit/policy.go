package ratelimit

import "time"

// LimitConfig allows at most Max requests per sliding Window.
type LimitConfig struct {
	Window time.Duration
	Max    int64
}

// Policy maps each scope to the limits that apply to it. A request must pass
// every limit of every scope it resolves to.
type Policy struct {
	Limits map[Scope][]LimitConfig
}

// DefaultPolicy is the policy the server runs with.
//
// Upload and shorten are tighter than plain writes: an upload parses a whole
// PDF and a shorten call fans out into one provider request per link.
func DefaultPolicy() *Policy {
	return &Policy{
		Limits: map[Scope][]LimitConfig{
			ScopeGlobal: {
				{Window: time.Minute, Max: 600},
			},
			ScopeRead: {
				{Window: time.Minute, Max: 300},
			},
			ScopeWrite: {
				{Window: time.Minute, Max: 60},
				{Window: time.Hour, Max: 1000},
			},
			ScopeUpload: {
				{Window: time.Minute, Max: 10},
				{Window: time.Hour, Max: 100},
			},
			ScopeShorten: {
				{Window: time.Minute, Max: 5},
				{Window: time.Hour, Max: 50},
			},
		},
	}
}
