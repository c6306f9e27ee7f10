package shortening

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownProvider is returned for a provider name nothing was registered under.
var ErrUnknownProvider = errors.New("unknown shortening provider")

// Factory builds a provider for one request. Factories that need stored
// credentials load them here.
type Factory func(ctx context.Context) (Provider, error)

// Registry resolves provider names to providers.
type Registry struct {
	factories   map[string]Factory
	defaultName string
}

// NewRegistry creates a registry whose empty name resolves to defaultName.
func NewRegistry(defaultName string) *Registry {
	return &Registry{factories: make(map[string]Factory), defaultName: defaultName}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Name returns the provider name an empty name resolves to.
func (r *Registry) Name(name string) string {
	if name == "" {
		return r.defaultName
	}

	return name
}

// Resolve builds the provider registered under name.
func (r *Registry) Resolve(ctx context.Context, name string) (Provider, error) {
	name = r.Name(name)

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}

	return factory(ctx)
}

// Names lists the registered providers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
