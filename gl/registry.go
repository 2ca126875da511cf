package gl

import (
	"errors"
	"sync"
)

// Common provider errors.
var (
	// ErrProviderNotAvailable is returned when a requested provider is
	// not registered or cannot create a context on this system.
	ErrProviderNotAvailable = errors.New("gl: provider not available")

	// ErrNoContext is returned by operations that need a context when
	// none was supplied.
	ErrNoContext = errors.New("gl: no context")
)

// Provider creates contexts for one implementation under test.
// The software reference context registers itself here; hosts with a
// real driver binding register their own provider and the suites run
// unchanged against it.
type Provider interface {
	// Name returns the provider identifier (e.g. "soft").
	Name() string

	// NewContext creates a context whose default framebuffer has the
	// given dimensions.
	NewContext(width, height int) (Context, error)
}

// Factory creates a new provider instance.
type Factory func() Provider

// registry holds registered providers.
var (
	registryMu sync.RWMutex
	providers  = make(map[string]Factory)
	// Priority order for provider selection (first available wins).
	// A host-registered driver binding outranks the software fallback.
	providerPriority = []string{"gl", "wgpu", "soft"}
)

// Register registers a provider factory with the given name.
// This is typically called from init() functions in provider packages.
// If a provider with the same name is already registered, it will be
// replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	providers[name] = factory
}

// Unregister removes a provider from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(providers, name)
}

// Available returns a list of registered provider names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a provider with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := providers[name]
	return ok
}

// Get returns a provider instance by name.
// Returns nil if the provider is not registered.
func Get(name string) Provider {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := providers[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available provider based on priority,
// falling back to any registered provider when none of the priority
// names is present. Returns nil if no providers are registered.
func Default() Provider {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range providerPriority {
		if factory, ok := providers[name]; ok {
			if p := factory(); p != nil {
				return p
			}
		}
	}
	for _, factory := range providers {
		if p := factory(); p != nil {
			return p
		}
	}
	return nil
}
