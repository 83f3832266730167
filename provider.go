package stencil

import (
	"strconv"
	"strings"
	"sync"
)

// Token identifies a value discoverable through a ProviderRegistry instead of
// being assigned literally. The textual form is "provider:key", where the
// provider part selects the registered provider and the key part is passed
// to it verbatim.
type Token string

// Split returns the provider and key parts of the token.
// The second return value is false if the token has no provider part.
func (t Token) Split() (provider, key string, ok bool) {
	s := string(t)
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// Provider supplies values for provider-driven options.
type Provider interface {
	// Provide returns the value for the given key.
	Provide(key string) (any, error)
}

// ProvideFunc adapts a plain function to the Provider interface.
type ProvideFunc func(key string) (any, error)

// Provide calls f(key).
func (f ProvideFunc) Provide(key string) (any, error) {
	return f(key)
}

// ProviderRegistry maps provider names to implementations. Like the
// decorator registry it is an explicit value passed by the host application.
//
// The registry is safe for concurrent use once populated.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewProviderRegistry returns an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{providers: make(map[string]Provider)}
}

// Register adds a provider under the given name.
// Registering the same name twice is an error.
func (r *ProviderRegistry) Register(name string, p Provider) error {
	if p == nil {
		return NewRegistrationError("provider", name, "provider cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[name]; ok {
		return NewRegistrationError("provider", name, "already registered")
	}
	r.providers[name] = p
	return nil
}

// Lookup returns the provider registered under name.
func (r *ProviderRegistry) Lookup(name string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	return p, ok
}

// Resolve resolves a token to its value. It fails with a TokenError if the
// token is malformed or names an unregistered provider.
func (r *ProviderRegistry) Resolve(token Token) (any, error) {
	name, key, ok := token.Split()
	if !ok {
		return nil, NewTokenError(token, "token must have the form provider:key")
	}
	var p Provider
	if r != nil {
		p, ok = r.Lookup(name)
	} else {
		ok = false
	}
	if !ok {
		return nil, NewTokenError(token, "no provider registered as "+strconv.Quote(name))
	}
	v, err := p.Provide(key)
	if err != nil {
		return nil, &TokenError{Token: token, Message: "provider failed", cause: err}
	}
	return v, nil
}
