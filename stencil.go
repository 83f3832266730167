package stencil

import (
	"sync"
)

// BuilderState is the flat mutable state of a builder under construction.
// It records, per option, the current value and whether the value was
// assigned explicitly by the caller or filled in as a default.
//
// Decorators receive a BuilderState and may set defaults on unset options
// only; SetDefault enforces that mechanically.
type BuilderState struct {
	blueprint string
	values    map[string]any
	explicit  map[string]bool
	order     []string
}

// NewBuilderState returns an empty builder state for the named blueprint.
func NewBuilderState(blueprint string) *BuilderState {
	return &BuilderState{
		blueprint: blueprint,
		values:    make(map[string]any),
		explicit:  make(map[string]bool),
	}
}

// Blueprint returns the name of the blueprint this state belongs to.
func (s *BuilderState) Blueprint() string {
	return s.blueprint
}

// Set assigns a value explicitly, as a caller of the builder would.
// Explicitly set options are never overwritten by decorators.
func (s *BuilderState) Set(name string, value any) {
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = value
	s.explicit[name] = true
}

// SetDefault assigns a value only if the option has no value yet.
// It reports whether the default was applied.
func (s *BuilderState) SetDefault(name string, value any) bool {
	if _, ok := s.values[name]; ok {
		return false
	}
	s.order = append(s.order, name)
	s.values[name] = value
	return true
}

// Value returns the current value of an option and whether one is present.
func (s *BuilderState) Value(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Explicit reports whether the option was set explicitly by the caller,
// as opposed to defaulted.
func (s *BuilderState) Explicit(name string) bool {
	return s.explicit[name]
}

// Names returns the option names that currently hold a value, in the order
// they were first assigned.
func (s *BuilderState) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Decorator post-processes a builder state before it is finalized.
// A decorator must not overwrite options the caller set explicitly; use
// BuilderState.SetDefault for all assignments.
type Decorator interface {
	Decorate(state *BuilderState) error
}

// DecorateFunc adapts a plain function to the Decorator interface.
type DecorateFunc func(state *BuilderState) error

// Decorate calls f(state).
func (f DecorateFunc) Decorate(state *BuilderState) error {
	return f(state)
}

// DecoratorRegistry maps decorator reference names to implementations.
// It is an explicit value passed by the host application; blueprints refer
// to decorators by name and the registry resolves them at processing time.
//
// The registry is safe for concurrent use once populated.
type DecoratorRegistry struct {
	mu         sync.RWMutex
	decorators map[string]Decorator
}

// NewDecoratorRegistry returns an empty decorator registry.
func NewDecoratorRegistry() *DecoratorRegistry {
	return &DecoratorRegistry{decorators: make(map[string]Decorator)}
}

// Register adds a decorator under the given reference name.
// Registering the same name twice is an error.
func (r *DecoratorRegistry) Register(name string, d Decorator) error {
	if d == nil {
		return NewRegistrationError("decorator", name, "decorator cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.decorators[name]; ok {
		return NewRegistrationError("decorator", name, "already registered")
	}
	r.decorators[name] = d
	return nil
}

// Lookup returns the decorator registered under name.
func (r *DecoratorRegistry) Lookup(name string) (Decorator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.decorators[name]
	return d, ok
}

// Apply runs the referenced decorators against the state in the order given.
// An unknown reference fails with an UnknownDecoratorError before any later
// decorator runs. A nil registry accepts only an empty reference list.
func (r *DecoratorRegistry) Apply(refs []string, state *BuilderState) error {
	for _, ref := range refs {
		var (
			d  Decorator
			ok bool
		)
		if r != nil {
			d, ok = r.Lookup(ref)
		}
		if !ok {
			return NewUnknownDecoratorError(state.Blueprint(), ref)
		}
		if err := d.Decorate(state); err != nil {
			return NewDecorateError(state.Blueprint(), ref, err)
		}
	}
	return nil
}

// Pending records a provider token accepted by a builder that has not been
// resolved yet. Generated builders collect Pending entries and resolve them
// through a ProviderRegistry when the prototype is built.
type Pending struct {
	// Option is the name of the option the token was supplied for.
	Option string
	// Token is the unresolved provider token.
	Token Token
}
