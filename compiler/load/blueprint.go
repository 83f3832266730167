// Package load provides the serializable blueprint descriptors consumed by
// the compiler, and loading of descriptor documents from YAML or JSON.
package load

import (
	"encoding/json"
	"fmt"

	"github.com/stencilgen/stencil/blueprint/option"
)

// Blueprint represents one blueprint declaration as supplied to the
// compiler, either built through the blueprint package or loaded from a
// descriptor document.
type Blueprint struct {
	// Name of the declared interface.
	Name string `json:"name" yaml:"name"`
	// Detach generates the prototype as an independent concrete type with
	// no reference back to the declaring blueprint.
	Detach bool `json:"detach,omitempty" yaml:"detach,omitempty"`
	// Decorators are references to post-processing hooks, applied in
	// declaration order.
	Decorators []string `json:"decorators,omitempty" yaml:"decorators,omitempty"`
	// Options in declaration order. The order determines generated method
	// and builder field ordering.
	Options []*Option `json:"options,omitempty" yaml:"options,omitempty"`
	// Comment documents the blueprint in generated code.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Option represents one option declaration of a blueprint.
type Option struct {
	Name           string           `json:"name" yaml:"name"`
	Shape          option.Shape     `json:"shape" yaml:"shape"`
	Elem           *option.TypeInfo `json:"elem,omitempty" yaml:"elem,omitempty"`
	Key            *option.TypeInfo `json:"key,omitempty" yaml:"key,omitempty"`
	Singular       string           `json:"singular,omitempty" yaml:"singular,omitempty"`
	SingularMethod string           `json:"singular_method,omitempty" yaml:"singular_method,omitempty"`
	Provider       bool             `json:"provider,omitempty" yaml:"provider,omitempty"`
	Default        any              `json:"default,omitempty" yaml:"default,omitempty"`
	Comment        string           `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// NewOption converts a DSL descriptor to its loadable form.
func NewOption(d *option.Descriptor) *Option {
	return &Option{
		Name:           d.Name,
		Shape:          d.Shape,
		Elem:           d.Elem,
		Key:            d.Key,
		Singular:       d.Singular,
		SingularMethod: d.SingularMethod,
		Provider:       d.Provider,
		Default:        d.Default,
		Comment:        d.Comment,
	}
}

// Validate checks the structural well-formedness of the blueprint: names are
// present and every option carries the type information its shape requires.
// Semantic validation (identifier validity, duplicate and singular-name
// rules) is the compiler's responsibility.
func (b *Blueprint) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("load: blueprint name cannot be empty")
	}
	for i, o := range b.Options {
		if o == nil {
			return fmt.Errorf("load: blueprint %q: option at index %d is nil", b.Name, i)
		}
		if err := o.validate(); err != nil {
			return fmt.Errorf("load: blueprint %q: %w", b.Name, err)
		}
	}
	return nil
}

func (o *Option) validate() error {
	if o.Name == "" {
		return fmt.Errorf("option name cannot be empty")
	}
	if !o.Shape.Valid() {
		return fmt.Errorf("option %q has no shape", o.Name)
	}
	if o.Elem == nil {
		return fmt.Errorf("option %q has no element type", o.Name)
	}
	switch o.Shape {
	case option.Mapping:
		if o.Key == nil {
			return fmt.Errorf("mapping option %q has no key type", o.Name)
		}
	default:
		if o.Key != nil {
			return fmt.Errorf("%s option %q cannot have a key type", o.Shape, o.Name)
		}
	}
	return nil
}

// MarshalBlueprint returns the JSON encoding of a blueprint descriptor, for
// interop with external declaration scanners.
func MarshalBlueprint(b *Blueprint) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}
