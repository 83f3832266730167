// Package blueprint provides the fluent interface for declaring blueprints:
// named, ordered sets of options from which the compiler synthesizes an
// immutable prototype and its builder.
//
//	bp := blueprint.New("ServerConfig",
//		option.String("host").Default("localhost"),
//		option.Strings("lines"),
//		option.MapOf("headers", option.TypeString, option.TypeString),
//	).Decorate("server-defaults")
//
//	descriptor := bp.Descriptor()
package blueprint

import (
	"github.com/stencilgen/stencil/blueprint/option"
	"github.com/stencilgen/stencil/compiler/load"
)

// Blueprint assembles one blueprint declaration.
type Blueprint struct {
	name       string
	detach     bool
	comment    string
	decorators []string
	options    []*option.Descriptor
}

// New returns a blueprint with the given name and options.
func New(name string, opts ...*option.Builder) *Blueprint {
	b := &Blueprint{name: name}
	return b.Options(opts...)
}

// Options appends options in declaration order. The order determines
// generated method and builder field ordering.
func (b *Blueprint) Options(opts ...*option.Builder) *Blueprint {
	for _, o := range opts {
		b.options = append(b.options, o.Descriptor())
	}
	return b
}

// Detach marks the prototype to be generated as an independent concrete
// type with no reference back to this blueprint. Detached prototypes are
// safe to share across unrelated blueprints.
func (b *Blueprint) Detach() *Blueprint {
	b.detach = true
	return b
}

// Decorate appends decorator references, applied in the given order after
// the builder state is assembled.
func (b *Blueprint) Decorate(refs ...string) *Blueprint {
	b.decorators = append(b.decorators, refs...)
	return b
}

// Comment sets the documentation comment of the blueprint.
func (b *Blueprint) Comment(c string) *Blueprint {
	b.comment = c
	return b
}

// Descriptor returns the loadable descriptor of the blueprint.
func (b *Blueprint) Descriptor() *load.Blueprint {
	bp := &load.Blueprint{
		Name:       b.name,
		Detach:     b.detach,
		Comment:    b.comment,
		Decorators: append([]string(nil), b.decorators...),
	}
	for _, o := range b.options {
		bp.Options = append(bp.Options, load.NewOption(o))
	}
	return bp
}
