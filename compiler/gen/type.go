package gen

import (
	"fmt"

	"github.com/stencilgen/stencil/blueprint/option"
	"github.com/stencilgen/stencil/compiler/load"
)

// Blueprint is the compiler's view of one blueprint declaration: the
// loaded descriptor validated, every option's singular form resolved and
// accessor surface synthesized.
type Blueprint struct {
	*Config
	def *load.Blueprint
	// Name of the declared blueprint.
	Name string
	// Options in declaration order.
	Options []*Option
	// Detach generates the prototype as an independent concrete type.
	Detach bool
	// Decorators holds the decorator references in application order.
	Decorators []string
	// Comment documents the prototype in generated code.
	Comment string

	options map[string]*Option
}

// Option is the compiler's view of one option declaration.
type Option struct {
	def *load.Option
	typ *Blueprint

	// Name of the option as declared.
	Name string
	// Shape of the option's container.
	Shape option.Shape
	// Elem is the element type. For scalars it is the value type, for
	// mappings the value type of the pairs.
	Elem *option.TypeInfo
	// Key is the key type of a mapping option, nil for other shapes.
	Key *option.TypeInfo
	// Singular overrides the heuristic singular name of a sequence or set.
	Singular string
	// SingularMethod overrides the derived singular-adder method name.
	SingularMethod string
	// Provider marks the option as provider-driven: its write accessors
	// additionally accept a provider-lookup token.
	Provider bool
	// Default is the declared default value, seeded into the builder state
	// before decorators run.
	Default any
	// Comment documents the option in generated code.
	Comment string

	singular  *SingularForm
	accessors *AccessorSet
}

// NewBlueprint validates a loaded descriptor and resolves it into its
// compiled form. Validation covers identifier validity of all names,
// duplicate option detection (case-sensitive), singular overrides on
// non-collection options, and collisions between resolved singular forms
// and other option or method names.
func NewBlueprint(c *Config, bp *load.Blueprint) (*Blueprint, error) {
	if c == nil {
		c = &Config{}
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	if err := validIdent("", bp.Name); err != nil {
		return nil, err
	}
	typ := &Blueprint{
		Config:     c,
		def:        bp,
		Name:       bp.Name,
		Detach:     bp.Detach,
		Decorators: bp.Decorators,
		Comment:    bp.Comment,
		options:    make(map[string]*Option, len(bp.Options)),
	}
	for _, od := range bp.Options {
		o := &Option{
			def:            od,
			typ:            typ,
			Name:           od.Name,
			Shape:          od.Shape,
			Elem:           od.Elem,
			Key:            od.Key,
			Singular:       od.Singular,
			SingularMethod: od.SingularMethod,
			Provider:       od.Provider,
			Default:        od.Default,
			Comment:        od.Comment,
		}
		if err := typ.addOption(o); err != nil {
			return nil, err
		}
	}
	for _, o := range typ.Options {
		if !o.Shape.Collection() {
			continue
		}
		form, err := ResolveSingular(o)
		if err != nil {
			return nil, err
		}
		o.singular = &form
	}
	for _, o := range typ.Options {
		accessors, err := Synthesize(o)
		if err != nil {
			return nil, err
		}
		o.accessors = accessors
	}
	if err := typ.checkCollisions(); err != nil {
		return nil, err
	}
	return typ, nil
}

func (t *Blueprint) addOption(o *Option) error {
	if err := validIdent(t.Name, o.Name); err != nil {
		return err
	}
	if _, ok := t.options[o.Name]; ok {
		return NewDuplicateError(t.Name, o.Name)
	}
	t.Options = append(t.Options, o)
	t.options[o.Name] = o
	return nil
}

// checkCollisions rejects blueprints whose resolved singular forms or
// generated method names collide. A singular name equal to its own option
// name is accepted; uncountable words singularize to themselves.
func (t *Blueprint) checkCollisions() error {
	type owner struct {
		opt      *Option
		singular bool
	}
	methods := make(map[string]owner)
	for _, o := range t.Options {
		form := o.singular
		if form != nil && form.Name != o.Name {
			if other, ok := t.options[form.Name]; ok {
				return NewAmbiguityError(t.Name, o.Name, form.Name,
					fmt.Sprintf("option %q", other.Name))
			}
		}
		for _, op := range o.accessors.Ops {
			adder := op.Kind == OpAdd
			prev, ok := methods[op.Name]
			if !ok {
				methods[op.Name] = owner{opt: o, singular: adder}
				continue
			}
			if prev.opt == o {
				continue
			}
			switch {
			case adder:
				return NewAmbiguityError(t.Name, o.Name, op.Name,
					fmt.Sprintf("method %q of option %q", op.Name, prev.opt.Name))
			case prev.singular:
				return NewAmbiguityError(t.Name, prev.opt.Name, op.Name,
					fmt.Sprintf("method %q of option %q", op.Name, o.Name))
			default:
				return NewNameError(t.Name, o.Name,
					fmt.Sprintf("generated method %q collides with option %q", op.Name, prev.opt.Name))
			}
		}
	}
	return nil
}

// Option returns the option with the given name, if declared.
func (t *Blueprint) Option(name string) (*Option, bool) {
	o, ok := t.options[name]
	return o, ok
}

// Label returns the snake_case form of the blueprint name, used for
// generated file names.
func (t *Blueprint) Label() string {
	return snake(t.Name)
}

// PrototypeName returns the name of the generated immutable value type.
func (t *Blueprint) PrototypeName() string {
	return pascal(t.Name)
}

// BuilderName returns the name of the generated builder type.
func (t *Blueprint) BuilderName() string {
	return pascal(t.Name) + "Builder"
}

// Descriptor returns the loaded descriptor this blueprint was compiled from.
func (t *Blueprint) Descriptor() *load.Blueprint {
	return t.def
}

// StructField returns the exported field name of the option in the
// generated prototype struct.
func (o *Option) StructField() string {
	return pascal(o.Name)
}

// BuilderField returns the unexported field name of the option in the
// generated builder struct.
func (o *Option) BuilderField() string {
	return builderField(o.Name)
}

// SingularForm returns the resolved singular form. It is non-nil for
// sequence and set options of a compiled blueprint and nil otherwise.
func (o *Option) SingularForm() *SingularForm {
	return o.singular
}

// Accessors returns the synthesized accessor surface of the option.
func (o *Option) Accessors() *AccessorSet {
	return o.accessors
}

// Descriptor returns the loaded descriptor this option was compiled from.
func (o *Option) Descriptor() *load.Option {
	return o.def
}

func (o *Option) blueprintName() string {
	if o.typ != nil {
		return o.typ.Name
	}
	return ""
}
