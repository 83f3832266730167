package option

// Descriptor is the serializable description of one option on a blueprint.
// It is the form consumed by the compiler packages and produced either by
// the fluent builders in this package or by loading a descriptor document.
type Descriptor struct {
	// Name of the option, unique within its blueprint (case-sensitive).
	Name string `json:"name" yaml:"name"`
	// Shape is the container form of the option.
	Shape Shape `json:"shape" yaml:"shape"`
	// Elem is the element type: the value type for scalars, the element
	// type for sequences and sets, and the value type for mappings.
	Elem *TypeInfo `json:"elem,omitempty" yaml:"elem,omitempty"`
	// Key is the key type of a mapping; nil for all other shapes.
	Key *TypeInfo `json:"key,omitempty" yaml:"key,omitempty"`
	// Singular overrides the derived singular name of a sequence or set
	// option. Meaningless, and rejected, on scalars and mappings.
	Singular string `json:"singular,omitempty" yaml:"singular,omitempty"`
	// SingularMethod overrides the derived singular-adder method name.
	SingularMethod string `json:"singular_method,omitempty" yaml:"singular_method,omitempty"`
	// Provider marks the option as provider-driven: values are discovered
	// through a provider lookup rather than assigned literally.
	Provider bool `json:"provider,omitempty" yaml:"provider,omitempty"`
	// Default is the declared default value, if any.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`
	// Comment documents the option in generated code.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Builder is the fluent interface for constructing option descriptors.
type Builder struct {
	desc Descriptor
}

func scalar(name string, t Type) *Builder {
	return &Builder{desc: Descriptor{Name: name, Shape: Scalar, Elem: &TypeInfo{Type: t}}}
}

// String returns a new scalar option of type string.
func String(name string) *Builder {
	return scalar(name, TypeString)
}

// Int returns a new scalar option of type int.
func Int(name string) *Builder {
	return scalar(name, TypeInt)
}

// Int64 returns a new scalar option of type int64.
func Int64(name string) *Builder {
	return scalar(name, TypeInt64)
}

// Float64 returns a new scalar option of type float64.
func Float64(name string) *Builder {
	return scalar(name, TypeFloat64)
}

// Bool returns a new scalar option of type bool.
func Bool(name string) *Builder {
	return scalar(name, TypeBool)
}

// Time returns a new scalar option of type time.Time.
func Time(name string) *Builder {
	return scalar(name, TypeTime)
}

// Bytes returns a new scalar option of type []byte.
func Bytes(name string) *Builder {
	return scalar(name, TypeBytes)
}

// Any returns a new scalar option with an unconstrained value type.
func Any(name string) *Builder {
	return scalar(name, TypeAny)
}

// Custom returns a new scalar option of a user-supplied type. The ident is
// the type name as written in generated code; pkgPath is the import path of
// the defining package, or empty for types local to the generated package.
func Custom(name, ident, pkgPath string) *Builder {
	return &Builder{desc: Descriptor{
		Name:  name,
		Shape: Scalar,
		Elem:  &TypeInfo{Type: TypeAny, Ident: ident, PkgPath: pkgPath},
	}}
}

// Strings returns a new ordered-sequence option with string elements.
func Strings(name string) *Builder {
	return SliceOf(name, TypeString)
}

// Ints returns a new ordered-sequence option with int elements.
func Ints(name string) *Builder {
	return SliceOf(name, TypeInt)
}

// SliceOf returns a new ordered-sequence option with the given element type.
func SliceOf(name string, elem Type) *Builder {
	return &Builder{desc: Descriptor{Name: name, Shape: Sequence, Elem: &TypeInfo{Type: elem}}}
}

// SetOf returns a new set option with the given element type. Duplicate
// inserts on the synthesized builder are a no-op.
func SetOf(name string, elem Type) *Builder {
	return &Builder{desc: Descriptor{Name: name, Shape: Set, Elem: &TypeInfo{Type: elem}}}
}

// MapOf returns a new mapping option with the given key and value types.
func MapOf(name string, key, elem Type) *Builder {
	return &Builder{desc: Descriptor{
		Name:  name,
		Shape: Mapping,
		Key:   &TypeInfo{Type: key},
		Elem:  &TypeInfo{Type: elem},
	}}
}

// Singular sets an explicit singular name, bypassing the derivation
// heuristic. Only meaningful on sequence and set options; the compiler
// rejects it on scalars and mappings.
func (b *Builder) Singular(name string) *Builder {
	b.desc.Singular = name
	return b
}

// SingularMethod sets an explicit singular-adder method name.
func (b *Builder) SingularMethod(name string) *Builder {
	b.desc.SingularMethod = name
	return b
}

// Provider marks the option as provider-driven.
func (b *Builder) Provider() *Builder {
	b.desc.Provider = true
	return b
}

// Default sets the declared default value of the option.
func (b *Builder) Default(v any) *Builder {
	b.desc.Default = v
	return b
}

// Comment sets the documentation comment of the option.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = c
	return b
}

// Descriptor returns the built descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return &b.desc
}
