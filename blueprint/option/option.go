package option

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// A Type represents the value type of an option element.
type Type int

// List of all supported element types.
const (
	TypeInvalid Type = iota
	TypeString
	TypeInt
	TypeInt64
	TypeFloat64
	TypeBool
	TypeTime
	TypeBytes
	TypeAny
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeString:  "string",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeFloat64: "float64",
	TypeBool:    "bool",
	TypeTime:    "time",
	TypeBytes:   "bytes",
	TypeAny:     "any",
}

// String returns the textual name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("invalid(%d)", t)
}

// Valid reports if the given type is a declared element type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("option: invalid type %d", t)
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	name := string(text)
	for typ, n := range typeNames {
		if n == name && Type(typ).Valid() {
			*t = Type(typ)
			return nil
		}
	}
	return fmt.Errorf("option: unknown type %q", name)
}

// MarshalYAML implements yaml.Marshaler.
func (t Type) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("option: invalid type %d", t)
	}
	return typeNames[t], nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(name))
}

// TypeInfo holds the element type information of an option. For declared
// types it carries only Type; custom types additionally carry the type
// identifier and, for non-local types, the package path to import.
type TypeInfo struct {
	Type    Type   `json:"type" yaml:"type"`
	Ident   string `json:"ident,omitempty" yaml:"ident,omitempty"`
	PkgPath string `json:"pkg_path,omitempty" yaml:"pkg_path,omitempty"`
}

// String returns the textual representation of the type info.
func (t TypeInfo) String() string {
	if t.Ident != "" {
		return t.Ident
	}
	return t.Type.String()
}

// Custom reports if the type info refers to a user-supplied type rather
// than one of the declared element types.
func (t TypeInfo) Custom() bool {
	return t.Ident != ""
}

// A Shape classifies the container form of an option: a single value, an
// ordered sequence, a set, or a key/value mapping. The shape decides the
// accessor surface synthesized for the option.
type Shape int

// List of all option shapes.
const (
	Invalid Shape = iota
	// Scalar is a single value.
	Scalar
	// Sequence is an ordered sequence of elements; declaration order of
	// inserted elements is preserved.
	Sequence
	// Set holds unique elements; duplicate inserts are a no-op and
	// iteration order is not guaranteed.
	Set
	// Mapping is a key/value mapping.
	Mapping
	endShapes
)

var shapeNames = [...]string{
	Invalid:  "invalid",
	Scalar:   "scalar",
	Sequence: "sequence",
	Set:      "set",
	Mapping:  "mapping",
}

// String returns the textual name of the shape.
func (s Shape) String() string {
	if s < endShapes {
		return shapeNames[s]
	}
	return fmt.Sprintf("invalid(%d)", s)
}

// Valid reports if the given shape is a declared shape.
func (s Shape) Valid() bool {
	return s > Invalid && s < endShapes
}

// Collection reports if the shape holds elements that can be added one at a
// time: an ordered sequence or a set. Mappings are not collections in this
// sense; they get put accessors instead of a singular adder.
func (s Shape) Collection() bool {
	return s == Sequence || s == Set
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("option: invalid shape %d", s)
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	name := string(text)
	for shape, n := range shapeNames {
		if n == name && Shape(shape).Valid() {
			*s = Shape(shape)
			return nil
		}
	}
	return fmt.Errorf("option: unknown shape %q", name)
}

// MarshalYAML implements yaml.Marshaler.
func (s Shape) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("option: invalid shape %d", s)
	}
	return shapeNames[s], nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Shape) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(name))
}
