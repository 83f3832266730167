package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stencilgen/stencil/blueprint/option"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidName indicates an empty or non-identifier name.
	ErrInvalidName = errors.New("stencil: invalid name")
	// ErrNotCollection indicates a singular form was requested for an
	// option that is not a sequence or a set.
	ErrNotCollection = errors.New("stencil: option is not a collection")
	// ErrDuplicateOption indicates two options of one blueprint share a name.
	ErrDuplicateOption = errors.New("stencil: duplicate option name")
	// ErrAmbiguousSingular indicates a singular form collides with another
	// name in the same blueprint.
	ErrAmbiguousSingular = errors.New("stencil: ambiguous singular form")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("stencil: missing configuration")
)

// NameError reports an empty or syntactically invalid identifier.
type NameError struct {
	Blueprint string // owning blueprint, if known
	Name      string // offending name; empty when the name was empty
	Message   string
}

// Error implements the error interface.
func (e *NameError) Error() string {
	var b strings.Builder
	b.WriteString("stencil: invalid name")
	if e.Name != "" {
		fmt.Fprintf(&b, " %q", e.Name)
	}
	if e.Blueprint != "" {
		b.WriteString(" in blueprint ")
		b.WriteString(e.Blueprint)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for NameError.
func (e *NameError) Is(target error) bool {
	return target == ErrInvalidName
}

// NewNameError creates a new NameError.
func NewNameError(blueprint, name, message string) *NameError {
	return &NameError{Blueprint: blueprint, Name: name, Message: message}
}

// ShapeError reports an operation that does not apply to an option's
// container shape, such as resolving a singular form for a scalar.
type ShapeError struct {
	Blueprint string
	Option    string
	Shape     option.Shape
	Message   string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stencil: %s option %q", e.Shape, e.Option)
	if e.Blueprint != "" {
		b.WriteString(" of blueprint ")
		b.WriteString(e.Blueprint)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrNotCollection
}

// NewShapeError creates a new ShapeError.
func NewShapeError(blueprint, opt string, shape option.Shape, message string) *ShapeError {
	return &ShapeError{Blueprint: blueprint, Option: opt, Shape: shape, Message: message}
}

// DuplicateError reports two options of one blueprint sharing a name.
// Option names are case-sensitive; "Value" and "value" do not collide.
type DuplicateError struct {
	Blueprint string
	Option    string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("stencil: option %q redeclared in blueprint %q", e.Option, e.Blueprint)
}

// Is reports whether the target matches the sentinel error for DuplicateError.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateOption
}

// NewDuplicateError creates a new DuplicateError.
func NewDuplicateError(blueprint, opt string) *DuplicateError {
	return &DuplicateError{Blueprint: blueprint, Option: opt}
}

// AmbiguityError reports a singular form that collides with another option
// or generated method name in the same blueprint. Processing fails rather
// than silently picking one of the colliding names.
type AmbiguityError struct {
	Blueprint    string
	Option       string // option whose singular form collided
	Singular     string // the colliding singular name or method name
	CollidesWith string // the existing name it collides with
}

// Error implements the error interface.
func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("stencil: singular form %q of option %q collides with %s in blueprint %q",
		e.Singular, e.Option, e.CollidesWith, e.Blueprint)
}

// Is reports whether the target matches the sentinel error for AmbiguityError.
func (e *AmbiguityError) Is(target error) bool {
	return target == ErrAmbiguousSingular
}

// NewAmbiguityError creates a new AmbiguityError.
func NewAmbiguityError(blueprint, opt, singular, collidesWith string) *AmbiguityError {
	return &AmbiguityError{Blueprint: blueprint, Option: opt, Singular: singular, CollidesWith: collidesWith}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("stencil: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("stencil: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(opt string, value any, message string) *ConfigError {
	return &ConfigError{Option: opt, Value: value, Message: message}
}

// IsNameError reports whether the error is a NameError.
func IsNameError(err error) bool {
	var e *NameError
	return errors.As(err, &e)
}

// IsShapeError reports whether the error is a ShapeError.
func IsShapeError(err error) bool {
	var e *ShapeError
	return errors.As(err, &e)
}

// IsDuplicateError reports whether the error is a DuplicateError.
func IsDuplicateError(err error) bool {
	var e *DuplicateError
	return errors.As(err, &e)
}

// IsAmbiguityError reports whether the error is an AmbiguityError.
func IsAmbiguityError(err error) bool {
	var e *AmbiguityError
	return errors.As(err, &e)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}
