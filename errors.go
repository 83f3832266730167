package stencil

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for registry operations.
var (
	// ErrUnknownDecorator is returned when a blueprint references a decorator
	// that was not registered by the host application.
	ErrUnknownDecorator = errors.New("stencil: unknown decorator")

	// ErrBadToken is returned when a provider token cannot be resolved.
	ErrBadToken = errors.New("stencil: unresolvable provider token")

	// ErrRegistration is returned for invalid registry registrations.
	ErrRegistration = errors.New("stencil: invalid registration")
)

// UnknownDecoratorError reports a decorator reference that could not be
// resolved against the host-supplied registry.
type UnknownDecoratorError struct {
	Blueprint string // blueprint that carried the reference
	Ref       string // unresolved reference name
}

// Error returns the error string.
func (e *UnknownDecoratorError) Error() string {
	return fmt.Sprintf("stencil: blueprint %q references unknown decorator %q", e.Blueprint, e.Ref)
}

// Is reports whether the target matches the sentinel error for
// UnknownDecoratorError.
func (e *UnknownDecoratorError) Is(target error) bool {
	return target == ErrUnknownDecorator
}

// NewUnknownDecoratorError returns a new UnknownDecoratorError.
func NewUnknownDecoratorError(blueprint, ref string) *UnknownDecoratorError {
	return &UnknownDecoratorError{Blueprint: blueprint, Ref: ref}
}

// IsUnknownDecorator returns true if the error is an UnknownDecoratorError.
func IsUnknownDecorator(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownDecoratorError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownDecorator)
}

// DecorateError wraps a failure inside a decorator with the blueprint and
// reference that triggered it.
type DecorateError struct {
	Blueprint string
	Ref       string
	Err       error
}

// Error returns the error string.
func (e *DecorateError) Error() string {
	return fmt.Sprintf("stencil: decorator %q failed for blueprint %q: %v", e.Ref, e.Blueprint, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecorateError) Unwrap() error {
	return e.Err
}

// NewDecorateError returns a new DecorateError.
func NewDecorateError(blueprint, ref string, err error) *DecorateError {
	return &DecorateError{Blueprint: blueprint, Ref: ref, Err: err}
}

// TokenError reports a provider token that could not be resolved.
type TokenError struct {
	Token   Token
	Message string
	cause   error
}

// Error returns the error string.
func (e *TokenError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("stencil: token %q: %s: %v", e.Token, e.Message, e.cause)
	}
	return fmt.Sprintf("stencil: token %q: %s", e.Token, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *TokenError) Unwrap() error {
	return e.cause
}

// Is reports whether the target matches the sentinel error for TokenError.
func (e *TokenError) Is(target error) bool {
	return target == ErrBadToken
}

// NewTokenError returns a new TokenError.
func NewTokenError(token Token, message string) *TokenError {
	return &TokenError{Token: token, Message: message}
}

// IsTokenError returns true if the error is a TokenError.
func IsTokenError(err error) bool {
	if err == nil {
		return false
	}
	var e *TokenError
	return errors.As(err, &e) || errors.Is(err, ErrBadToken)
}

// RegistrationError reports an invalid Register call on one of the
// registries.
type RegistrationError struct {
	Kind    string // "decorator" or "provider"
	Name    string
	Message string
}

// Error returns the error string.
func (e *RegistrationError) Error() string {
	return fmt.Sprintf("stencil: cannot register %s %q: %s", e.Kind, e.Name, e.Message)
}

// Is reports whether the target matches the sentinel error for
// RegistrationError.
func (e *RegistrationError) Is(target error) bool {
	return target == ErrRegistration
}

// NewRegistrationError returns a new RegistrationError.
func NewRegistrationError(kind, name, message string) *RegistrationError {
	return &RegistrationError{Kind: kind, Name: name, Message: message}
}
