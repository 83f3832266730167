package gen

import (
	"github.com/stencilgen/stencil"
)

// Config holds the processing and code generation settings shared by all
// blueprints of a batch.
type Config struct {
	// Header is an optional comment written at the top of every generated
	// file, after the generated-code marker.
	Header string
	// Package is the package name of the generated code.
	Package string
	// Target is the directory generated files are written to.
	Target string
	// Workers bounds the number of blueprints processed concurrently.
	// Zero or negative means one worker per available CPU.
	Workers int
	// Decorators resolves decorator references of blueprints. A nil
	// registry is valid as long as no blueprint references a decorator.
	Decorators *stencil.DecoratorRegistry
	// Providers resolves provider tokens at build time. The generated
	// builders receive it through their Build method; processing itself
	// never resolves tokens.
	Providers *stencil.ProviderRegistry
}

// NewConfig creates a Config by applying the given options.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig is like NewConfig but panics on error.
func MustNewConfig(opts ...ConfigOption) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Apply applies the given options on the config object.
func (c *Config) Apply(opts ...ConfigOption) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}
