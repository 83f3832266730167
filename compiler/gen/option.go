package gen

import (
	"go/token"

	"github.com/stencilgen/stencil"
)

// ConfigOption allows for managing codegen configuration using functional
// options.
type ConfigOption func(*Config) error

// WithHeader sets the file header comment of generated files.
func WithHeader(header string) ConfigOption {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the package name of the generated code.
func WithPackage(pkg string) ConfigOption {
	return func(c *Config) error {
		if !token.IsIdentifier(pkg) {
			return NewConfigError("package", pkg, "not a valid package name")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the directory generated files are written to.
func WithTarget(target string) ConfigOption {
	return func(c *Config) error {
		if target == "" {
			return NewConfigError("target", nil, "target directory cannot be empty")
		}
		c.Target = target
		return nil
	}
}

// WithWorkers bounds the number of blueprints processed concurrently.
func WithWorkers(n int) ConfigOption {
	return func(c *Config) error {
		c.Workers = n
		return nil
	}
}

// WithDecorators sets the registry decorator references are resolved
// against.
func WithDecorators(reg *stencil.DecoratorRegistry) ConfigOption {
	return func(c *Config) error {
		c.Decorators = reg
		return nil
	}
}

// WithProviders sets the registry generated builders resolve provider
// tokens against.
func WithProviders(reg *stencil.ProviderRegistry) ConfigOption {
	return func(c *Config) error {
		c.Providers = reg
		return nil
	}
}
