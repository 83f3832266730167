// Package stencil provides the runtime contracts shared between the blueprint
// compiler and the builders it synthesizes.
//
// A blueprint is a declarative description of a configuration-bearing
// interface: a named set of options, each with a container shape (scalar,
// ordered sequence, set, or mapping). The compiler packages under
// compiler/load and compiler/gen turn blueprints into prototype definitions
// (an immutable value type plus a fluent builder), and the reference emitter
// under compiler/gen/golang renders them as Go source.
//
// This root package holds the pieces both sides need at runtime:
//
//   - Decorator and DecoratorRegistry: post-processing hooks that may fill in
//     defaults on a builder state before it is finalized.
//   - BuilderState: the flat mutable record a decorator operates on.
//   - ProviderRegistry and Token: the lookup mechanism behind provider-driven
//     options, whose values are discovered rather than assigned literally.
//
// Registries are explicit values passed by the host application. There is no
// ambient discovery; a blueprint that references a decorator or provider the
// host did not register fails processing for that blueprint only.
package stencil
