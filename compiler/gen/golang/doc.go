// Package golang emits Go source for processed blueprints. Every
// blueprint becomes an immutable prototype struct plus a fluent builder
// whose accessor surface was synthesized by the compiler: setters for
// scalars, adders with a singular variant for sequences and sets, put
// accessors for mappings, and token variants for provider-driven options.
//
// Nested prototypes share one file; detached prototypes are written to
// their own file named after the blueprint. Output is rendered with
// jennifer and normalized with goimports before it is written.
package golang
