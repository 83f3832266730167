// Package gen is the blueprint compiler. It turns loaded blueprint
// descriptors into artifacts ready for code emission: every name
// validated, the singular form of each collection option resolved, the
// accessor surface of each option synthesized from its container shape,
// prototype placement decided and the builder defaults assembled through
// the registered decorators.
//
// Blueprints of a batch are processed independently and concurrently. A
// failure in one blueprint is recorded in the batch result and never
// affects the others.
//
//	batch, err := gen.Process(ctx, gen.MustNewConfig(
//		gen.WithPackage("config"),
//		gen.WithDecorators(registry),
//	), blueprints)
//
// Code emission for Go lives in the golang subpackage.
package gen
