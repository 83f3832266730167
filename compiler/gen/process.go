package gen

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/stencilgen/stencil"
	"github.com/stencilgen/stencil/compiler/load"
)

// OptionArtifact is the processing result for one option: the option
// itself with its synthesized accessor surface and, for sequences and
// sets, its resolved singular form.
type OptionArtifact struct {
	Option    *Option
	Accessors *AccessorSet
	Singular  *SingularForm
}

// Artifact is the processing result for one blueprint, ready for code
// emission.
type Artifact struct {
	Blueprint *Blueprint
	Placement Placement
	Options   []OptionArtifact
	// Defaults is the builder state after declared defaults were seeded
	// and all referenced decorators ran.
	Defaults *stencil.BuilderState
}

// Batch is the result of processing a set of blueprints. Failed blueprints
// appear in Errors keyed by name; the artifacts of the remaining
// blueprints are complete and ordered as the input was.
type Batch struct {
	Artifacts []*Artifact
	Errors    map[string]error
}

// OK reports whether every blueprint of the batch processed successfully.
func (b *Batch) OK() bool {
	return len(b.Errors) == 0
}

// ProcessBlueprint processes a single blueprint descriptor: validation,
// singular resolution, accessor synthesis, placement, default seeding and
// decorator application.
func ProcessBlueprint(c *Config, def *load.Blueprint) (*Artifact, error) {
	if c == nil {
		c = &Config{}
	}
	bp, err := NewBlueprint(c, def)
	if err != nil {
		return nil, err
	}
	state, err := applyDecorators(c, bp)
	if err != nil {
		return nil, err
	}
	art := &Artifact{
		Blueprint: bp,
		Placement: ResolvePlacement(bp),
		Defaults:  state,
	}
	for _, o := range bp.Options {
		art.Options = append(art.Options, OptionArtifact{
			Option:    o,
			Accessors: o.Accessors(),
			Singular:  o.SingularForm(),
		})
	}
	return art, nil
}

// Process processes a batch of blueprints concurrently. Blueprints are
// independent: a failing blueprint is recorded in the returned batch and
// never prevents the others from completing. Process itself fails only
// when the context is cancelled.
func Process(ctx context.Context, c *Config, blueprints []*load.Blueprint) (*Batch, error) {
	if c == nil {
		c = &Config{}
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var (
		artifacts = make([]*Artifact, len(blueprints))
		failures  = make([]error, len(blueprints))
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, def := range blueprints {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			art, err := ProcessBlueprint(c, def)
			if err != nil {
				// Blueprint-local failure. Recorded, never propagated,
				// so sibling blueprints keep processing.
				failures[i] = err
				return nil
			}
			artifacts[i] = art
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	batch := &Batch{Errors: make(map[string]error)}
	for i, def := range blueprints {
		if failures[i] != nil {
			batch.Errors[def.Name] = failures[i]
			continue
		}
		batch.Artifacts = append(batch.Artifacts, artifacts[i])
	}
	return batch, nil
}

// applyDecorators seeds the declared defaults of the blueprint's options
// into a fresh builder state and runs the referenced decorators in
// declaration order. Decorators only fill unset options; a declared
// default always wins over a decorator default.
func applyDecorators(c *Config, bp *Blueprint) (*stencil.BuilderState, error) {
	state := stencil.NewBuilderState(bp.Name)
	for _, o := range bp.Options {
		if o.Default != nil {
			state.SetDefault(o.Name, o.Default)
		}
	}
	if err := c.Decorators.Apply(bp.Decorators, state); err != nil {
		return nil, err
	}
	return state, nil
}
