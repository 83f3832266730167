package golang

import (
	"fmt"
	"sort"

	"github.com/dave/jennifer/jen"

	"github.com/stencilgen/stencil/compiler/gen"
)

// runtimePkg is the import path of the runtime package generated code
// depends on.
const runtimePkg = "github.com/stencilgen/stencil"

// header is written at the top of every generated file.
const header = "Code generated by stencil. DO NOT EDIT."

// defaultPackage is used when the config does not name one.
const defaultPackage = "prototypes"

// sharedFile is the file nested prototypes are emitted into.
const sharedFile = "prototypes.go"

// Generator emits Go source for processed blueprint artifacts: one
// immutable prototype struct and one builder per blueprint. Nested
// prototypes share a single file; detached prototypes get their own file
// named after the blueprint.
type Generator struct {
	cfg *gen.Config
}

// New returns a generator for the given config. A nil config is valid and
// falls back to the default package name.
func New(cfg *gen.Config) *Generator {
	if cfg == nil {
		cfg = &gen.Config{}
	}
	return &Generator{cfg: cfg}
}

// Pkg returns the package name of the generated code.
func (g *Generator) Pkg() string {
	if g.cfg.Package != "" {
		return g.cfg.Package
	}
	return defaultPackage
}

// Files renders the batch's artifacts into files, keyed by file name
// relative to the target directory. Artifacts keep their batch order
// within the shared file.
func (g *Generator) Files(batch *gen.Batch) (map[string]*jen.File, error) {
	files := make(map[string]*jen.File)
	var shared *jen.File
	for _, art := range batch.Artifacts {
		f := shared
		switch art.Placement {
		case gen.Detached:
			f = g.newFile()
			files[art.Blueprint.Label()+".go"] = f
		default:
			if f == nil {
				f = g.newFile()
				shared = f
				files[sharedFile] = f
			}
		}
		if err := g.genArtifact(f, art); err != nil {
			return nil, fmt.Errorf("golang: blueprint %q: %w", art.Blueprint.Name, err)
		}
	}
	return files, nil
}

// FileNames returns the names of the files Files would render, sorted.
func (g *Generator) FileNames(batch *gen.Batch) []string {
	seen := make(map[string]bool)
	for _, art := range batch.Artifacts {
		switch art.Placement {
		case gen.Detached:
			seen[art.Blueprint.Label()+".go"] = true
		default:
			seen[sharedFile] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g *Generator) newFile() *jen.File {
	f := jen.NewFile(g.Pkg())
	f.HeaderComment(header)
	if g.cfg.Header != "" {
		f.HeaderComment(g.cfg.Header)
	}
	return f
}

func (g *Generator) genArtifact(f *jen.File, art *gen.Artifact) error {
	if err := g.genPrototype(f, art); err != nil {
		return err
	}
	return g.genBuilder(f, art)
}
