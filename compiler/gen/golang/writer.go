package golang

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/stencilgen/stencil/compiler/gen"
	"github.com/stencilgen/stencil/compiler/load"
)

// Writer renders generated files, formats them with goimports and writes
// them under the target directory in parallel.
type Writer struct {
	target  string
	workers int

	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks what a writer produced.
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
}

// NewWriter returns a writer for the given target directory.
func NewWriter(target string) *Writer {
	return &Writer{target: target, workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns what the writer produced so far.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Write renders and writes all files.
func (w *Writer) Write(ctx context.Context, files map[string]*jen.File) error {
	if err := os.MkdirAll(w.target, 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for name, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(name, f)
			}
		})
	}
	return eg.Wait()
}

func (w *Writer) writeFile(name string, f *jen.File) error {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	path := filepath.Join(w.target, name)

	// goimports normalizes import grouping and drops anything unused.
	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		// Keep the unformatted output next to the target for debugging.
		debugPath := path + ".error"
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return fmt.Errorf("format %s: %w (unformatted written to %s)", name, err, debugPath)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(formatted))
	w.mu.Unlock()
	return nil
}

// Generate processes the blueprints and writes the generated Go source to
// the config's target directory. Blueprints that fail processing are
// reported in the returned batch; generation proceeds for the rest.
func Generate(ctx context.Context, cfg *gen.Config, blueprints []*load.Blueprint) (*gen.Batch, error) {
	if cfg == nil || cfg.Target == "" {
		return nil, gen.NewConfigError("target", nil, "missing target directory")
	}
	batch, err := gen.Process(ctx, cfg, blueprints)
	if err != nil {
		return nil, err
	}
	files, err := New(cfg).Files(batch)
	if err != nil {
		return nil, err
	}
	w := NewWriter(cfg.Target)
	if cfg.Workers > 0 {
		w = w.WithWorkers(cfg.Workers)
	}
	if err := w.Write(ctx, files); err != nil {
		return nil, err
	}
	return batch, nil
}
