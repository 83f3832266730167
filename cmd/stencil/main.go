// Command stencil compiles blueprint descriptors into Go prototypes and
// builders.
//
//	stencil -in blueprints/ -out internal/config -pkg config
//
// With -watch the command keeps running and regenerates whenever a
// descriptor file changes. With -snapshot the resolved accessor names of
// each run are compared against the stored snapshot and drift is reported
// before the snapshot is rewritten.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stencilgen/stencil/compiler/gen"
	"github.com/stencilgen/stencil/compiler/gen/golang"
	"github.com/stencilgen/stencil/compiler/load"
)

func main() {
	var (
		in       = flag.String("in", ".", "descriptor file or directory to compile")
		out      = flag.String("out", "", "target directory for generated code (required)")
		pkg      = flag.String("pkg", "prototypes", "package name of the generated code")
		header   = flag.String("header", "", "extra header comment for generated files")
		workers  = flag.Int("workers", 0, "number of concurrent workers (0 = one per CPU)")
		snapshot = flag.String("snapshot", "", "snapshot file for accessor drift detection")
		watch    = flag.Bool("watch", false, "regenerate when descriptor files change")
	)
	flag.Parse()
	if *out == "" {
		fmt.Fprintln(os.Stderr, "stencil: -out is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := gen.NewConfig(
		gen.WithPackage(*pkg),
		gen.WithTarget(*out),
		gen.WithHeader(*header),
		gen.WithWorkers(*workers),
	)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *in, *snapshot); err != nil {
		fatal(err)
	}
	if *watch {
		if err := watchLoop(ctx, cfg, *in, *snapshot); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "stencil: %v\n", err)
	os.Exit(1)
}

// run loads the descriptors, generates code and reports per-blueprint
// failures without aborting the rest of the batch.
func run(ctx context.Context, cfg *gen.Config, in, snapshot string) error {
	blueprints, err := loadBlueprints(in)
	if err != nil {
		return err
	}
	if len(blueprints) == 0 {
		return fmt.Errorf("no blueprint descriptors found in %s", in)
	}
	batch, err := golang.Generate(ctx, cfg, blueprints)
	if err != nil {
		return err
	}
	for name, berr := range batch.Errors {
		fmt.Fprintf(os.Stderr, "stencil: blueprint %q skipped: %v\n", name, berr)
	}
	fmt.Printf("stencil: generated %d of %d blueprints into %s\n",
		len(batch.Artifacts), len(blueprints), cfg.Target)

	if snapshot != "" {
		if err := checkSnapshot(snapshot, batch); err != nil {
			return err
		}
	}
	if !batch.OK() {
		return fmt.Errorf("%d blueprint(s) failed", len(batch.Errors))
	}
	return nil
}

// checkSnapshot reports accessor drift against the stored snapshot, then
// stores the fresh one.
func checkSnapshot(path string, batch *gen.Batch) error {
	next := gen.NewSnapshot(batch)
	prev, err := gen.LoadSnapshot(path)
	switch {
	case os.IsNotExist(err):
		// First run, nothing to compare against.
	case err != nil:
		return err
	default:
		for name, changes := range prev.Diff(next) {
			for _, c := range changes {
				fmt.Fprintf(os.Stderr, "stencil: drift in blueprint %q: %s\n", name, c)
			}
		}
	}
	return gen.SaveSnapshot(path, next)
}

func loadBlueprints(in string) ([]*load.Blueprint, error) {
	info, err := os.Stat(in)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return load.ParseDir(in)
	}
	return load.ParseFile(in)
}

// watchLoop regenerates whenever a descriptor file under the input
// changes. Events are debounced, editors tend to fire several per save.
func watchLoop(ctx context.Context, cfg *gen.Config, in, snapshot string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := in
	if info, err := os.Stat(in); err == nil && !info.IsDir() {
		dir = filepath.Dir(in)
	}
	if err := watcher.Add(dir); err != nil {
		return err
	}
	fmt.Printf("stencil: watching %s\n", dir)

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-watcher.Errors:
			fmt.Fprintf(os.Stderr, "stencil: watch error: %v\n", err)
		case ev := <-watcher.Events:
			if !descriptorFile(ev.Name) || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			if err := run(ctx, cfg, in, snapshot); err != nil {
				fmt.Fprintf(os.Stderr, "stencil: %v\n", err)
			}
		}
	}
}

func descriptorFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
