package domain

import (
	"context"
	"fmt"
	"path/filepath"

	"gooze.dev/pkg/reconmut/internal/adapter"
	m "gooze.dev/pkg/reconmut/internal/model"
)

// MaterializeArgs configures one materialization run.
type MaterializeArgs struct {
	// Root is the operator repository the mutations were scanned from.
	Root m.Path
	// Output is the directory receiving mutants and the manifest. A relative
	// output is resolved against Root.
	Output m.Path
	// Types are the mutation types enabled for the run.
	Types []m.MutationType
	// RunID identifies the run in the manifest; generated when empty.
	RunID string
	// Parallel bounds concurrent mutant copies. Values below 1 mean 1.
	Parallel int
	// OnProgress is called after every materialized mutant.
	OnProgress func(done, total int)
}

// Materializer turns a candidate list into runnable artifacts.
type Materializer interface {
	Materialize(ctx context.Context, args MaterializeArgs, mutations []m.Mutation) (m.MaterializeResult, error)
}

// NewMaterializer returns the materializer for strategy.
func NewMaterializer(strategy m.Strategy, fsAdapter adapter.SourceFSAdapter, store adapter.ManifestStore) (Materializer, error) {
	switch strategy {
	case m.StrategyCopy:
		return NewCopyMaterializer(fsAdapter, store), nil
	case m.StrategyDeferred, "":
		return NewDeferredMaterializer(fsAdapter, store), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (expected %s or %s)", strategy, m.StrategyCopy, m.StrategyDeferred)
	}
}

// OutputDir resolves output against root.
func OutputDir(root, output m.Path) m.Path {
	if output == "" {
		output = DefaultOutput
	}

	if filepath.IsAbs(string(output)) {
		return output
	}

	return m.Path(filepath.Join(string(root), string(output)))
}

// ManifestPath returns the manifest location inside an output directory.
func ManifestPath(root, output m.Path) m.Path {
	return m.Path(filepath.Join(string(OutputDir(root, output)), adapter.ManifestFileName))
}

// DefaultOutput is the output directory used when none is configured.
const DefaultOutput m.Path = ".reconmut"

func writeManifest(ctx context.Context, fsAdapter adapter.SourceFSAdapter, store adapter.ManifestStore, args MaterializeArgs, mutations []m.Mutation) (m.Path, error) {
	output := OutputDir(args.Root, args.Output)

	if err := fsAdapter.MkdirAll(ctx, output); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", output, err)
	}

	path := ManifestPath(args.Root, args.Output)
	manifest := NewManifest(args.Root, args.RunID, args.Types, mutations)

	if err := store.SaveManifest(ctx, path, manifest); err != nil {
		return "", fmt.Errorf("write manifest %s: %w", path, err)
	}

	return path, nil
}
