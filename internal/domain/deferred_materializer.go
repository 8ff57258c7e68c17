package domain

import (
	"context"
	"log/slog"

	"gooze.dev/pkg/reconmut/internal/adapter"
	m "gooze.dev/pkg/reconmut/internal/model"
)

type deferredMaterializer struct {
	adapter.SourceFSAdapter
	adapter.ManifestStore
}

// NewDeferredMaterializer returns a materializer that only records the
// candidate list. Mutants are applied in place later through a Patcher.
func NewDeferredMaterializer(fsAdapter adapter.SourceFSAdapter, store adapter.ManifestStore) Materializer {
	return &deferredMaterializer{
		SourceFSAdapter: fsAdapter,
		ManifestStore:   store,
	}
}

func (dm *deferredMaterializer) Materialize(ctx context.Context, args MaterializeArgs, mutations []m.Mutation) (m.MaterializeResult, error) {
	path, err := writeManifest(ctx, dm.SourceFSAdapter, dm.ManifestStore, args, mutations)
	if err != nil {
		slog.Error("Failed to write manifest", "error", err)
		return m.MaterializeResult{}, err
	}

	if args.OnProgress != nil {
		args.OnProgress(len(mutations), len(mutations))
	}

	slog.Info("Manifest written", "path", path, "mutations", len(mutations))

	return m.MaterializeResult{
		Strategy: m.StrategyDeferred,
		Output:   OutputDir(args.Root, args.Output),
		Manifest: path,
		Summary:  Summarize(mutations, args.Types...),
	}, nil
}
