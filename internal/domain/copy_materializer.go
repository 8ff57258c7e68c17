package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/reconmut/internal/adapter"
	m "gooze.dev/pkg/reconmut/internal/model"
)

type copyMaterializer struct {
	adapter.SourceFSAdapter
	adapter.ManifestStore
}

// NewCopyMaterializer returns a materializer that writes one full copy of the
// repository per mutation, each with exactly one line changed.
func NewCopyMaterializer(fsAdapter adapter.SourceFSAdapter, store adapter.ManifestStore) Materializer {
	return &copyMaterializer{
		SourceFSAdapter: fsAdapter,
		ManifestStore:   store,
	}
}

func (cm *copyMaterializer) Materialize(ctx context.Context, args MaterializeArgs, mutations []m.Mutation) (m.MaterializeResult, error) {
	args.RunID = ensureRunID(args.RunID)
	output := OutputDir(args.Root, args.Output)

	if err := cm.MkdirAll(ctx, output); err != nil {
		return m.MaterializeResult{}, fmt.Errorf("create output directory %s: %w", output, err)
	}

	parallel := args.Parallel
	if parallel < 1 {
		parallel = 1
	}

	mutants := make([]m.Path, len(mutations))
	failures := make([]error, len(mutations))

	var (
		progressMu sync.Mutex
		done       int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, mutation := range mutations {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			dir, err := cm.materializeOne(groupCtx, args.Root, output, args.RunID, mutation)
			if err != nil {
				if groupCtx.Err() != nil {
					return groupCtx.Err()
				}

				slog.Error("Failed to materialize mutant", "id", mutation.ID, "file", mutation.File, "line", mutation.Line, "error", err)
				failures[i] = err
			} else {
				mutants[i] = dir
			}

			progressMu.Lock()
			done++
			current := done
			progressMu.Unlock()

			if args.OnProgress != nil {
				args.OnProgress(current, len(mutations))
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.MaterializeResult{}, fmt.Errorf("materialize mutants: %w", err)
	}

	result := m.MaterializeResult{
		Strategy: m.StrategyCopy,
		Output:   output,
		Summary:  Summarize(mutations, args.Types...),
	}

	for i, mutation := range mutations {
		if failures[i] != nil {
			result.Failures = append(result.Failures, m.MutantFailure{Mutation: mutation, Err: failures[i]})
			continue
		}

		result.Mutants = append(result.Mutants, mutants[i])
	}

	path, err := writeManifest(ctx, cm.SourceFSAdapter, cm.ManifestStore, args, mutations)
	if err != nil {
		return result, err
	}

	result.Manifest = path

	slog.Info("Mutants materialized", "output", output, "mutants", len(result.Mutants), "failures", len(result.Failures))

	return result, nil
}

// materializeOne replaces any previous mutant directory with a fresh copy of
// root carrying the mutation. A partial directory is removed on failure.
func (cm *copyMaterializer) materializeOne(ctx context.Context, root, output m.Path, runID string, mutation m.Mutation) (m.Path, error) {
	dir := cm.JoinPath(ctx, string(output), mutation.Name())

	if err := cm.RemoveAll(ctx, dir); err != nil {
		return "", fmt.Errorf("remove previous mutant %s: %w", dir, err)
	}

	if err := cm.populate(ctx, root, output, dir, runID, mutation); err != nil {
		if rmErr := cm.RemoveAll(ctx, dir); rmErr != nil {
			slog.Warn("Failed to clean up partial mutant", "dir", dir, "error", rmErr)
		}

		return "", err
	}

	slog.Debug("Mutant materialized", "id", mutation.ID, "dir", dir)

	return dir, nil
}

func (cm *copyMaterializer) populate(ctx context.Context, root, output, dir m.Path, runID string, mutation m.Mutation) error {
	if err := cm.CopyDir(ctx, root, dir, output); err != nil {
		return fmt.Errorf("copy %s: %w", root, err)
	}

	target := cm.JoinPath(ctx, string(dir), string(mutation.File.Native()))

	info, err := cm.FileInfo(ctx, target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	content, err := cm.ReadFile(ctx, target)
	if err != nil {
		return fmt.Errorf("read %s: %w", target, err)
	}

	patched, err := patchLine(content, mutation.Line, "", mutation.MutatedText)
	if err != nil {
		return fmt.Errorf("patch %s: %w", target, err)
	}

	if err := cm.WriteFile(ctx, target, patched, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	if err := cm.SaveProvenance(ctx, dir, m.NewProvenance(mutation, runID)); err != nil {
		return fmt.Errorf("write provenance for %s: %w", dir, err)
	}

	return nil
}
