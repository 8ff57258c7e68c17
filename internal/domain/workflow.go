package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/reconmut/internal/adapter"
	"gooze.dev/pkg/reconmut/internal/controller"
	m "gooze.dev/pkg/reconmut/internal/model"
)

// ScanArgs selects what to scan.
type ScanArgs struct {
	// Root is the operator repository.
	Root m.Path
	// Files are explicit files to scan. When empty, Discovery selects them.
	Files []m.Path
	// Discovery selects controller files under Root.
	Discovery m.DiscoveryRule
	// Mutations is a mutation type selector such as "all" or "requeue,status".
	Mutations string
	// ShardIndex and TotalShardCount split candidates across workers.
	ShardIndex      uint
	TotalShardCount uint
}

// GenerateArgs contains the arguments for a generation run.
type GenerateArgs struct {
	ScanArgs
	Output   m.Path
	Strategy m.Strategy
	Parallel int
	RunID    string
	// DryRun lists the candidates without writing anything.
	DryRun bool
}

// ListArgs contains the arguments for listing candidates.
type ListArgs struct {
	ScanArgs
}

// PatchArgs selects a manifest entry to apply or revert in place.
type PatchArgs struct {
	Root   m.Path
	Output m.Path
	ID     uint
}

// ShowArgs selects a manifest entry to display.
type ShowArgs struct {
	Root   m.Path
	Output m.Path
	ID     uint
}

// Workflow defines the interface for the mutation generation workflow.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	List(ctx context.Context, args ListArgs) error
	Apply(ctx context.Context, args PatchArgs) error
	Revert(ctx context.Context, args PatchArgs) error
	Show(ctx context.Context, args ShowArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ManifestStore
	controller.UI
	Mutagen
	patcher Patcher
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	manifestStore adapter.ManifestStore,
	ui controller.UI,
	mutagen Mutagen,
	patcher Patcher,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ManifestStore:   manifestStore,
		UI:              ui,
		Mutagen:         mutagen,
		patcher:         patcher,
	}
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	if args.Strategy == "" {
		args.Strategy = m.StrategyDeferred
	}

	materializer, err := NewMaterializer(args.Strategy, w.SourceFSAdapter, w.ManifestStore)
	if err != nil {
		return err
	}

	mutationTypes, err := m.ParseMutationTypes(args.Mutations)
	if err != nil {
		return err
	}

	mode := controller.WithGenerateMode()
	if args.DryRun {
		mode = controller.WithListMode()
	}

	if err := w.Start(ctx, mode); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if args.DryRun {
		mutations, err := w.preview(ctx, args.ScanArgs, mutationTypes)
		if err != nil {
			w.Close(ctx)
			return err
		}

		w.DisplayMutations(ctx, mutations)
		w.DisplaySummary(ctx, Summarize(mutations, mutationTypes...))
		w.Wait(ctx)
		w.Close(ctx)

		return nil
	}

	mutations, err := w.scan(ctx, args.ScanArgs, mutationTypes)
	if err != nil {
		w.Close(ctx)
		return err
	}

	w.DisplayMaterializeStart(ctx, args.Strategy, len(mutations))

	result, err := materializer.Materialize(ctx, MaterializeArgs{
		Root:     args.Root,
		Output:   args.Output,
		Types:    mutationTypes,
		RunID:    args.RunID,
		Parallel: args.Parallel,
		OnProgress: func(done, total int) {
			w.DisplayMaterializeProgress(ctx, done, total)
		},
	}, mutations)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to materialize mutations", "error", err)

		return fmt.Errorf("materialize: %w", err)
	}

	w.DisplayMaterializeResult(ctx, result)
	w.DisplaySummary(ctx, result.Summary)
	w.Close(ctx)

	if len(result.Failures) > 0 {
		slog.Warn("Some mutants could not be materialized", "failures", len(result.Failures))
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	mutationTypes, err := m.ParseMutationTypes(args.Mutations)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	mutations, err := w.preview(ctx, args.ScanArgs, mutationTypes)
	if err != nil {
		w.Close(ctx)
		return err
	}

	w.DisplayMutations(ctx, mutations)
	w.DisplaySummary(ctx, Summarize(mutations, mutationTypes...))
	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// resolveFiles returns the explicit files or the discovered controllers.
func (w *workflow) resolveFiles(ctx context.Context, args ScanArgs, mutationTypes []m.MutationType) ([]m.Path, error) {
	files := args.Files
	if len(files) == 0 {
		discovered, err := w.Discover(ctx, args.Root, args.Discovery)
		if err != nil {
			slog.Error("Failed to discover controllers", "root", args.Root, "error", err)
			return nil, fmt.Errorf("discover controllers: %w", err)
		}

		files = discovered
	}

	slog.Debug("Scanning controllers", "root", args.Root, "files", len(files), "types", mutationTypes)

	return files, nil
}

// preview streams the candidates of a read-only listing, keeping the ones
// that belong to the requested shard.
func (w *workflow) preview(ctx context.Context, args ScanArgs, mutationTypes []m.MutationType) ([]m.Mutation, error) {
	files, err := w.resolveFiles(ctx, args, mutationTypes)
	if err != nil {
		return nil, err
	}

	mutationCh, failureCh, errCh := w.StreamMutations(ctx, args.Root, files, mutationTypes...)

	var (
		mutations []m.Mutation
		failures  []m.ScanFailure
		position  uint
	)

	for mutation := range mutationCh {
		if inShard(position, args.ShardIndex, args.TotalShardCount) {
			mutations = append(mutations, mutation)
		}

		position++
	}

	for failure := range failureCh {
		failures = append(failures, failure)
	}

	if err := <-errCh; err != nil {
		slog.Error("Failed to stream mutations", "error", err)
		return nil, fmt.Errorf("generate mutations: %w", err)
	}

	if len(failures) > 0 {
		w.DisplayScanFailures(ctx, failures)
	}

	return mutations, nil
}

// scan resolves the candidate files, scans them and applies sharding.
func (w *workflow) scan(ctx context.Context, args ScanArgs, mutationTypes []m.MutationType) ([]m.Mutation, error) {
	files, err := w.resolveFiles(ctx, args, mutationTypes)
	if err != nil {
		return nil, err
	}

	mutations, failures, err := w.GenerateMutations(ctx, args.Root, files, mutationTypes...)
	if err != nil {
		slog.Error("Failed to generate mutations", "error", err)
		return nil, fmt.Errorf("generate mutations: %w", err)
	}

	if len(failures) > 0 {
		w.DisplayScanFailures(ctx, failures)
	}

	return ShardMutations(mutations, args.ShardIndex, args.TotalShardCount), nil
}

func (w *workflow) Apply(ctx context.Context, args PatchArgs) error {
	return w.patch(ctx, args, false)
}

func (w *workflow) Revert(ctx context.Context, args PatchArgs) error {
	return w.patch(ctx, args, true)
}

func (w *workflow) patch(ctx context.Context, args PatchArgs, revert bool) error {
	root, mutation, err := w.loadMutation(ctx, args.Root, args.Output, args.ID)
	if err != nil {
		return err
	}

	if revert {
		err = w.patcher.Revert(ctx, root, mutation)
	} else {
		err = w.patcher.Apply(ctx, root, mutation)
	}

	if err != nil {
		slog.Error("Failed to patch mutation", "id", mutation.ID, "revert", revert, "error", err)
		return err
	}

	if err := w.Start(ctx); err != nil {
		return err
	}

	w.DisplayPatched(ctx, mutation, revert)
	w.Close(ctx)

	return nil
}

func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	root, mutation, err := w.loadMutation(ctx, args.Root, args.Output, args.ID)
	if err != nil {
		return err
	}

	original, mutated, err := w.patcher.Preview(ctx, root, mutation)
	if err != nil {
		return err
	}

	diff, err := UnifiedDiff(mutation, original, mutated)
	if err != nil {
		return fmt.Errorf("render diff: %w", err)
	}

	if err := w.Start(ctx); err != nil {
		return err
	}

	w.DisplayDiff(ctx, mutation, diff)
	w.Close(ctx)

	return nil
}

// loadMutation reads the manifest under root and returns the requested entry.
// An empty root falls back to the repository recorded in the manifest.
func (w *workflow) loadMutation(ctx context.Context, root, output m.Path, id uint) (m.Path, m.Mutation, error) {
	path := ManifestPath(root, output)

	manifest, err := w.LoadManifest(ctx, path)
	if err != nil {
		return "", m.Mutation{}, err
	}

	mutation, ok := FindMutation(manifest, id)
	if !ok {
		return "", m.Mutation{}, fmt.Errorf("%w: id %d in %s", ErrMutationNotFound, id, path)
	}

	if root == "" {
		root = manifest.OperatorRoot
	}

	return root, mutation, nil
}
