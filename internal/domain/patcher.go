package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/reconmut/internal/adapter"
	m "gooze.dev/pkg/reconmut/internal/model"
)

// ErrMutationNotFound is returned when a manifest has no mutation with the requested id.
var ErrMutationNotFound = errors.New("mutation not found")

// Patcher applies and reverts single mutations in a working copy.
type Patcher interface {
	// Apply rewrites the mutation's line from OriginalText to MutatedText.
	Apply(ctx context.Context, root m.Path, mutation m.Mutation) error
	// Revert restores OriginalText on a line that currently holds MutatedText.
	Revert(ctx context.Context, root m.Path, mutation m.Mutation) error
	// Preview returns the file content with the mutation applied, without writing.
	Preview(ctx context.Context, root m.Path, mutation m.Mutation) (original, mutated []byte, err error)
}

type patcher struct {
	adapter.SourceFSAdapter
}

// NewPatcher creates a Patcher over the given filesystem.
func NewPatcher(fsAdapter adapter.SourceFSAdapter) Patcher {
	return &patcher{SourceFSAdapter: fsAdapter}
}

func (p *patcher) Apply(ctx context.Context, root m.Path, mutation m.Mutation) error {
	return p.rewrite(ctx, root, mutation, mutation.OriginalText, mutation.MutatedText)
}

func (p *patcher) Revert(ctx context.Context, root m.Path, mutation m.Mutation) error {
	return p.rewrite(ctx, root, mutation, mutation.MutatedText, mutation.OriginalText)
}

func (p *patcher) Preview(ctx context.Context, root m.Path, mutation m.Mutation) ([]byte, []byte, error) {
	target := p.JoinPath(ctx, string(root), string(mutation.File.Native()))

	content, err := p.ReadFile(ctx, target)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", target, err)
	}

	mutated, err := patchLine(content, mutation.Line, mutation.OriginalText, mutation.MutatedText)
	if err != nil {
		return nil, nil, fmt.Errorf("patch %s: %w", target, err)
	}

	return content, mutated, nil
}

func (p *patcher) rewrite(ctx context.Context, root m.Path, mutation m.Mutation, from, to string) error {
	target := p.JoinPath(ctx, string(root), string(mutation.File.Native()))

	info, err := p.FileInfo(ctx, target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	content, err := p.ReadFile(ctx, target)
	if err != nil {
		return fmt.Errorf("read %s: %w", target, err)
	}

	patched, err := patchLine(content, mutation.Line, from, to)
	if err != nil {
		return fmt.Errorf("mutation %d in %s: %w", mutation.ID, target, err)
	}

	if err := p.WriteFile(ctx, target, patched, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	slog.Debug("Patched line", "id", mutation.ID, "file", target, "line", mutation.Line)

	return nil
}
