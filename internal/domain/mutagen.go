// Package domain contains the core mutation generation workflow and logic.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gooze.dev/pkg/reconmut/internal/adapter"
	"gooze.dev/pkg/reconmut/internal/domain/mutagens"
	m "gooze.dev/pkg/reconmut/internal/model"
)

// ErrInvalidEncoding is reported for source files that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// Mutagen defines the interface for mutation generation.
type Mutagen interface {
	// GenerateMutations scans files (relative to root unless absolute) and
	// returns candidates with dense ids starting at 1. Unreadable files are
	// reported as scan failures and skipped.
	GenerateMutations(ctx context.Context, root m.Path, files []m.Path, mutationTypes ...m.MutationType) ([]m.Mutation, []m.ScanFailure, error)

	// StreamMutations yields the same candidates and scan failures as
	// GenerateMutations on channels. The failure channel is buffered for every
	// file, so consumers may drain it after the mutation channel closes. All
	// channels close when scanning ends or ctx is cancelled.
	StreamMutations(ctx context.Context, root m.Path, files []m.Path, mutationTypes ...m.MutationType) (<-chan m.Mutation, <-chan m.ScanFailure, <-chan error)
}

// mutagen handles pure mutation generation logic.
type mutagen struct {
	adapter.GoFileAdapter
	adapter.SourceFSAdapter
	catalog mutagens.Catalog
}

// NewMutagen creates a new Mutagen instance. An empty catalog selects the
// built-in operators.
func NewMutagen(goFileAdapter adapter.GoFileAdapter, sourceFSAdapter adapter.SourceFSAdapter, catalog mutagens.Catalog) Mutagen {
	if catalog.Len() == 0 {
		catalog = mutagens.DefaultCatalog()
	}

	return &mutagen{
		GoFileAdapter:   goFileAdapter,
		SourceFSAdapter: sourceFSAdapter,
		catalog:         catalog,
	}
}

func (mg *mutagen) GenerateMutations(ctx context.Context, root m.Path, files []m.Path, mutationTypes ...m.MutationType) ([]m.Mutation, []m.ScanFailure, error) {
	mutationTypes, err := mg.validateConfig(mutationTypes)
	if err != nil {
		return nil, nil, err
	}

	var (
		mutations []m.Mutation
		failures  []m.ScanFailure
	)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		fileMutations, err := mg.scanFile(ctx, root, file, mutationTypes)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}

			slog.Warn("Skipping unreadable source", "file", file, "error", err)
			failures = append(failures, m.ScanFailure{File: file, Err: err})

			continue
		}

		for _, mutation := range fileMutations {
			mutation.ID = uint(len(mutations) + 1)
			mutations = append(mutations, mutation)
		}
	}

	slog.Debug("Scan finished", "files", len(files), "mutations", len(mutations), "failures", len(failures))

	return mutations, failures, nil
}

// StreamMutations streams mutations for files in order.
func (mg *mutagen) StreamMutations(ctx context.Context, root m.Path, files []m.Path, mutationTypes ...m.MutationType) (<-chan m.Mutation, <-chan m.ScanFailure, <-chan error) {
	mutationCh := make(chan m.Mutation)
	failureCh := make(chan m.ScanFailure, len(files))
	errCh := make(chan error, 1)

	go func() {
		defer close(mutationCh)
		defer close(failureCh)
		defer close(errCh)

		resolvedTypes, err := mg.validateConfig(mutationTypes)
		if err != nil {
			errCh <- err
			return
		}

		var nextID uint

		for _, file := range files {
			if ctx.Err() != nil {
				errCh <- ctx.Err()
				return
			}

			fileMutations, err := mg.scanFile(ctx, root, file, resolvedTypes)
			if err != nil {
				if ctx.Err() != nil {
					errCh <- ctx.Err()
					return
				}

				slog.Warn("Skipping unreadable source", "file", file, "error", err)
				failureCh <- m.ScanFailure{File: file, Err: err}

				continue
			}

			for _, mutation := range fileMutations {
				nextID++
				mutation.ID = nextID

				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case mutationCh <- mutation:
				}
			}
		}
	}()

	return mutationCh, failureCh, errCh
}

// validateConfig validates adapters and resolves mutation types.
func (mg *mutagen) validateConfig(mutationTypes []m.MutationType) ([]m.MutationType, error) {
	if mg.SourceFSAdapter == nil || mg.GoFileAdapter == nil {
		return nil, fmt.Errorf("missing adapters")
	}

	return resolveMutationTypes(mutationTypes)
}

func resolveMutationTypes(mutationTypes []m.MutationType) ([]m.MutationType, error) {
	if len(mutationTypes) == 0 {
		return m.AllMutationTypes, nil
	}

	for _, mutationType := range mutationTypes {
		if !mutationType.Valid() {
			return nil, fmt.Errorf("%w: %s", m.ErrUnknownMutationType, mutationType)
		}
	}

	return mutationTypes, nil
}

// scanFile returns the candidates of one file without ids.
func (mg *mutagen) scanFile(ctx context.Context, root, file m.Path, mutationTypes []m.MutationType) ([]m.Mutation, error) {
	fullPath := file
	if !filepath.IsAbs(string(file)) {
		fullPath = mg.JoinPath(ctx, string(root), string(file))
	}

	content, err := mg.ReadFile(ctx, fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fullPath, err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", fullPath, ErrInvalidEncoding)
	}

	relPath, err := mg.RelPath(ctx, root, fullPath)
	if err != nil || strings.HasPrefix(string(relPath), "..") {
		relPath = fullPath
	}

	imports := mg.importSet(ctx, fullPath, content)
	lines := strings.Split(string(content), "\n")
	ignore := buildIgnoreIndex(lines)

	var (
		mutations []m.Mutation
		state     mutagens.LineState
	)

	for i, raw := range lines {
		text := strings.TrimSuffix(raw, "\r")

		mutations = append(mutations, mg.scanLine(relPath.Slash(), i+1, text, state, imports, ignore, mutationTypes)...)
		state = state.Advance(text)
	}

	return mutations, nil
}

// scanLine keeps every conditional rewrite of a line and the first rewrite of
// every other mutation type.
func (mg *mutagen) scanLine(
	file m.Path,
	lineNo int,
	text string,
	state mutagens.LineState,
	imports map[string]struct{},
	ignore ignoreIndex,
	mutationTypes []m.MutationType,
) []m.Mutation {
	matches := mg.catalog.MatchState(text, state, mutationTypes...)
	if len(matches) == 0 {
		return nil
	}

	commentOnly := state.BlockComment || (!state.RawString && mutagens.IsCommentLine(text))

	original := strings.TrimLeft(text, " \t")
	taken := make(map[m.MutationType]struct{}, len(matches))
	seen := make(map[string]struct{}, len(matches))

	var mutations []m.Mutation

	for _, match := range matches {
		if ignore.ignores(lineNo, match.Type) {
			continue
		}

		if match.Requires != "" {
			if _, ok := imports[match.Requires]; !ok {
				continue
			}
		}

		if match.Type == m.MutationConditionals {
			if commentOnly {
				continue
			}
		} else if _, done := taken[match.Type]; done {
			continue
		}

		mutated := strings.TrimLeft(match.MutatedText, " \t")
		if _, dup := seen[mutated]; dup {
			continue
		}

		taken[match.Type] = struct{}{}
		seen[mutated] = struct{}{}

		mutations = append(mutations, m.Mutation{
			Type:         match.Type,
			Pattern:      match.Pattern,
			File:         file,
			Line:         lineNo,
			Description:  match.Description,
			OriginalText: original,
			MutatedText:  mutated,
		})
	}

	return mutations
}

// importSet returns the imports a file refers to by their package name.
// Aliased, blank and dot imports are left out, so operators that inject
// a package-qualified call only fire when that qualifier resolves. Files that
// do not parse yield an empty set, which disables operators that need an
// import.
func (mg *mutagen) importSet(ctx context.Context, file m.Path, content []byte) map[string]struct{} {
	imports, err := mg.Imports(ctx, string(file), content)
	if err != nil {
		slog.Debug("Could not read imports", "file", file, "error", err)
		return nil
	}

	set := make(map[string]struct{}, len(imports))
	for _, imp := range imports {
		if imp.Name != "" && imp.Name != path.Base(imp.Path) {
			continue
		}

		set[imp.Path] = struct{}{}
	}

	return set
}
