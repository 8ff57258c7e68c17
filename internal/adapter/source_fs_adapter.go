// Package adapter contains infrastructure adapters for the reconmut CLI.
package adapter

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning and materializing user projects. It hides direct `os`
// access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Discover returns root-relative paths of controller-like Go files.
	Discover(ctx context.Context, root m.Path, rule m.DiscoveryRule) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// FindProjectRoot searches for go.mod walking up the directory tree.
	FindProjectRoot(ctx context.Context, startPath m.Path) (m.Path, error)

	// CopyDir recursively copies a directory tree, leaving out the skip paths.
	CopyDir(ctx context.Context, src, dst m.Path, skip ...m.Path) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(ctx context.Context, path m.Path) error

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// skippedDirs are never copied into a mutant nor scanned for controllers.
var skippedDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Discover walks root and returns the files selected by rule, sorted.
func (a *LocalSourceFSAdapter) Discover(ctx context.Context, root m.Path, rule m.DiscoveryRule) ([]m.Path, error) {
	excludes, err := compileExcludes(rule.Exclude)
	if err != nil {
		return nil, err
	}

	rootStr := string(root)

	var found []m.Path

	err = filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if _, skip := skippedDirs[d.Name()]; skip && path != rootStr {
				return filepath.SkipDir
			}

			if d.Name() == "vendor" || d.Name() == "testdata" {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(rootStr, path)
		if err != nil {
			return err
		}

		if selectFile(filepath.ToSlash(rel), rule, excludes) {
			found = append(found, m.Path(rel))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover controllers under %s: %w", root, err)
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func selectFile(rel string, rule m.DiscoveryRule, excludes []*regexp.Regexp) bool {
	if !strings.HasSuffix(rel, ".go") || strings.HasSuffix(rel, "_test.go") {
		return false
	}

	if len(rule.Include) > 0 && !matchAnyGlob(rule.Include, rel) {
		return false
	}

	if len(rule.Keywords) > 0 && !containsKeyword(filepath.Base(rel), rule.Keywords) {
		return false
	}

	for _, re := range excludes {
		if re.MatchString(rel) {
			return false
		}
	}

	return true
}

func containsKeyword(name string, keywords []string) bool {
	name = strings.ToLower(name)

	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(name, strings.ToLower(keyword)) {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(_ context.Context, path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindProjectRoot searches for go.mod walking up from startPath.
func (a *LocalSourceFSAdapter) FindProjectRoot(_ context.Context, startPath m.Path) (m.Path, error) {
	dir, err := filepath.Abs(string(startPath))
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory of %s", startPath)
		}

		dir = parent
	}
}

// CopyDir recursively copies a directory tree. Directories listed in skip (and
// VCS metadata) are left out so an output directory inside src is never copied
// into itself.
func (a *LocalSourceFSAdapter) CopyDir(ctx context.Context, src, dst m.Path, skip ...m.Path) error {
	skipped := make(map[string]struct{}, len(skip)+1)

	for _, path := range append(skip, dst) {
		abs, err := filepath.Abs(string(path))
		if err != nil {
			return err
		}

		skipped[abs] = struct{}{}
	}

	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, ok := skippedDirs[info.Name()]; ok && relPath != "." {
				return filepath.SkipDir
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}

			if _, ok := skipped[abs]; ok {
				return filepath.SkipDir
			}
		}

		targetPath := filepath.Join(string(dst), relPath)

		switch {
		case info.IsDir():
			return os.MkdirAll(targetPath, info.Mode().Perm()|0o700)
		case info.Mode()&os.ModeSymlink != 0:
			return copySymlink(path, targetPath)
		default:
			return a.copyFile(path, targetPath, info.Mode())
		}
	})
}

func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}

	return os.Symlink(target, dst)
}

// copyFile copies a single file.
func (a *LocalSourceFSAdapter) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src is internal project file path, not user input
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is internal destination path, not user input
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode.Perm())
}

// MkdirAll creates path and any missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(_ context.Context, path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
