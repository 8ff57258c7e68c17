package model

import "path/filepath"

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Slash returns the path with forward slashes, used for paths stored in manifests.
func (p Path) Slash() Path {
	return Path(filepath.ToSlash(string(p)))
}

// Native converts a manifest path back to the host separator.
func (p Path) Native() Path {
	return Path(filepath.FromSlash(string(p)))
}

// Import is one import declaration of a Go file.
type Import struct {
	Path string
	// Name is the explicit local name, or empty when the package name is used.
	Name string
}

// DiscoveryRule selects controller-like files under a repository root.
type DiscoveryRule struct {
	// Include holds slash-separated glob patterns matched against the
	// root-relative path; "**" matches any number of directories.
	Include []string
	// Keywords must appear (case-insensitively) in the file base name.
	Keywords []string
	// Exclude holds regular expressions; matching files are skipped.
	Exclude []string
}

// DefaultDiscoveryRule returns the conventional controller layout rule.
func DefaultDiscoveryRule() DiscoveryRule {
	return DiscoveryRule{
		Include:  []string{"**/controllers/**", "**/controller/**"},
		Keywords: []string{"controller", "reconcile"},
	}
}
