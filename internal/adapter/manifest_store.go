package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "gooze.dev/pkg/reconmut/internal/model"
)

const (
	// ManifestFileName is the manifest written at the output root.
	ManifestFileName = "mutations.json"
	// ProvenanceFileName is the sidecar written into every mutant directory.
	ProvenanceFileName = "mutation.json"
)

// ManifestStore persists generation manifests and mutant provenance records.
type ManifestStore interface {
	// SaveManifest atomically writes the manifest to path.
	SaveManifest(ctx context.Context, path m.Path, manifest m.Manifest) error

	// LoadManifest reads a manifest previously written by SaveManifest.
	LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error)

	// SaveProvenance writes the provenance sidecar into a mutant directory.
	SaveProvenance(ctx context.Context, dir m.Path, provenance m.Provenance) error
}

// JSONManifestStore implements ManifestStore with indented JSON files.
type JSONManifestStore struct{}

// NewJSONManifestStore constructs a JSONManifestStore.
func NewJSONManifestStore() *JSONManifestStore {
	return &JSONManifestStore{}
}

// SaveManifest writes manifest as JSON through a temporary file so readers
// never observe a partial manifest.
func (s *JSONManifestStore) SaveManifest(ctx context.Context, path m.Path, manifest m.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if manifest.Mutations == nil {
		manifest.Mutations = []m.Mutation{}
	}

	return writeJSONAtomic(string(path), manifest)
}

// LoadManifest reads and decodes the manifest at path.
func (s *JSONManifestStore) LoadManifest(ctx context.Context, path m.Path) (m.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return m.Manifest{}, err
	}

	// #nosec G304 - manifest path comes from the tool's own output directory
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var manifest m.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	return manifest, nil
}

// SaveProvenance writes provenance to dir/mutation.json.
func (s *JSONManifestStore) SaveProvenance(ctx context.Context, dir m.Path, provenance m.Provenance) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeJSONAtomic(filepath.Join(string(dir), ProvenanceFileName), provenance)
}

func writeJSONAtomic(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}

	tmpName := tmp.Name()

	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}

	return nil
}
