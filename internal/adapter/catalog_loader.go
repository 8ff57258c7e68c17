package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// CatalogLoader reads custom operator definitions from disk.
type CatalogLoader interface {
	Load(ctx context.Context, path m.Path) ([]m.OperatorDefinition, error)
}

// FileCatalogLoader decodes YAML (.yaml, .yml) and TOML (.toml) catalog files.
type FileCatalogLoader struct{}

// NewFileCatalogLoader constructs a FileCatalogLoader.
func NewFileCatalogLoader() *FileCatalogLoader {
	return &FileCatalogLoader{}
}

// Load decodes the catalog file at path. Unknown keys are rejected so typos
// in operator fields do not silently disable an operator.
func (l *FileCatalogLoader) Load(ctx context.Context, path m.Path) ([]m.OperatorDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - catalog path is provided by the operator of the tool
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var file m.CatalogFile

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".toml":
		meta, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", path, err)
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode catalog %s: unknown key %s", path, undecoded[0])
		}
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)

		if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode catalog %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q for %s", filepath.Ext(string(path)), path)
	}

	return file.Operators, nil
}
