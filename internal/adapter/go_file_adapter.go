package adapter

import (
	"context"
	"go/parser"
	"go/token"
	"strconv"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing so the domain layer can focus
// on mutation rules while delegating compiler details to an infrastructure
// component.
type GoFileAdapter interface {
	// Imports returns the import declarations of a Go source file, in
	// declaration order.
	Imports(ctx context.Context, filename string, src []byte) ([]m.Import, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Imports parses only the import block of src.
func (a *LocalGoFileAdapter) Imports(ctx context.Context, filename string, src []byte) ([]m.Import, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := parser.ParseFile(token.NewFileSet(), filename, src, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	imports := make([]m.Import, 0, len(file.Imports))

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		imp := m.Import{Path: path}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}

		imports = append(imports, imp)
	}

	return imports, nil
}
