package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchLine(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		line        int
		expect      string
		replacement string
		want        string
		wantErr     error
	}{
		{
			name:        "keeps indentation",
			content:     "a\n\t\tif x == y {\nb\n",
			line:        2,
			replacement: "if x != y {",
			want:        "a\n\t\tif x != y {\nb\n",
		},
		{
			name:        "keeps carriage return",
			content:     "a\r\n    return err\r\n}\r\n",
			line:        2,
			expect:      "return err",
			replacement: "return nil",
			want:        "a\r\n    return nil\r\n}\r\n",
		},
		{
			name:        "last line without newline",
			content:     "package x\nvar ok = true",
			line:        2,
			replacement: "var ok = false",
			want:        "package x\nvar ok = false",
		},
		{
			name:        "replacement indentation is normalized",
			content:     "x\n\ty := 1\n",
			line:        2,
			replacement: "  y := 2",
			want:        "x\n\ty := 2\n",
		},
		{
			name:        "stale line",
			content:     "a\n\treturn nil\n",
			line:        2,
			expect:      "return err",
			replacement: "return nil",
			wantErr:     ErrStaleMutation,
		},
		{
			name:        "line zero",
			content:     "a\n",
			line:        0,
			replacement: "b",
			wantErr:     ErrLineOutOfRange,
		},
		{
			name:        "past the end",
			content:     "a\nb\n",
			line:        3,
			replacement: "c",
			wantErr:     ErrLineOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := patchLine([]byte(tt.content), tt.line, tt.expect, tt.replacement)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
