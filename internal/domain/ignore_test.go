package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	m "gooze.dev/pkg/reconmut/internal/model"
)

func TestParseIgnoreDirective(t *testing.T) {
	tests := []struct {
		comment string
		ok      bool
		all     bool
		types   []m.MutationType
	}{
		{comment: "// reconmut:ignore", ok: true, all: true},
		{comment: "//reconmut:ignore", ok: true, all: true},
		{comment: "/* reconmut:ignore */", ok: true, all: true},
		{comment: "// reconmut:ignore Requeue, status", ok: true, types: []m.MutationType{m.MutationRequeue, m.MutationStatus}},
		{comment: "// reconmut:ignore ,", ok: true, all: true},
		{comment: "// nothing to see", ok: false},
		{comment: "// see reconmut:ignore", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			rule, ok := parseIgnoreDirective(tt.comment)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.all, rule.all)

			for _, mutationType := range tt.types {
				assert.True(t, rule.ignores(mutationType))
			}

			if !tt.all && len(tt.types) > 0 {
				assert.False(t, rule.ignores(m.MutationConditionals))
			}
		})
	}
}

func TestBuildIgnoreIndex(t *testing.T) {
	source := `// reconmut:ignore api-calls

package controller

func f() {
	a := x == y // reconmut:ignore
	// reconmut:ignore requeue
	b := ctrl.Result{Requeue: true}
	c := "// reconmut:ignore"
}
`
	idx := buildIgnoreIndex(strings.Split(source, "\n"))

	assert.True(t, idx.ignores(9, m.MutationAPICalls), "file-level directive")
	assert.False(t, idx.ignores(9, m.MutationConditionals), "directive inside a string literal")
	assert.True(t, idx.ignores(6, m.MutationConditionals), "trailing directive")
	assert.True(t, idx.ignores(8, m.MutationRequeue), "directive on the line above")
	assert.False(t, idx.ignores(8, m.MutationStatus))
	assert.False(t, idx.ignores(7, m.MutationConditionals))
}

func TestMergeIgnoreRule(t *testing.T) {
	var rule ignoreRule

	mergeIgnoreRule(&rule, ignoreRule{names: map[m.MutationType]struct{}{m.MutationStatus: {}}})
	assert.True(t, rule.ignores(m.MutationStatus))
	assert.False(t, rule.ignores(m.MutationReturns))

	mergeIgnoreRule(&rule, ignoreRule{all: true})
	assert.True(t, rule.ignores(m.MutationReturns))

	mergeIgnoreRule(&rule, ignoreRule{names: map[m.MutationType]struct{}{m.MutationRequeue: {}}})
	assert.True(t, rule.all)
}
