package domain

import (
	"github.com/pmezard/go-difflib/difflib"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// UnifiedDiff renders the change a mutation makes to its file.
func UnifiedDiff(mutation m.Mutation, original, mutated []byte) (string, error) {
	file := string(mutation.File.Slash())

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(mutated)),
		FromFile: "a/" + file,
		ToFile:   "b/" + file,
		Context:  3,
	})
}
