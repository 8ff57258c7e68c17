package domain

import (
	"time"

	"github.com/google/uuid"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// Summarize counts mutations in total and per type. Every enabled type is
// present in ByType, even with a zero count.
func Summarize(mutations []m.Mutation, mutationTypes ...m.MutationType) m.Summary {
	if len(mutationTypes) == 0 {
		mutationTypes = m.AllMutationTypes
	}

	byType := make(map[m.MutationType]int, len(mutationTypes))
	for _, mutationType := range mutationTypes {
		byType[mutationType] = 0
	}

	for _, mutation := range mutations {
		byType[mutation.Type]++
	}

	return m.Summary{Total: len(mutations), ByType: byType}
}

// NewManifest assembles the persisted record of a generation run. A missing
// run id is replaced by a random one.
func NewManifest(root m.Path, runID string, mutationTypes []m.MutationType, mutations []m.Mutation) m.Manifest {
	runID = ensureRunID(runID)

	if len(mutationTypes) == 0 {
		mutationTypes = m.AllMutationTypes
	}

	summary := Summarize(mutations, mutationTypes...)

	return m.Manifest{
		RunID:           runID,
		GeneratedAt:     time.Now().UTC(),
		OperatorRoot:    root,
		MutationTypes:   mutationTypes,
		TotalMutations:  summary.Total,
		MutationsByType: summary.ByType,
		Mutations:       mutations,
	}
}

// FindMutation returns the manifest entry with the given id.
func FindMutation(manifest m.Manifest, id uint) (m.Mutation, bool) {
	for _, mutation := range manifest.Mutations {
		if mutation.ID == id {
			return mutation, true
		}
	}

	return m.Mutation{}, false
}

func ensureRunID(runID string) string {
	if runID == "" {
		return uuid.NewString()
	}

	return runID
}
