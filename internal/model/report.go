package model

import "time"

// Strategy names a materialization strategy.
type Strategy string

const (
	// StrategyCopy writes one full tree copy per mutation.
	StrategyCopy Strategy = "copy"
	// StrategyDeferred writes only the manifest for later in-place application.
	StrategyDeferred Strategy = "deferred"
)

// Manifest is the persisted candidate list of one generation run.
type Manifest struct {
	RunID           string               `json:"run_id"`
	GeneratedAt     time.Time            `json:"generated_at"`
	OperatorRoot    Path                 `json:"operator_root"`
	MutationTypes   []MutationType       `json:"mutation_types"`
	TotalMutations  int                  `json:"total_mutations"`
	MutationsByType map[MutationType]int `json:"mutations_by_type"`
	Mutations       []Mutation           `json:"mutations"`
}

// Provenance is the sidecar written into every materialized mutant directory.
type Provenance struct {
	ID          uint         `json:"id"`
	Type        MutationType `json:"type"`
	Description string       `json:"description"`
	File        Path         `json:"file"`
	Line        int          `json:"line"`
	Pattern     string       `json:"pattern"`
	Original    string       `json:"original"`
	Mutated     string       `json:"mutated"`
	RunID       string       `json:"run_id,omitempty"`
}

// NewProvenance builds the sidecar record for a mutation.
func NewProvenance(mutation Mutation, runID string) Provenance {
	return Provenance{
		ID:          mutation.ID,
		Type:        mutation.Type,
		Description: mutation.Description,
		File:        mutation.File,
		Line:        mutation.Line,
		Pattern:     mutation.Pattern,
		Original:    mutation.OriginalText,
		Mutated:     mutation.MutatedText,
		RunID:       runID,
	}
}

// MutantFailure records a mutation that could not be materialized.
type MutantFailure struct {
	Mutation Mutation
	Err      error
}

// ScanFailure records a source file that was skipped during scanning.
type ScanFailure struct {
	File Path
	Err  error
}

// MaterializeResult describes the output of one materialization run.
type MaterializeResult struct {
	Strategy Strategy
	Output   Path
	Manifest Path
	Mutants  []Path
	Failures []MutantFailure
	Summary  Summary
}
