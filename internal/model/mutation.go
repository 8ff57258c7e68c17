// Package model defines the data structures for mutation generation.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// MutationType represents the category of mutation.
type MutationType string

const (
	// MutationConditionals substitutes relational and logical operators (==, !=, <, &&, ...).
	MutationConditionals MutationType = "conditionals"
	// MutationErrorHandling neutralizes error checks or swaps error classifications.
	MutationErrorHandling MutationType = "error-handling"
	// MutationReturns swaps propagated failure values for success values and back.
	MutationReturns MutationType = "returns"
	// MutationRequeue toggles or zeroes requeue directives.
	MutationRequeue MutationType = "requeue"
	// MutationStatus suppresses status commits or flips condition values.
	MutationStatus MutationType = "status"
	// MutationAPICalls substitutes one client operation for an adjacent one.
	MutationAPICalls MutationType = "api-calls"
)

// AllMutationTypes lists every mutation type in catalog priority order.
var AllMutationTypes = []MutationType{
	MutationConditionals,
	MutationErrorHandling,
	MutationReturns,
	MutationRequeue,
	MutationStatus,
	MutationAPICalls,
}

// AllMutationsSelector is the selector token that enables every mutation type.
const AllMutationsSelector = "all"

// ErrUnknownMutationType is returned when a selector names an unsupported type.
var ErrUnknownMutationType = errors.New("unknown mutation type")

// Valid reports whether t is one of the supported mutation types.
func (t MutationType) Valid() bool {
	for _, known := range AllMutationTypes {
		if t == known {
			return true
		}
	}

	return false
}

// ParseMutationTypes resolves a selector such as "all" or "conditionals,requeue"
// into mutation types ordered by catalog priority.
func ParseMutationTypes(selector string) ([]MutationType, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" || strings.EqualFold(selector, AllMutationsSelector) {
		return append([]MutationType(nil), AllMutationTypes...), nil
	}

	wanted := make(map[MutationType]struct{})

	for _, part := range strings.Split(selector, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		if name == AllMutationsSelector {
			return append([]MutationType(nil), AllMutationTypes...), nil
		}

		mutationType := MutationType(name)
		if !mutationType.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMutationType, name)
		}

		wanted[mutationType] = struct{}{}
	}

	if len(wanted) == 0 {
		return nil, fmt.Errorf("%w: empty selector %q", ErrUnknownMutationType, selector)
	}

	types := make([]MutationType, 0, len(wanted))

	for _, mutationType := range AllMutationTypes {
		if _, ok := wanted[mutationType]; ok {
			types = append(types, mutationType)
		}
	}

	return types, nil
}

// Mutation describes a single one-line mutation candidate.
// OriginalText and MutatedText hold the line content without leading indentation.
type Mutation struct {
	ID           uint         `json:"id"`
	Type         MutationType `json:"type"`
	Pattern      string       `json:"pattern"`
	File         Path         `json:"file"`
	Line         int          `json:"line"`
	Description  string       `json:"description"`
	OriginalText string       `json:"original_text"`
	MutatedText  string       `json:"mutated_text"`
}

// Name returns the directory name used for the materialized mutant.
func (mt Mutation) Name() string {
	return fmt.Sprintf("mutant-%03d", mt.ID)
}

// Summary aggregates a mutation set by type.
type Summary struct {
	Total  int                  `json:"total_mutations"`
	ByType map[MutationType]int `json:"mutations_by_type"`
}
