package mutagens

import (
	"fmt"
	"regexp"
	"strings"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// Match is one rewrite produced by the catalog for a line.
type Match struct {
	Pattern     string
	Type        m.MutationType
	MutatedText string
	Description string
	Requires    string
}

// Catalog is an immutable, ordered set of operators.
type Catalog struct {
	operators []Operator
}

// NewCatalog builds a catalog from operators. Order inside a mutation type is
// the priority order used for first-match selection.
func NewCatalog(operators ...Operator) Catalog {
	return Catalog{operators: append([]Operator(nil), operators...)}
}

// DefaultCatalog returns the built-in operators for reconciliation controllers.
func DefaultCatalog() Catalog {
	var ops []Operator

	ops = append(ops, ConditionalOperators()...)
	ops = append(ops, ErrorHandlingOperators()...)
	ops = append(ops, ReturnOperators()...)
	ops = append(ops, RequeueOperators()...)
	ops = append(ops, StatusOperators()...)
	ops = append(ops, APICallOperators()...)

	return NewCatalog(ops...)
}

// With returns a new catalog with the extra operators appended.
func (c Catalog) With(operators ...Operator) Catalog {
	ops := make([]Operator, 0, len(c.operators)+len(operators))
	ops = append(ops, c.operators...)
	ops = append(ops, operators...)

	return Catalog{operators: ops}
}

// Operators returns a copy of the catalog's operators.
func (c Catalog) Operators() []Operator {
	return append([]Operator(nil), c.operators...)
}

// Len returns the number of operators.
func (c Catalog) Len() int {
	return len(c.operators)
}

// Match applies every enabled operator to line and returns the rewrites ordered
// by mutation type priority, then by operator order.
func (c Catalog) Match(line string, mutationTypes ...m.MutationType) []Match {
	return c.MatchState(line, LineState{}, mutationTypes...)
}

// MatchState is Match for a line that starts in the given lexer state, so text
// continuing a raw string literal is masked like any other literal.
func (c Catalog) MatchState(line string, state LineState, mutationTypes ...m.MutationType) []Match {
	if len(mutationTypes) == 0 {
		mutationTypes = m.AllMutationTypes
	}

	enabled := make(map[m.MutationType]struct{}, len(mutationTypes))
	for _, mutationType := range mutationTypes {
		enabled[mutationType] = struct{}{}
	}

	masked, comment := maskLine(line, state.RawString)
	maskedCode := maskComment(masked, comment)

	var matches []Match

	for _, mutationType := range m.AllMutationTypes {
		if _, ok := enabled[mutationType]; !ok {
			continue
		}

		for _, op := range c.operators {
			if op.Type != mutationType {
				continue
			}

			subject := masked
			if mutationType == m.MutationConditionals {
				subject = maskedCode
			}

			mutated, ok := op.apply(line, subject)
			if !ok {
				continue
			}

			matches = append(matches, Match{
				Pattern:     op.Name,
				Type:        op.Type,
				MutatedText: mutated,
				Description: op.Description,
				Requires:    op.Requires,
			})
		}
	}

	return matches
}

// FromDefinition builds an operator from a catalog file entry. Token entries
// (from/to) are anchored automatically; raw patterns are compiled as written.
func FromDefinition(def m.OperatorDefinition) (Operator, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return Operator{}, fmt.Errorf("operator definition is missing a name")
	}

	mutationType := m.MutationType(strings.ToLower(strings.TrimSpace(def.Type)))
	if !mutationType.Valid() {
		return Operator{}, fmt.Errorf("operator %s: %w: %q", name, m.ErrUnknownMutationType, def.Type)
	}

	description := def.Description
	if description == "" {
		description = name
	}

	var op Operator

	switch {
	case def.From != "" && def.Pattern != "":
		return Operator{}, fmt.Errorf("operator %s: from and pattern are mutually exclusive", name)
	case def.From != "":
		op = TokenOperator(name, mutationType, description, def.From, def.To)
	case def.Pattern != "":
		pattern, err := regexp.Compile(def.Pattern)
		if err != nil {
			return Operator{}, fmt.Errorf("operator %s: invalid pattern: %w", name, err)
		}

		op = Operator{
			Name:        name,
			Type:        mutationType,
			Description: description,
			Pattern:     pattern,
			Replacement: def.Replacement,
		}
	default:
		return Operator{}, fmt.Errorf("operator %s: either from or pattern is required", name)
	}

	if def.Skip != "" {
		skip, err := regexp.Compile(def.Skip)
		if err != nil {
			return Operator{}, fmt.Errorf("operator %s: invalid skip pattern: %w", name, err)
		}

		op.Skip = skip
	}

	op.Requires = def.Requires

	return op, nil
}

// FromDefinitions builds operators for every definition, stopping at the first error.
func FromDefinitions(defs []m.OperatorDefinition) ([]Operator, error) {
	ops := make([]Operator, 0, len(defs))

	for _, def := range defs {
		op, err := FromDefinition(def)
		if err != nil {
			return nil, err
		}

		ops = append(ops, op)
	}

	return ops, nil
}
