package mutagens

import m "gooze.dev/pkg/reconmut/internal/model"

// InjectedError is the expression substituted for a successful error return.
const InjectedError = `fmt.Errorf("reconmut: injected failure")`

// ReturnOperators returns the control-flow-return operators.
func ReturnOperators() []Operator {
	return []Operator{
		RegexOperator(
			"return-error-to-nil", m.MutationReturns, "return nil instead of the propagated error",
			`^(?P<head>\s*return\s+(?:.*,\s*)?)`+errIdent+`\s*$`, "${head}nil",
		),
		RegexOperator(
			"return-wrapped-error-to-nil", m.MutationReturns, "return nil instead of a constructed error",
			`^(?P<head>\s*return\s+(?:.*,\s*)?)(?:fmt\.Errorf|errors\.New|errors\.Wrapf?)\(`, "${head}nil",
		).AsCall().WithTail(`^\s*(?://.*)?$`),
		RegexOperator(
			"return-nil-to-error", m.MutationReturns, "fail a reconcile that succeeded",
			`^(?P<head>\s*return\s+(?:ctrl|reconcile)\.Result\{[^}]*\},\s*)nil\s*$`, "${head}"+escapeTemplate(InjectedError),
		).WithRequires("fmt"),
	}
}
