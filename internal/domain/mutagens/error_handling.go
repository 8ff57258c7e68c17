package mutagens

import m "gooze.dev/pkg/reconmut/internal/model"

const errIdent = `(?:err|[A-Za-z_]\w*Err)`

// ErrorHandlingOperators returns the error-suppression operators.
func ErrorHandlingOperators() []Operator {
	return []Operator{
		RegexOperator(
			"error-check-neutralized", m.MutationErrorHandling, "never enter the error branch",
			`\b(?P<check>`+errIdent+`\s*!=\s*nil)\b`, "false && ${check}",
		).WithSkip(`\bfalse\s*&&\s*` + errIdent + `\s*!=\s*nil\b`),
		TokenOperator(
			"not-found-to-already-exists", m.MutationErrorHandling,
			"classify a not-found error as already-exists", "IsNotFound(", "IsAlreadyExists(",
		),
		TokenOperator(
			"already-exists-to-not-found", m.MutationErrorHandling,
			"classify an already-exists error as not-found", "IsAlreadyExists(", "IsNotFound(",
		),
		TokenOperator(
			"conflict-to-not-found", m.MutationErrorHandling,
			"classify a conflict error as not-found", "IsConflict(", "IsNotFound(",
		),
		RegexOperator(
			"ignore-not-found-removed", m.MutationErrorHandling, "propagate not-found errors instead of ignoring them",
			`\bclient\.IgnoreNotFound\((?P<err>\w+)\)`, "${err}",
		),
	}
}
