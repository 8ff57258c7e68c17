package mutagens

import m "gooze.dev/pkg/reconmut/internal/model"

const statusWrite = `[\w.]+\.Status\(\)\.(?:Update|Patch)\(`

// StatusOperators returns the state-publication operators.
func StatusOperators() []Operator {
	return []Operator{
		RegexOperator(
			"status-update-dropped", m.MutationStatus, "skip the status write statement",
			`^(?P<indent>\s*)`+statusWrite, "${indent}_ = error(nil)",
		).AsCall().WithTail(`^\s*(?://.*)?$`),
		RegexOperator(
			"status-update-suppressed", m.MutationStatus, "pretend the status write succeeded",
			`(?P<pre>(?:[=(,]|\breturn)\s*)`+statusWrite, "${pre}error(nil)",
		).AsCall(),
		RegexOperator(
			"condition-true-to-false", m.MutationStatus, "publish a false condition instead of true",
			`\b(?P<pkg>metav1|corev1)\.ConditionTrue\b`, "${pkg}.ConditionFalse",
		),
		RegexOperator(
			"condition-false-to-true", m.MutationStatus, "publish a true condition instead of false",
			`\b(?P<pkg>metav1|corev1)\.ConditionFalse\b`, "${pkg}.ConditionTrue",
		),
		RegexOperator(
			"status-flag-true-to-false", m.MutationStatus, "flip a boolean status field to false",
			`(?P<field>\.Status(?:\.\w+)+\s*=\s*)true\b`, "${field}false",
		),
		RegexOperator(
			"status-flag-false-to-true", m.MutationStatus, "flip a boolean status field to true",
			`(?P<field>\.Status(?:\.\w+)+\s*=\s*)false\b`, "${field}true",
		),
	}
}
