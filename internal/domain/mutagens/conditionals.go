package mutagens

import m "gooze.dev/pkg/reconmut/internal/model"

// ConditionalOperators returns the conditional-boundary operators. Every
// matching operator yields its own candidate.
func ConditionalOperators() []Operator {
	return []Operator{
		TokenOperator("equal-to-not-equal", m.MutationConditionals, "replace == with !=", "==", "!="),
		TokenOperator("not-equal-to-equal", m.MutationConditionals, "replace != with ==", "!=", "=="),
		TokenOperator("less-equal-to-less", m.MutationConditionals, "replace <= with <", "<=", "<"),
		TokenOperator("greater-equal-to-greater", m.MutationConditionals, "replace >= with >", ">=", ">"),
		TokenOperator("less-to-less-equal", m.MutationConditionals, "replace < with <=", "<", "<="),
		TokenOperator("greater-to-greater-equal", m.MutationConditionals, "replace > with >=", ">", ">="),
		TokenOperator("and-to-or", m.MutationConditionals, "replace && with ||", "&&", "||"),
		TokenOperator("or-to-and", m.MutationConditionals, "replace || with &&", "||", "&&"),
		RegexOperator(
			"negation-removed", m.MutationConditionals, "drop the negation of an if condition",
			`\b(?P<head>if\s+)!(?P<operand>[A-Za-z_(])`, "${head}${operand}",
		),
	}
}
