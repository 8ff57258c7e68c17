package mutagens

import m "gooze.dev/pkg/reconmut/internal/model"

// requeueDelay matches a field value up to the next "," or "}", allowing one
// level of parenthesised arguments.
const requeueDelay = `(?:[^,}()\s]|\([^()]*\))(?:[^,}()]|\([^()]*\))*`

// RequeueOperators returns the retry-scheduling operators.
func RequeueOperators() []Operator {
	return []Operator{
		RegexOperator(
			"requeue-disabled", m.MutationRequeue, "turn an explicit requeue off",
			`\bRequeue:\s*true\b`, "Requeue: false",
		),
		RegexOperator(
			"requeue-after-zeroed", m.MutationRequeue, "drop the requeue delay",
			`\b(?P<key>RequeueAfter:\s*)`+requeueDelay, "${key}0",
		).WithSkip(`\bRequeueAfter:\s*0\s*(?:[,}]|$)`),
		RegexOperator(
			"requeue-forced", m.MutationRequeue, "requeue a result that finished",
			`\b(?P<pkg>ctrl|reconcile)\.Result\{\}`, "${pkg}.Result{Requeue: true}",
		),
	}
}
