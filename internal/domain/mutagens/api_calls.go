package mutagens

import m "gooze.dev/pkg/reconmut/internal/model"

const objectArg = `\s*ctx\s*,\s*[^,()]+`

// APICallOperators returns the external-call-shape operators.
func APICallOperators() []Operator {
	return []Operator{
		RegexOperator(
			"create-to-update", m.MutationAPICalls, "update an object that should be created",
			`(?P<recv>\w)\.Create\((?P<args>\s*ctx\b)`, "${recv}.Update(${args}",
		),
		RegexOperator(
			"update-to-create", m.MutationAPICalls, "create an object that should be updated",
			`(?P<recv>\w)\.Update\((?P<args>\s*ctx\b)`, "${recv}.Create(${args}",
		),
		RegexOperator(
			"patch-to-update", m.MutationAPICalls, "replace a patch with a full update",
			`(?P<recv>\w)\.Patch\((?P<args>`+objectArg+`)[,)]`, "${recv}.Update(${args})",
		).AsCall(),
		RegexOperator(
			"delete-to-update", m.MutationAPICalls, "update an object that should be deleted",
			`(?P<recv>\w)\.Delete\((?P<args>`+objectArg+`)[,)]`, "${recv}.Update(${args})",
		).AsCall(),
		RegexOperator(
			"get-to-list", m.MutationAPICalls, "list objects instead of fetching one",
			`(?P<recv>\w)\.Get\((?P<args>\s*ctx\s*,)`, "${recv}.List(${args}",
		),
		RegexOperator(
			"list-to-get", m.MutationAPICalls, "fetch one object instead of listing",
			`(?P<recv>\w)\.List\((?P<args>\s*ctx\s*,)`, "${recv}.Get(${args}",
		),
	}
}
