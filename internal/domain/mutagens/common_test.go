package mutagens

import (
	"testing"

	m "gooze.dev/pkg/reconmut/internal/model"
)

func TestTokenOperator_OperatorBoundaries(t *testing.T) {
	op := TokenOperator("less", m.MutationConditionals, "", "<", "<=")

	tests := []struct {
		name    string
		line    string
		want    string
		matched bool
	}{
		{"plain comparison", "if a < b {", "if a <= b {", true},
		{"no spaces", "if a<b {", "if a<=b {", true},
		{"channel receive", "v := <-ch", "", false},
		{"shift assign", "x <<= 2", "", false},
		{"already less-equal", "if a <= b {", "", false},
		{"inside string literal", `msg := "a < b"`, "", false},
		{"inside trailing comment", "x := 1 // a < b", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := op.Apply(tt.line)
			if ok != tt.matched {
				t.Fatalf("Apply(%q) matched = %v, want %v", tt.line, ok, tt.matched)
			}

			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestTokenOperator_IdentifierBoundaries(t *testing.T) {
	op := TokenOperator("policy-to-list", m.MutationAPICalls, "", "Policy", "PolicyList")

	if got, ok := op.Apply("list := &v1.PolicyList{}"); ok {
		t.Fatalf("expected no match inside PolicyList, got %q", got)
	}

	if got, ok := op.Apply("var ExternalPolicy string"); ok {
		t.Fatalf("expected no match inside ExternalPolicy, got %q", got)
	}

	got, ok := op.Apply("p := &v1.Policy{}")
	if !ok {
		t.Fatal("expected a match on the bare Policy token")
	}

	if got != "p := &v1.PolicyList{}" {
		t.Errorf("Apply() = %q", got)
	}
}

func TestTokenOperator_RewritesFirstOccurrenceOnly(t *testing.T) {
	op := TokenOperator("eq", m.MutationConditionals, "", "==", "!=")

	got, ok := op.Apply("if a == b && c == d {")
	if !ok {
		t.Fatal("expected a match")
	}

	if got != "if a != b && c == d {" {
		t.Errorf("Apply() = %q", got)
	}
}

func TestTokenOperator_ReplacementWithDollar(t *testing.T) {
	op := TokenOperator("dollar", m.MutationReturns, "", "price", "$price")

	got, ok := op.Apply("total := price")
	if !ok || got != "total := $price" {
		t.Errorf("Apply() = %q, %v", got, ok)
	}
}

func TestMaskLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		rawOpen     bool
		wantMasked  string
		wantComment int
	}{
		{"no literals", "a == b", false, "a == b", -1},
		{"string", `x := "a == b"`, false, `x := "______"`, -1},
		{"escaped quote", `x := "a\"b"`, false, `x := "____"`, -1},
		{"rune", `c := '='`, false, `c := '_'`, -1},
		{"raw string", "r := `==`", false, "r := `__`", -1},
		{"comment", "x := 1 // note", false, "x := 1 // note", 7},
		{"slashes in string", `u := "http://x" // c`, false, `u := "________" // c`, 16},
		{"block comment", "x /* y */", false, "x /* y */", 2},
		{"inside raw string", "if a == b {", true, "___________", -1},
		{"raw string closes", "a == b` + x // c", true, "______` + x // c", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			masked, comment := maskLine(tt.line, tt.rawOpen)
			if masked != tt.wantMasked {
				t.Errorf("masked = %q, want %q", masked, tt.wantMasked)
			}

			if comment != tt.wantComment {
				t.Errorf("comment = %d, want %d", comment, tt.wantComment)
			}

			if len(masked) != len(tt.line) {
				t.Errorf("masked length %d differs from line length %d", len(masked), len(tt.line))
			}
		})
	}
}

func TestLineState_Advance(t *testing.T) {
	tests := []struct {
		name  string
		start LineState
		line  string
		want  LineState
	}{
		{"plain code", LineState{}, "x := 1", LineState{}},
		{"raw string opens", LineState{}, "const tmpl = `", LineState{RawString: true}},
		{"raw string stays open", LineState{RawString: true}, "if a == b {", LineState{RawString: true}},
		{"raw string closes", LineState{RawString: true}, "`", LineState{}},
		{"backquote in string", LineState{}, "s := \"`\"", LineState{}},
		{"backquote in comment", LineState{}, "x := 1 // `", LineState{}},
		{"block comment opens", LineState{}, "x := 1 /* note", LineState{BlockComment: true}},
		{"backquote in block comment", LineState{BlockComment: true}, "see `x` */ y := `", LineState{RawString: true}},
		{"comment marker in raw string", LineState{RawString: true}, "/* not a comment", LineState{RawString: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.Advance(tt.line); got != tt.want {
				t.Errorf("Advance(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsCommentLine(t *testing.T) {
	if !IsCommentLine("   // r.Status().Update(ctx, obj)") {
		t.Error("expected line comment")
	}

	if !IsCommentLine("\t/* block */") {
		t.Error("expected block comment")
	}

	if IsCommentLine("x := 1 // trailing") {
		t.Error("code with trailing comment is not comment-only")
	}

	if IsCommentLine("*p = 3") {
		t.Error("pointer assignment is not a comment")
	}
}

func TestOperator_SkipAndNilPattern(t *testing.T) {
	op := RegexOperator("zero", m.MutationRequeue, "", `\bRequeueAfter:\s*\w+`, "RequeueAfter: 0").
		WithSkip(`\bRequeueAfter:\s*0\b`)

	if _, ok := op.Apply("RequeueAfter: 0,"); ok {
		t.Error("expected skip pattern to suppress the operator")
	}

	if _, ok := (Operator{Name: "empty"}).Apply("anything"); ok {
		t.Error("operator without pattern must not match")
	}
}

func TestOperator_AsCall(t *testing.T) {
	op := RegexOperator("drop", m.MutationAPICalls, "", `(?P<recv>\w)\.Delete\(`, "${recv}.Noop(").AsCall()

	tests := []struct {
		name    string
		line    string
		want    string
		matched bool
	}{
		{"simple", "r.Delete(ctx, obj)", "r.Noop(", true},
		{"nested", "f(r.Delete(ctx, g(obj)), x)", "f(r.Noop(, x)", true},
		{"paren in literal", `r.Delete(ctx, ")(")`, "r.Noop(", true},
		{"open across lines", "r.Delete(ctx,", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := op.Apply(tt.line)
			if ok != tt.matched {
				t.Fatalf("Apply(%q) matched = %v, want %v", tt.line, ok, tt.matched)
			}

			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestOperator_WithTail(t *testing.T) {
	op := RegexOperator("drop", m.MutationStatus, "", `^(?P<indent>\s*)r\.Save\(`, "${indent}_ = nil").
		AsCall().WithTail(`^\s*(?://.*)?$`)

	if got, ok := op.Apply("\tr.Save(obj) // keep"); !ok || got != "\t_ = nil // keep" {
		t.Errorf("Apply() = %q, %v", got, ok)
	}

	if _, ok := op.Apply("\tr.Save(obj).Err()"); ok {
		t.Error("tail must reject a call that continues")
	}
}
