// Package mutagens holds the operator catalog: the rules that rewrite a single
// line of controller source into a mutated variant.
package mutagens

import (
	"regexp"
	"strings"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// operatorBytes are the characters that form Go operator tokens. A symbolic
// token only matches when it is not glued to another of these characters, so
// "<" never fires inside "<-", "<<" or "<=".
const operatorBytes = `=!<>&|+\-*/%^:`

const maskByte = '_'

// Operator is a named, stateless rewrite rule for one line of source.
type Operator struct {
	Name        string
	Type        m.MutationType
	Description string
	// Pattern is matched against the line with literal contents masked.
	Pattern *regexp.Regexp
	// Replacement is a regexp.Expand template applied to the first match.
	Replacement string
	// Skip suppresses the operator on lines that are already in the mutated state.
	Skip *regexp.Regexp
	// Requires names an import path the file must import for the mutant to compile.
	Requires string
	// Balanced extends the match to the parenthesis that closes the call it
	// leaves open, so a call nested in another is replaced whole.
	Balanced bool
	// Tail, when set, must match the masked text after the replaced span.
	Tail *regexp.Regexp
}

// Apply rewrites the first match of the operator in line. It reports false when
// the operator does not match or the rewrite would leave the line unchanged.
func (op Operator) Apply(line string) (string, bool) {
	masked, comment := maskLine(line, false)
	if op.Type == m.MutationConditionals {
		masked = maskComment(masked, comment)
	}

	return op.apply(line, masked)
}

func (op Operator) apply(line, masked string) (string, bool) {
	if op.Pattern == nil {
		return "", false
	}

	if op.Skip != nil && op.Skip.MatchString(masked) {
		return "", false
	}

	loc := op.Pattern.FindStringSubmatchIndex(masked)
	if loc == nil {
		return "", false
	}

	end := loc[1]
	if op.Balanced {
		var ok bool
		if end, ok = closeParens(masked, loc[0], loc[1]); !ok {
			return "", false
		}
	}

	if op.Tail != nil && !op.Tail.MatchString(masked[end:]) {
		return "", false
	}

	var b strings.Builder

	b.WriteString(line[:loc[0]])
	b.Write(op.Pattern.ExpandString(nil, op.Replacement, line, loc))
	b.WriteString(line[end:])

	mutated := b.String()
	if mutated == line {
		return "", false
	}

	return mutated, true
}

// TokenPattern builds a boundary-anchored expression for a literal token.
// Identifier edges are anchored with \b; operator edges capture the neighbouring
// byte into the "pre"/"post" groups so the replacement can re-emit it.
func TokenPattern(token string) string {
	if token == "" {
		return ""
	}

	head := `(?P<pre>)`
	tail := `(?P<post>)`

	switch first := token[0]; {
	case isWordByte(first):
		head += `\b`
	case isOperatorByte(first):
		head = `(?P<pre>^|[^` + operatorBytes + `])`
	}

	switch last := token[len(token)-1]; {
	case isWordByte(last):
		tail = `\b` + tail
	case isOperatorByte(last):
		tail = `(?P<post>$|[^` + operatorBytes + `])`
	}

	return head + regexp.QuoteMeta(token) + tail
}

// TokenOperator builds an operator that replaces one literal token with another.
func TokenOperator(name string, mutationType m.MutationType, description, from, to string) Operator {
	return Operator{
		Name:        name,
		Type:        mutationType,
		Description: description,
		Pattern:     regexp.MustCompile(TokenPattern(from)),
		Replacement: "${pre}" + escapeTemplate(to) + "${post}",
	}
}

// RegexOperator builds an operator from a raw pattern and Expand template.
func RegexOperator(name string, mutationType m.MutationType, description, pattern, replacement string) Operator {
	return Operator{
		Name:        name,
		Type:        mutationType,
		Description: description,
		Pattern:     regexp.MustCompile(pattern),
		Replacement: replacement,
	}
}

// WithSkip returns a copy of op that ignores lines matching pattern.
func (op Operator) WithSkip(pattern string) Operator {
	op.Skip = regexp.MustCompile(pattern)
	return op
}

// WithRequires returns a copy of op that only applies to files importing path.
func (op Operator) WithRequires(importPath string) Operator {
	op.Requires = importPath
	return op
}

// AsCall returns a copy of op whose match runs to the balanced closing
// parenthesis of the call it opens.
func (op Operator) AsCall() Operator {
	op.Balanced = true
	return op
}

// WithTail returns a copy of op that only applies when the text after the
// replaced span matches pattern.
func (op Operator) WithTail(pattern string) Operator {
	op.Tail = regexp.MustCompile(pattern)
	return op
}

// closeParens returns the offset just past the parenthesis that closes the
// innermost call left open in masked[start:end]. A match with nothing left
// open keeps its end. It reports false when the call does not close on this
// line.
func closeParens(masked string, start, end int) (int, bool) {
	depth := 0

	for i := start; i < end; i++ {
		switch masked[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
	}

	if depth <= 0 {
		return end, true
	}

	depth = 1

	for i := end; i < len(masked); i++ {
		switch masked[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}

	return 0, false
}

func escapeTemplate(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isOperatorByte(b byte) bool {
	return strings.IndexByte(`=!<>&|+-*/%^:`, b) >= 0
}

// LineState is the lexer state carried from one source line to the next.
type LineState struct {
	// BlockComment is set while a /* comment is open.
	BlockComment bool
	// RawString is set while a backquoted string literal is open.
	RawString bool
}

// Advance returns the state after line.
//
//nolint:cyclop // byte-level lexer
func (s LineState) Advance(line string) LineState {
	var quote byte
	if s.RawString {
		quote = '`'
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case s.BlockComment:
			if c == '*' && i+1 < len(line) && line[i+1] == '/' {
				s.BlockComment = false
				i++
			}
		case quote != 0:
			switch {
			case c == quote:
				quote = 0
			case c == '\\' && quote != '`':
				i++
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return LineState{}
		case c == '/' && i+1 < len(line) && line[i+1] == '*':
			s.BlockComment = true
			i++
		}
	}

	s.RawString = quote == '`'

	return s
}

// maskLine replaces the contents of string, rune and raw string literals with a
// placeholder byte, keeping byte offsets intact. rawOpen marks a line that
// starts inside a backquoted literal. It also returns the offset of a trailing
// "//" or "/*" comment, or -1.
//
//nolint:cyclop // byte-level lexer
func maskLine(line string, rawOpen bool) (string, int) {
	buf := []byte(line)
	comment := -1

	var quote byte
	if rawOpen {
		quote = '`'
	}

	for i := 0; i < len(buf); i++ {
		c := buf[i]

		if quote != 0 {
			switch {
			case c == quote:
				quote = 0
			case c == '\\' && quote != '`':
				buf[i] = maskByte
				if i+1 < len(buf) {
					i++
					buf[i] = maskByte
				}
			default:
				buf[i] = maskByte
			}

			continue
		}

		switch c {
		case '"', '\'', '`':
			quote = c
		case '/':
			if i+1 < len(buf) && (buf[i+1] == '/' || buf[i+1] == '*') {
				comment = i
				return string(buf), comment
			}
		}
	}

	return string(buf), comment
}

func maskComment(masked string, comment int) string {
	if comment < 0 {
		return masked
	}

	return masked[:comment] + strings.Repeat(string(maskByte), len(masked)-comment)
}

// IsCommentLine reports whether a line holds nothing but a line comment.
func IsCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)

	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*")
}

// CommentStart returns the byte offset of the first comment opener outside a
// literal, or -1. Lines inside a block comment report -1.
func CommentStart(line string, state LineState) int {
	if state.BlockComment {
		return -1
	}

	_, comment := maskLine(line, state.RawString)

	return comment
}
