package domain

import (
	"strings"

	"gooze.dev/pkg/reconmut/internal/domain/mutagens"
	m "gooze.dev/pkg/reconmut/internal/model"
)

const ignoreDirective = "reconmut:ignore"

type ignoreRule struct {
	all   bool
	names map[m.MutationType]struct{}
}

func (r ignoreRule) ignores(mutationType m.MutationType) bool {
	if r.all {
		return true
	}

	_, ok := r.names[mutationType]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[m.MutationType]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective recognizes "reconmut:ignore" optionally followed by a
// comma-separated list of mutation types.
func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, ignoreDirective))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[m.MutationType]struct{}, len(parts))}

	for _, part := range parts {
		name := m.MutationType(strings.ToLower(strings.TrimSpace(part)))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

func (idx ignoreIndex) ignores(line int, mutationType m.MutationType) bool {
	if idx.file.ignores(mutationType) {
		return true
	}

	rule, ok := idx.line[line]

	return ok && rule.ignores(mutationType)
}

// buildIgnoreIndex collects directives from line comments. A directive that
// trails code covers its own line, one alone on a line covers the next line,
// and one above the package clause covers the whole file.
func buildIgnoreIndex(lines []string) ignoreIndex {
	idx := ignoreIndex{line: make(map[int]ignoreRule)}
	beforePackage := true

	var state mutagens.LineState

	for i, text := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(text)
		lineState := state
		state = state.Advance(text)

		if beforePackage && strings.HasPrefix(trimmed, "package ") {
			beforePackage = false
			continue
		}

		start := mutagens.CommentStart(text, lineState)
		if start < 0 {
			continue
		}

		rule, ok := parseIgnoreDirective(text[start:])
		if !ok {
			continue
		}

		switch {
		case beforePackage:
			mergeIgnoreRule(&idx.file, rule)
		case strings.TrimSpace(text[:start]) == "":
			current := idx.line[lineNo+1]
			mergeIgnoreRule(&current, rule)
			idx.line[lineNo+1] = current
		default:
			current := idx.line[lineNo]
			mergeIgnoreRule(&current, rule)
			idx.line[lineNo] = current
		}
	}

	return idx
}
