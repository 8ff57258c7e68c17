package adapter

import (
	"regexp"
	"strings"
	"sync"
)

var globCache sync.Map

// matchAnyGlob reports whether the slash-separated path matches one of the
// patterns. "**" spans directories, "*" and "?" stay within one segment.
func matchAnyGlob(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if globRegexp(pattern).MatchString(path) {
			return true
		}
	}

	return false
}

func globRegexp(pattern string) *regexp.Regexp {
	if cached, ok := globCache.Load(pattern); ok {
		return cached.(*regexp.Regexp)
	}

	var b strings.Builder

	b.WriteString("^")

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		switch {
		case c == '*' && strings.HasPrefix(pattern[i:], "**/"):
			b.WriteString("(?:.*/)?")
			i += 2
		case c == '*' && strings.HasPrefix(pattern[i:], "**"):
			b.WriteString(".*")
			i++
		case c == '*':
			b.WriteString("[^/]*")
		case c == '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString("$")

	re := regexp.MustCompile(b.String())
	globCache.Store(pattern, re)

	return re
}
