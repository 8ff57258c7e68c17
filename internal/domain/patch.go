package domain

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrLineOutOfRange is returned when a mutation points past the end of its file.
	ErrLineOutOfRange = errors.New("line out of range")
	// ErrStaleMutation is returned when the target line no longer holds the expected text.
	ErrStaleMutation = errors.New("line does not match the recorded text")
)

// patchLine replaces the content of the 1-based line in content with
// replacement. The original leading whitespace and line ending are kept. When
// expect is non-empty the current content (without indentation) must equal it.
func patchLine(content []byte, line int, expect, replacement string) ([]byte, error) {
	start, end, err := lineBounds(content, line)
	if err != nil {
		return nil, err
	}

	current := content[start:end]
	current = bytes.TrimSuffix(current, []byte("\r"))
	bodyStart := len(current) - len(bytes.TrimLeft(current, " \t"))
	indent := current[:bodyStart]
	body := current[bodyStart:]

	if expect != "" && string(body) != expect {
		return nil, fmt.Errorf("%w: line %d is %q, want %q", ErrStaleMutation, line, body, expect)
	}

	var out bytes.Buffer

	out.Grow(len(content) + len(replacement))
	out.Write(content[:start])
	out.Write(indent)
	out.WriteString(trimIndent(replacement))
	out.Write(content[start+len(current):])

	return out.Bytes(), nil
}

// lineBounds returns the byte range of a 1-based line, excluding its "\n".
func lineBounds(content []byte, line int) (int, int, error) {
	if line < 1 {
		return 0, 0, fmt.Errorf("%w: %d", ErrLineOutOfRange, line)
	}

	start := 0

	for current := 1; current < line; current++ {
		next := bytes.IndexByte(content[start:], '\n')
		if next < 0 {
			return 0, 0, fmt.Errorf("%w: %d", ErrLineOutOfRange, line)
		}

		start += next + 1
	}

	if start >= len(content) && line > 1 {
		return 0, 0, fmt.Errorf("%w: %d", ErrLineOutOfRange, line)
	}

	end := bytes.IndexByte(content[start:], '\n')
	if end < 0 {
		return start, len(content), nil
	}

	return start, start + end, nil
}

func trimIndent(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}

	return s
}
