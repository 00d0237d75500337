package utils

import (
	"strings"
	"unicode"
)

// Dedent removes the common leading whitespace shared by every non-blank
// line of text. It is used by tests to write readable, indented
// multi-line SQL fixtures inline.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	minIndent := -1
	for _, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if len(trimmed) == 0 {
			continue
		}
		leading := len(line) - len(trimmed)
		if minIndent == -1 || leading < minIndent {
			minIndent = leading
		}
	}

	if minIndent <= 0 {
		return text
	}

	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		}
	}
	return strings.Join(lines, "\n")
}
