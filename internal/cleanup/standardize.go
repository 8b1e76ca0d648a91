// Package cleanup prepares raw novel transcriptions for analysis. It removes
// running heads and page numbers left by scanning, collapses blank lines, and strips
// the front and back matter that e-text distributors wrap around a novel.
package cleanup

import (
	"strings"
	"unicode"
)

// Standardize drops lines that are page numbers or running heads and collapses runs
// of blank lines to one. A running head is a line containing every word in titleWords,
// compared case-insensitively; with no title words no line is treated as a head.
// Dropped lines do not interrupt a blank run.
func Standardize(lines []string, titleWords []string) []string {
	words := make([]string, 0, len(titleWords))
	for _, w := range titleWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			words = append(words, w)
		}
	}

	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		if IsPageNumber(line) || isRunningHead(line, words) {
			continue
		}
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			continue
		}
		prevBlank = blank
		out = append(out, line)
	}
	return out
}

// IsPageNumber reports whether line holds only a number.
func IsPageNumber(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isRunningHead(line string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	lower := strings.ToLower(line)
	for _, w := range words {
		if !strings.Contains(lower, w) {
			return false
		}
	}
	return true
}

// ParseTitleWords splits a comma or space separated title word list.
func ParseTitleWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
