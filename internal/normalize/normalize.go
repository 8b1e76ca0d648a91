// Package normalize turns raw document text into the token sequence shared by every
// metric in stylo.
//
// A token is a lower-cased word made only of letters and digits. Raw words are produced
// by whitespace splitting; every other rune (punctuation, symbols, marks) is removed
// rather than replaced, so "don't" becomes "dont" and "--" disappears entirely.
//
// Usage Example:
//
//	tokens := normalize.Lines([]string{"He said, \"Don't.\""})
//	// []string{"he", "said", "dont"}
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Lines normalizes a sequence of raw lines into tokens, preserving order.
func Lines(lines []string) []string {
	tokens := make([]string, 0, len(lines)*8)
	for _, line := range lines {
		tokens = appendLine(tokens, line)
	}
	return tokens
}

// Line normalizes a single raw line.
func Line(line string) []string {
	return appendLine(nil, line)
}

// Text splits text into lines and normalizes them.
func Text(text string) []string {
	return Lines(SplitLines(text))
}

// SplitLines splits text on newlines, dropping a trailing carriage return from each line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Word reduces a single raw word to its token form. The result may be empty.
func Word(raw string) string {
	// compose first so that "e" + combining acute survives as one letter
	raw = norm.NFC.String(raw)

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func appendLine(tokens []string, line string) []string {
	for _, raw := range strings.Fields(line) {
		if token := Word(raw); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
