// Package metrics computes lexical statistics over a normalized token sequence.
//
// Every function here is pure. Ratio metrics need a non-empty denominator and report
// ErrDivisionUndefined otherwise, so callers can render "N/A" instead of a misleading
// zero.
//
// Usage Example:
//
//	tokens := normalize.Text(text)
//	diversity, err := metrics.LexicalDiversity(tokens)
//	if errors.Is(err, metrics.ErrDivisionUndefined) {
//		// empty document
//	}
package metrics

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrDivisionUndefined is returned when a ratio's denominator is zero.
var ErrDivisionUndefined = errors.New("division undefined: zero denominator")

// WordCount returns the number of tokens.
func WordCount(tokens []string) int {
	return len(tokens)
}

// UniqueWords returns the number of distinct tokens.
func UniqueWords(tokens []string) int {
	seen := make(map[string]struct{}, len(tokens)/4)
	for _, token := range tokens {
		seen[token] = struct{}{}
	}
	return len(seen)
}

// LexicalDiversity returns distinct tokens divided by total tokens.
func LexicalDiversity(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, ErrDivisionUndefined
	}
	return float64(UniqueWords(tokens)) / float64(len(tokens)), nil
}

// AverageWordLength returns the mean token length in characters.
func AverageWordLength(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, ErrDivisionUndefined
	}
	total := 0
	for _, token := range tokens {
		total += utf8.RuneCountInString(token)
	}
	return float64(total) / float64(len(tokens)), nil
}

// AverageSentenceLength returns tokens per sentence. Sentences come from a separate
// segmenter (see package syntax), so the token count and sentence count are independent.
func AverageSentenceLength(tokens []string, sentences []string) (float64, error) {
	if len(sentences) == 0 {
		return 0, ErrDivisionUndefined
	}
	return float64(len(tokens)) / float64(len(sentences)), nil
}

// LongestSentenceLength returns the whitespace word count of the longest sentence.
func LongestSentenceLength(sentences []string) (int, error) {
	if len(sentences) == 0 {
		return 0, ErrDivisionUndefined
	}
	longest := 0
	for _, sentence := range sentences {
		if n := len(strings.Fields(sentence)); n > longest {
			longest = n
		}
	}
	return longest, nil
}
