package metrics

import (
	"slices"
)

// TermCount pairs a token with its number of occurrences.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// FreqTable counts token occurrences and remembers the order in which each token was
// first seen, which MostFrequent uses to break ties.
type FreqTable struct {
	counts map[string]int
	order  []string
}

// NewFreqTable builds a frequency table from tokens.
func NewFreqTable(tokens []string) *FreqTable {
	ft := &FreqTable{counts: make(map[string]int)}
	for _, token := range tokens {
		ft.Add(token)
	}
	return ft
}

// Add records one occurrence of token.
func (ft *FreqTable) Add(token string) {
	if _, ok := ft.counts[token]; !ok {
		ft.order = append(ft.order, token)
	}
	ft.counts[token]++
}

// Count returns the occurrences of token, 0 if never seen.
func (ft *FreqTable) Count(token string) int {
	return ft.counts[token]
}

// Len returns the number of distinct tokens.
func (ft *FreqTable) Len() int {
	return len(ft.order)
}

// Terms returns distinct tokens in first-seen order.
func (ft *FreqTable) Terms() []string {
	return slices.Clone(ft.order)
}

// MostFrequent returns the n entries with the highest counts. Equal counts keep
// first-seen order. n <= 0 or n larger than the table returns every entry.
func MostFrequent(ft *FreqTable, n int) []TermCount {
	entries := make([]TermCount, 0, len(ft.order))
	for _, term := range ft.order {
		entries = append(entries, TermCount{Term: term, Count: ft.counts[term]})
	}

	slices.SortStableFunc(entries, func(a, b TermCount) int {
		return b.Count - a.Count
	})

	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
