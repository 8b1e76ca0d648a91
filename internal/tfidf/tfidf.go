// Package tfidf provides section-scoped TF-IDF (Term Frequency-Inverse Document
// Frequency) weighting for a single segmented document.
//
// Each section of a document plays the role of a "document" in classical information
// retrieval. The corpus pre-calculates one frequency table per section plus, for every
// term, the number of sections in which it appears at all.
//
// The weighting combines:
//   - Term Frequency (TF): 1 + ln(count) within a section (sublinear, so very frequent
//     terms are dampened), or 0 for an absent term
//   - Inverse Document Frequency (IDF): ln(1 + sections / sections containing term);
//     a term present everywhere tends to ln(2), a term unique to one section scores highest
//
// Usage Example:
//
//	sections := section.Segment(lines, delimiters)
//	corpus := tfidf.NewCorpus(sections)
//	top, err := corpus.Rank("DARL", 30)
package tfidf

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/chriscorrea/stylo/internal/section"
)

// ErrUnknownSection is returned when ranking a label the document does not contain.
var ErrUnknownSection = errors.New("unknown section")

// TermWeight is a term with its TF-IDF weight in one section.
type TermWeight struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// Corpus holds the per-section frequency tables and the cross-section document
// frequencies for one document.
type Corpus struct {
	Labels         []string                  // section labels in discovery order
	TermCounts     map[string]map[string]int // raw count of each term per section
	DocFrequencies map[string]int            // number of sections containing each term
	Terms          []string                  // every distinct term in the document, sorted
	TotalSections  int                       // number of sections
}

// NewCorpus builds the frequency tables for a segmented document. A document with no
// sections is treated as a single empty implicit section.
//
// Construction is O(sections × distinct terms); ranking afterwards only reads the
// tables.
func NewCorpus(sections *section.Sections) *Corpus {
	labels := sections.Labels()
	if len(labels) == 0 {
		slog.Debug("Empty section collection provided; using one implicit section")
		labels = []string{section.ImplicitLabel}
	}

	corpus := &Corpus{
		Labels:         labels,
		TermCounts:     make(map[string]map[string]int, len(labels)),
		DocFrequencies: make(map[string]int),
		TotalSections:  len(labels),
	}

	// first pass: raw counts per section
	allTerms := make(map[string]struct{})
	for _, label := range labels {
		counts := make(map[string]int)
		for _, token := range sections.Tokens(label) {
			counts[token]++
			allTerms[token] = struct{}{}
		}
		corpus.TermCounts[label] = counts
	}

	// second pass: in how many sections does each term appear
	for term := range allTerms {
		for _, label := range labels {
			if corpus.TermCounts[label][term] > 0 {
				corpus.DocFrequencies[term]++
			}
		}
	}

	corpus.Terms = make([]string, 0, len(allTerms))
	for term := range allTerms {
		corpus.Terms = append(corpus.Terms, term)
	}
	slices.Sort(corpus.Terms)

	slog.Debug("TF-IDF corpus created", "sections", corpus.TotalSections, "terms", len(corpus.Terms))
	return corpus
}

// TF returns the sublinear term frequency of term in the section labeled label.
func (c *Corpus) TF(term, label string) float64 {
	count := c.TermCounts[label][term]
	if count == 0 {
		return 0.0
	}
	return 1.0 + math.Log(float64(count))
}

// IDF returns the inverse document frequency of term across sections.
func (c *Corpus) IDF(term string) float64 {
	docFreq := c.DocFrequencies[term]
	if docFreq == 0 {
		return 0.0
	}
	return math.Log(1.0 + float64(c.TotalSections)/float64(docFreq))
}

// TFIDF returns the combined weight of term in the section labeled label.
func (c *Corpus) TFIDF(term, label string) float64 {
	tf := c.TF(term, label)
	if tf == 0 {
		return 0.0 // absent terms score 0 whatever their idf
	}
	return tf * c.IDF(term)
}

// Rank scores every distinct term of the document in the given section and returns
// the n highest, ordered by weight descending and then by term ascending. n <= 0
// returns every term.
func (c *Corpus) Rank(label string, n int) ([]TermWeight, error) {
	if _, ok := c.TermCounts[label]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, label)
	}

	weights := make([]TermWeight, 0, len(c.Terms))
	for _, term := range c.Terms {
		weights = append(weights, TermWeight{Term: term, Weight: c.TFIDF(term, label)})
	}

	slices.SortFunc(weights, func(a, b TermWeight) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return strings.Compare(a.Term, b.Term)
		}
	})

	if n > 0 && n < len(weights) {
		weights = weights[:n]
	}

	slog.Debug("Section ranking completed", "section", label, "terms", len(c.Terms), "returned", len(weights))
	return weights, nil
}
