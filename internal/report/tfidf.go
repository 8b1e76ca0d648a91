package report

import (
	"io"
	"strconv"
)

// TermHeader names the TF-IDF columns in output order.
var TermHeader = []string{"Title", "Section", "Rank", "Term", "Weight"}

// Term is one ranked term of one section.
type Term struct {
	Title   string  `json:"title"`
	Section string  `json:"section"`
	Rank    int     `json:"rank"`
	Term    string  `json:"term"`
	Weight  float64 `json:"weight"`
}

// Row renders t in TermHeader order.
func (t Term) Row() []string {
	return []string{t.Title, t.Section, strconv.Itoa(t.Rank), t.Term, formatFloat(t.Weight, 6)}
}

// WriteTermsText writes one block per title and section, with terms and weights in
// two left-aligned columns.
func WriteTermsText(w io.Writer, terms []Term) error {
	tw := &textWriter{w: w}
	for i, t := range terms {
		if i == 0 || terms[i-1].Title != t.Title || terms[i-1].Section != t.Section {
			if i > 0 {
				tw.printf("\n")
			}
			tw.heading(t.Title + ", " + t.Section)
			tw.printf("%-20s %s\n", "Term", "Weight")
		}
		tw.printf("%-20s %s\n", t.Term, formatFloat(t.Weight, 6))
	}
	return tw.err
}
