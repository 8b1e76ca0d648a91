package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chriscorrea/stylo/internal/corpus"
	"github.com/chriscorrea/stylo/internal/report"
	"github.com/chriscorrea/stylo/internal/section"
	"github.com/chriscorrea/stylo/internal/tfidf"
)

// DefaultTopTerms is the number of ranked terms reported per section.
const DefaultTopTerms = 30

// LoadDelimiters builds the delimiter set from a delimiter file and command-line
// labels. File entries come first. With neither, the result is nil and every document
// is a single implicit section.
func LoadDelimiters(path string, labels []string) (*section.Delimiters, error) {
	var all []string
	aliases := map[string]string{}

	if path != "" {
		fromFile, err := section.LoadDelimiters(path)
		if err != nil {
			return nil, err
		}
		for _, label := range fromFile.Labels() {
			all = append(all, label)
			if display := fromFile.Display(label); display != label {
				aliases[label] = display
			}
		}
	}
	all = append(all, labels...)
	if len(all) == 0 {
		return nil, nil
	}

	d, err := section.NewDelimiters(all)
	if err != nil {
		return nil, err
	}
	for label, alias := range aliases {
		if err := d.SetAlias(label, alias); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// TFIDFOptions select how sections are ranked.
type TFIDFOptions struct {
	Top int
	// SkipPreamble leaves out the text before the first delimiter, so it neither
	// counts as a section nor gets ranked. Ignored without delimiters.
	SkipPreamble bool
}

// AnalyzeTFIDF segments one document and ranks the top terms of each section that
// holds tokens, in document order.
func AnalyzeTFIDF(doc *corpus.Document, d *section.Delimiters, opts TFIDFOptions) ([]report.Term, error) {
	sections := section.Segment(doc.Lines(), d)
	if opts.SkipPreamble && d.Len() > 0 {
		sections.Remove(section.ImplicitLabel)
	}
	if sections.Len() == 0 {
		return nil, fmt.Errorf("no tokens in %q", doc.Title)
	}
	top := opts.Top
	if top <= 0 {
		top = DefaultTopTerms
	}

	c := tfidf.NewCorpus(sections)
	var terms []report.Term
	for _, label := range sections.Labels() {
		ranked, err := c.Rank(label, top)
		if err != nil {
			return nil, err
		}
		for i, tw := range ranked {
			terms = append(terms, report.Term{
				Title:   doc.Title,
				Section: d.Display(label),
				Rank:    i + 1,
				Term:    tw.Term,
				Weight:  tw.Weight,
			})
		}
	}

	slog.Debug("TF-IDF ranked", "title", doc.Title, "sections", sections.Len(), "terms", len(terms))
	return terms, nil
}

// RunTFIDF ranks section terms for every source and writes them to w.
func RunTFIDF(ctx context.Context, cfg Config, w io.Writer) error {
	d, err := LoadDelimiters(cfg.DelimiterFile, cfg.Delimiters)
	if err != nil {
		return fmt.Errorf("failed to load delimiters: %w", err)
	}

	opts := TFIDFOptions{Top: cfg.Top, SkipPreamble: cfg.SkipPreamble}

	var results []report.Term
	err = forEachDocument(ctx, cfg, "Weighing", func(doc *corpus.Document) error {
		terms, err := AnalyzeTFIDF(doc, d, opts)
		if err != nil {
			return err
		}
		results = append(results, terms...)
		return nil
	})
	if err != nil {
		return err
	}

	switch cfg.OutputFormat {
	case JSON:
		return report.WriteJSON(w, results)
	case Text:
		return report.WriteTermsText(w, results)
	default:
		return report.WriteCSV(w, report.TermHeader, results)
	}
}
