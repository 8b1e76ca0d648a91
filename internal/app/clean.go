package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chriscorrea/stylo/internal/cleanup"
	"github.com/chriscorrea/stylo/internal/corpus"
	"github.com/chriscorrea/stylo/internal/metrics"
	"github.com/chriscorrea/stylo/internal/normalize"
)

// CleanConfig holds the options of the clean command.
type CleanConfig struct {
	Source           string
	TitleWords       []string // running-head words; derived from the title when empty
	StripBoilerplate bool
	Selector         string
	IncludeAll       bool
}

// DefaultTitleWords returns the content words of a title, used to recognize running
// heads: "The Sound and the Fury" gives [sound fury]. Titles with fewer than two
// content words give none, since a single word would match ordinary prose.
func DefaultTitleWords(title string) []string {
	var words []string
	for _, w := range metrics.FilterStopwords(normalize.Text(title)) {
		if !cleanup.IsPageNumber(w) {
			words = append(words, w)
		}
	}
	if len(words) < 2 {
		return nil
	}
	return words
}

// RunClean standardizes the lines of one source and writes the result to w.
func RunClean(ctx context.Context, cfg CleanConfig, w io.Writer) error {
	if cfg.Source == "" {
		return fmt.Errorf("no source provided")
	}
	doc, err := corpus.Load(ctx, cfg.Source, corpus.LoadOptions{Selector: cfg.Selector, IncludeAll: cfg.IncludeAll})
	if err != nil {
		return err
	}

	text := doc.Text
	if cfg.StripBoilerplate {
		text = cleanup.NewClassifier(metrics.DefaultStemmerLanguage).StripBoilerplate(text)
	}

	titleWords := cfg.TitleWords
	if len(titleWords) == 0 {
		titleWords = DefaultTitleWords(doc.Title)
	}

	lines := normalize.SplitLines(text)
	cleaned := cleanup.Standardize(lines, titleWords)
	slog.Debug("Standardized lines", "title", doc.Title, "titleWords", titleWords, "in", len(lines), "out", len(cleaned))

	bw := bufio.NewWriter(w)
	for _, line := range cleaned {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("failed to write cleaned text: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write cleaned text: %w", err)
	}
	return nil
}
