// Package app contains the core application logic for the stylo CLI tool.
// It wires corpus loading, analysis and reporting together, separate from CLI concerns.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chriscorrea/stylo/internal/cleanup"
	"github.com/chriscorrea/stylo/internal/corpus"
	"github.com/chriscorrea/stylo/internal/gender"
	"github.com/chriscorrea/stylo/internal/metrics"
	"github.com/chriscorrea/stylo/internal/spinner"
)

// OutputFormat defines the output format for results
type OutputFormat int

const (
	// CSV output format (default)
	CSV OutputFormat = iota
	// JSON output format
	JSON
	// human-readable listing
	Text
)

// String returns the string representation of the output format
func (f OutputFormat) String() string {
	switch f {
	case CSV:
		return "CSV"
	case JSON:
		return "JSON"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// ParseOutputFormat maps a --format value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "text", "txt":
		return Text, nil
	default:
		return CSV, fmt.Errorf("unknown output format %q (want csv, json or text)", s)
	}
}

// ErrNoResults is returned when every source failed or was empty.
var ErrNoResults = errors.New("no results from any source")

// Config holds all configuration options for the stylo application.
type Config struct {
	Sources          []string // files, directories, URLs, or "-" for stdin
	Selector         string   // CSS selector for HTML sources
	IncludeAll       bool     // skip readability extraction for HTML sources
	StripBoilerplate bool     // remove distributor front and back matter
	OutputFormat     OutputFormat
	Quiet            bool // suppress progress and warnings
	Debug            bool

	// basic
	PartOfSpeech bool // run the part-of-speech tagger
	Top          int  // most frequent words per text, or ranked terms per section

	// gender
	Lexicon gender.LoadFiles

	// tfidf
	DelimiterFile string   // file of section delimiter lines
	Delimiters    []string // delimiter lines given on the command line
	SkipPreamble  bool     // leave text before the first delimiter out of the weighting
}

// loadOptions returns the corpus options implied by cfg.
func (cfg Config) loadOptions() corpus.LoadOptions {
	return corpus.LoadOptions{Selector: cfg.Selector, IncludeAll: cfg.IncludeAll}
}

// forEachDocument loads every source in turn and hands it to fn. A source that fails
// to load or analyze is reported and skipped. It returns ErrNoResults when no source
// succeeded.
func forEachDocument(ctx context.Context, cfg Config, verb string, fn func(doc *corpus.Document) error) error {
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources provided")
	}
	sources, err := corpus.Expand(cfg.Sources)
	if err != nil {
		return err
	}

	var sp *spinner.Spinner
	if !cfg.Quiet && spinner.Enabled(os.Stderr) {
		sp = spinner.New(ctx, os.Stderr, verb, len(sources))
		sp.Start()
		defer sp.Stop()
	}

	var classifier *cleanup.Classifier
	if cfg.StripBoilerplate {
		classifier = cleanup.NewClassifier(metrics.DefaultStemmerLanguage)
	}

	succeeded := 0
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := corpus.Load(ctx, source, cfg.loadOptions())
		if err != nil {
			warn(cfg, source, err)
			continue
		}
		if sp != nil {
			sp.Step(doc.Title)
		}
		if classifier != nil {
			doc.Text = classifier.StripBoilerplate(doc.Text)
		}

		if err := fn(doc); err != nil {
			warn(cfg, source, err)
			continue
		}
		succeeded++
	}

	slog.Debug("Corpus processed", "sources", len(sources), "succeeded", succeeded)
	if succeeded == 0 {
		return ErrNoResults
	}
	return nil
}

func warn(cfg Config, source string, err error) {
	if cfg.Quiet {
		slog.Debug("Skipping source", "source", source, "error", err)
		return
	}
	slog.Warn("Skipping source", "source", source, "error", err)
}
