package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chriscorrea/stylo/internal/corpus"
	"github.com/chriscorrea/stylo/internal/gender"
	"github.com/chriscorrea/stylo/internal/normalize"
	"github.com/chriscorrea/stylo/internal/report"
)

// Word-list file names looked up in a lexicon directory.
const (
	FeminineMarkersFile  = "female-markers.txt"
	MasculineMarkersFile = "male-markers.txt"
	FeminineNamesFile    = "female-names.txt"
	MasculineNamesFile   = "male-names.txt"
)

// ResolveLexiconFiles fills each empty path in files with the matching word list from
// dir, when that file exists. An empty dir leaves files unchanged.
func ResolveLexiconFiles(dir string, files gender.LoadFiles) gender.LoadFiles {
	if dir == "" {
		return files
	}
	fill := func(path *string, name string) {
		if *path != "" {
			return
		}
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			slog.Debug("Using lexicon file", "path", candidate)
			*path = candidate
		}
	}
	fill(&files.FeminineMarkers, FeminineMarkersFile)
	fill(&files.MasculineMarkers, MasculineMarkersFile)
	fill(&files.FeminineNames, FeminineNamesFile)
	fill(&files.MasculineNames, MasculineNamesFile)
	return files
}

// AnalyzeGender runs both classifiers over one document.
func AnalyzeGender(doc *corpus.Document, lex *gender.Lexicon) (report.Gender, error) {
	tokens := normalize.Text(doc.Text)
	r, err := gender.Analyze(lex, tokens)
	if err != nil {
		return report.Gender{}, fmt.Errorf("failed to classify %q: %w", doc.Title, err)
	}
	return report.Gender{Title: doc.Title, Author: doc.Author, Report: r}, nil
}

// RunGender computes gender metrics for every source and writes them to w. The lexicon
// is built once and shared across documents.
func RunGender(ctx context.Context, cfg Config, w io.Writer) error {
	lex, err := gender.LoadLexicon(cfg.Lexicon)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}

	var results []report.Gender
	err = forEachDocument(ctx, cfg, "Classifying", func(doc *corpus.Document) error {
		g, err := AnalyzeGender(doc, lex)
		if err != nil {
			return err
		}
		results = append(results, g)
		return nil
	})
	if err != nil {
		return err
	}

	switch cfg.OutputFormat {
	case JSON:
		return report.WriteJSON(w, results)
	case Text:
		return report.WriteGenderText(w, results)
	default:
		return report.WriteCSV(w, report.GenderHeader, results)
	}
}
