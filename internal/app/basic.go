package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chriscorrea/stylo/internal/corpus"
	"github.com/chriscorrea/stylo/internal/metrics"
	"github.com/chriscorrea/stylo/internal/normalize"
	"github.com/chriscorrea/stylo/internal/report"
	"github.com/chriscorrea/stylo/internal/syntax"
)

// DefaultTopWords is the length of the most-frequent word list in basic results.
const DefaultTopWords = 20

// BasicOptions select the optional basic metrics.
type BasicOptions struct {
	PartOfSpeech bool
	Top          int
}

// AnalyzeBasic computes the lexical and sentence metrics of one document. Ratio
// metrics that are undefined for the document are left nil.
func AnalyzeBasic(doc *corpus.Document, opts BasicOptions) (report.Basic, error) {
	tokens := normalize.Text(doc.Text)
	lang := metrics.DetectLanguage(doc.Text)

	stems, err := metrics.Stem(tokens, lang.Stemmer)
	if err != nil {
		return report.Basic{}, fmt.Errorf("failed to stem %q: %w", doc.Title, err)
	}
	sentences, err := syntax.Sentences(doc.Text)
	if err != nil {
		return report.Basic{}, fmt.Errorf("failed to split sentences of %q: %w", doc.Title, err)
	}

	b := report.Basic{
		Title:                 doc.Title,
		Author:                doc.Author,
		Language:              lang.Name,
		WordCount:             metrics.WordCount(tokens),
		SentenceCount:         len(sentences),
		UniqueWords:           metrics.UniqueWords(tokens),
		UniqueStems:           metrics.UniqueWords(stems),
		AverageWordLength:     report.Optional(metrics.AverageWordLength(tokens)),
		AverageSentenceLength: report.Optional(metrics.AverageSentenceLength(tokens, sentences)),
		LexicalDiversity:      report.Optional(metrics.LexicalDiversity(tokens)),
		StemmedDiversity:      report.Optional(metrics.LexicalDiversity(stems)),
	}
	if longest, err := metrics.LongestSentenceLength(sentences); err == nil {
		b.LongestSentence = &longest
	}

	if opts.PartOfSpeech {
		pos, err := syntax.PartOfSpeechMetrics(doc.Text)
		if err != nil {
			return report.Basic{}, fmt.Errorf("failed to tag %q: %w", doc.Title, err)
		}
		b.PartOfSpeech = &pos
	}

	top := opts.Top
	if top <= 0 {
		top = DefaultTopWords
	}
	b.MostFrequent = metrics.MostFrequent(metrics.NewFreqTable(metrics.FilterStopwords(tokens)), top)

	slog.Debug("Basic metrics computed", "title", doc.Title, "words", b.WordCount, "sentences", b.SentenceCount)
	return b, nil
}

// RunBasic computes basic metrics for every source and writes them to w.
func RunBasic(ctx context.Context, cfg Config, w io.Writer) error {
	opts := BasicOptions{PartOfSpeech: cfg.PartOfSpeech, Top: cfg.Top}

	var results []report.Basic
	err := forEachDocument(ctx, cfg, "Measuring", func(doc *corpus.Document) error {
		b, err := AnalyzeBasic(doc, opts)
		if err != nil {
			return err
		}
		results = append(results, b)
		return nil
	})
	if err != nil {
		return err
	}

	switch cfg.OutputFormat {
	case JSON:
		return report.WriteJSON(w, results)
	case Text:
		return report.WriteBasicText(w, results)
	default:
		return report.WriteCSV(w, report.BasicHeader, results)
	}
}
