// Package syntax wraps prose for the sentence- and tag-level enrichment metrics:
// sentence segmentation and part-of-speech percentages.
//
// Neither analysis has design content of its own; both defer to prose's segmenter and
// averaged-perceptron tagger and only aggregate what they return.
package syntax

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Sentences splits text into sentences using prose's punkt-based segmenter.
func Sentences(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to segment sentences: %w", err)
	}

	sentences := make([]string, 0, len(doc.Sentences()))
	for _, s := range doc.Sentences() {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}

	slog.Debug("Sentences segmented", "textLength", len(text), "sentences", len(sentences))
	return sentences, nil
}

// PartOfSpeech holds the share of word tokens in each universal tag class, as
// fractions between 0 and 1.
type PartOfSpeech struct {
	Noun      float64 `json:"noun"`
	Verb      float64 `json:"verb"`
	Adjective float64 `json:"adjective"`
	Adverb    float64 `json:"adverb"`
	Pronoun   float64 `json:"pronoun"`
	Words     int     `json:"words"` // tagged word tokens (punctuation excluded)
}

// TagClass is a coarse, universal part-of-speech class.
type TagClass int

const (
	Other TagClass = iota
	Noun
	Verb
	Adjective
	Adverb
	Pronoun
)

// String returns the universal tag name of the class.
func (c TagClass) String() string {
	switch c {
	case Noun:
		return "NOUN"
	case Verb:
		return "VERB"
	case Adjective:
		return "ADJ"
	case Adverb:
		return "ADV"
	case Pronoun:
		return "PRON"
	default:
		return "X"
	}
}

// ClassifyTag maps a Penn Treebank tag onto its universal class.
func ClassifyTag(tag string) TagClass {
	switch {
	case strings.HasPrefix(tag, "NN"):
		return Noun
	case strings.HasPrefix(tag, "VB"), tag == "MD":
		return Verb
	case strings.HasPrefix(tag, "JJ"):
		return Adjective
	case strings.HasPrefix(tag, "RB"), tag == "WRB":
		return Adverb
	case tag == "PRP", tag == "PRP$", tag == "WP", tag == "WP$":
		return Pronoun
	default:
		return Other
	}
}

// PartOfSpeechMetrics tags text and reports the share of word tokens per class.
// Tokens without a letter or digit (punctuation) are not counted. Text with no word
// tokens yields a zero value.
func PartOfSpeechMetrics(text string) (PartOfSpeech, error) {
	var pos PartOfSpeech
	if strings.TrimSpace(text) == "" {
		return pos, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return pos, fmt.Errorf("failed to tag text: %w", err)
	}

	counts := make(map[TagClass]int)
	for _, tok := range doc.Tokens() {
		if !isWord(tok.Text) {
			continue
		}
		pos.Words++
		counts[ClassifyTag(tok.Tag)]++
	}
	if pos.Words == 0 {
		return pos, nil
	}

	total := float64(pos.Words)
	pos.Noun = float64(counts[Noun]) / total
	pos.Verb = float64(counts[Verb]) / total
	pos.Adjective = float64(counts[Adjective]) / total
	pos.Adverb = float64(counts[Adverb]) / total
	pos.Pronoun = float64(counts[Pronoun]) / total

	slog.Debug("Part-of-speech tagging completed", "words", pos.Words, "nouns", counts[Noun], "verbs", counts[Verb])
	return pos, nil
}

func isWord(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') || r > 0x7f
	}) >= 0
}
