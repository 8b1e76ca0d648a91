package report

import (
	"io"
	"strconv"

	"github.com/chriscorrea/stylo/internal/metrics"
	"github.com/chriscorrea/stylo/internal/syntax"
)

// BasicHeader names the basic metric columns in output order.
var BasicHeader = []string{
	"Title", "Language", "Word count", "Sentence count", "Unique words", "Unique words (stemmed)",
	"Average word length", "Average sentence length", "Longest sentence length", "Lexical diversity",
	"Noun%", "Verb%", "Adjective%", "Adverb%", "Pronoun%",
}

// Basic holds the lexical and syntactic metrics of one text.
type Basic struct {
	Title                 string               `json:"title"`
	Author                string               `json:"author,omitempty"`
	Language              string               `json:"language"`
	WordCount             int                  `json:"word_count"`
	SentenceCount         int                  `json:"sentence_count"`
	UniqueWords           int                  `json:"unique_words"`
	UniqueStems           int                  `json:"unique_words_stemmed"`
	AverageWordLength     *float64             `json:"average_word_length"`
	AverageSentenceLength *float64             `json:"average_sentence_length"`
	LongestSentence       *int                 `json:"longest_sentence_length"`
	LexicalDiversity      *float64             `json:"lexical_diversity"`
	StemmedDiversity      *float64             `json:"lexical_diversity_stemmed"`
	PartOfSpeech          *syntax.PartOfSpeech `json:"part_of_speech,omitempty"`
	MostFrequent          []metrics.TermCount  `json:"most_frequent,omitempty"`
}

// Row renders b in BasicHeader order. Part-of-speech columns are N/A unless tagging ran.
func (b Basic) Row() []string {
	longest := NotAvailable
	if b.LongestSentence != nil {
		longest = strconv.Itoa(*b.LongestSentence)
	}

	row := []string{
		b.Title,
		b.Language,
		strconv.Itoa(b.WordCount),
		strconv.Itoa(b.SentenceCount),
		strconv.Itoa(b.UniqueWords),
		strconv.Itoa(b.UniqueStems),
		formatOptional(b.AverageWordLength, 3),
		formatOptional(b.AverageSentenceLength, 2),
		longest,
		formatOptional(b.LexicalDiversity, 6),
	}
	return append(row, posColumns(b.PartOfSpeech)...)
}

func posColumns(pos *syntax.PartOfSpeech) []string {
	if pos == nil {
		return []string{NotAvailable, NotAvailable, NotAvailable, NotAvailable, NotAvailable}
	}
	return []string{
		formatFloat(pos.Noun*100, 3),
		formatFloat(pos.Verb*100, 3),
		formatFloat(pos.Adjective*100, 3),
		formatFloat(pos.Adverb*100, 3),
		formatFloat(pos.Pronoun*100, 3),
	}
}

// WriteBasicText writes a titled listing of each result.
func WriteBasicText(w io.Writer, results []Basic) error {
	tw := &textWriter{w: w}
	for _, b := range results {
		row := b.Row()
		tw.heading(b.Title)
		tw.printf("Language: %s\n", b.Language)
		for i := 2; i <= 9; i++ {
			tw.printf("%s: %s\n", BasicHeader[i], row[i])
		}
		tw.printf("Lexical diversity (stemmed): %s\n", formatOptional(b.StemmedDiversity, 6))
		if b.PartOfSpeech != nil {
			tw.printf("Part of speech percentages:\n")
			for i := 10; i < len(BasicHeader); i++ {
				tw.printf("  %s: %s\n", BasicHeader[i], row[i])
			}
		}
		if len(b.MostFrequent) > 0 {
			tw.printf("Most frequent words (filtered):\n")
			for _, tc := range b.MostFrequent {
				tw.printf("  %s (%d)\n", tc.Term, tc.Count)
			}
		}
		tw.printf("\n")
	}
	return tw.err
}
