package metrics

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
	"github.com/kljensen/snowball"
)

// DefaultStemmerLanguage is used when detection is inconclusive or unsupported.
const DefaultStemmerLanguage = "english"

// detectSampleBytes bounds how much text language detection looks at; a novel's
// opening chapters are plenty.
const detectSampleBytes = 16 * 1024

// stemmerLanguages maps detected languages to the snowball stemmers that exist for them.
var stemmerLanguages = map[whatlanggo.Lang]string{
	whatlanggo.Eng: "english",
	whatlanggo.Spa: "spanish",
	whatlanggo.Fra: "french",
	whatlanggo.Rus: "russian",
	whatlanggo.Swe: "swedish",
	whatlanggo.Nob: "norwegian",
	whatlanggo.Hun: "hungarian",
}

// Language describes the detected language of a document.
type Language struct {
	Name     string  // human-readable name, e.g. "English"
	Code     string  // ISO 639-1 code, e.g. "en"
	Stemmer  string  // snowball stemmer language
	Reliable bool    // whether the detector was confident
	Score    float64 // detector confidence (0.0-1.0)
}

// DetectLanguage guesses the language of text and picks a matching stemmer, falling
// back to English when the detector is unsure or no stemmer exists.
func DetectLanguage(text string) Language {
	sample := text
	if len(sample) > detectSampleBytes {
		sample = sample[:detectSampleBytes]
		// don't cut a rune in half
		for len(sample) > 0 && !utf8.ValidString(sample) {
			sample = sample[:len(sample)-1]
		}
	}

	info := whatlanggo.Detect(sample)
	lang := Language{
		Name:     info.Lang.String(),
		Code:     info.Lang.Iso6391(),
		Stemmer:  DefaultStemmerLanguage,
		Reliable: info.IsReliable(),
		Score:    info.Confidence,
	}
	if stemmer, ok := stemmerLanguages[info.Lang]; ok && lang.Reliable {
		lang.Stemmer = stemmer
	}

	slog.Debug("Language detected", "language", lang.Name, "confidence", lang.Score, "stemmer", lang.Stemmer)
	return lang
}

// Stem reduces each token to its snowball stem in the given language. Tokens the
// stemmer rejects are kept as-is.
func Stem(tokens []string, language string) ([]string, error) {
	if language == "" {
		language = DefaultStemmerLanguage
	}
	// fail early on an unsupported language rather than once per token
	if _, err := snowball.Stem("test", language, true); err != nil {
		return nil, fmt.Errorf("unsupported stemmer language %q: %w", language, err)
	}

	stemmed := make([]string, len(tokens))
	for i, token := range tokens {
		s, err := snowball.Stem(token, language, true)
		if err != nil || s == "" {
			s = token
		}
		stemmed[i] = s
	}
	return stemmed, nil
}
