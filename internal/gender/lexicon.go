// Package gender estimates how much of a text is "under the influence" of feminine or
// masculine-coded language.
//
// A Lexicon maps marker words (pronouns, titles, kinship terms) and optional character
// names to a gender. Two finite-state classifiers walk the token stream:
//
//   - the naive classifier carries the most recent gender forward and attributes every
//     token to it, so its shares always partition 100%
//   - the strict classifier credits only the tokens strictly between two markers of the
//     same gender, so its shares never exceed the naive ones
//
// Raw marker and name counts, and seven ratios derived from them, complete the picture.
//
// Usage Example:
//
//	lex, err := gender.NewLexicon(gender.DefaultLexiconConfig())
//	report, err := gender.Analyze(lex, tokens)
//	fmt.Println(report.Naive.Feminine, report.Ratios.Weighted)
package gender

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/chriscorrea/stylo/internal/normalize"
)

// ErrLexiconConflict is returned when one token is listed under both genders.
var ErrLexiconConflict = errors.New("lexicon conflict")

// Gender is the class of a token or the state of a classifier.
type Gender int

const (
	Neutral Gender = iota
	Feminine
	Masculine
)

// String returns the short name of the gender.
func (g Gender) String() string {
	switch g {
	case Feminine:
		return "fem"
	case Masculine:
		return "masc"
	default:
		return "neut"
	}
}

// Kind distinguishes closed-vocabulary markers from character names.
type Kind int

const (
	None Kind = iota
	Marker
	Name
)

type entry struct {
	gender Gender
	kind   Kind
}

// DefaultFeminineMarkers are the feminine cue words used when none are configured.
var DefaultFeminineMarkers = []string{
	"she", "her", "hers", "herself", "mrs", "ms", "miss", "mme", "madame", "woman", "girl",
	"lady", "queen", "princess", "female", "feminine", "mother", "daughter", "wife", "aunt",
	"auntie", "belle", "granny", "mom",
}

// DefaultMasculineMarkers are the masculine cue words used when none are configured.
var DefaultMasculineMarkers = []string{
	"he", "him", "his", "himself", "mr", "man", "reverend", "boy", "gentleman", "king",
	"prince", "male", "masculine", "captain", "colonel", "father", "son", "husband", "uncle",
	"dad",
}

// LexiconConfig lists the words that make up a Lexicon. Name lists are optional; when
// they contribute no name entry the name lexicon is disabled.
type LexiconConfig struct {
	FeminineMarkers  []string
	MasculineMarkers []string
	FeminineNames    []string
	MasculineNames   []string
}

// DefaultLexiconConfig returns the default marker lists with names disabled.
func DefaultLexiconConfig() LexiconConfig {
	return LexiconConfig{
		FeminineMarkers:  DefaultFeminineMarkers,
		MasculineMarkers: DefaultMasculineMarkers,
	}
}

// Lexicon maps each known token to exactly one gender and kind. It is read-only once
// built and safe to share across documents.
type Lexicon struct {
	entries      map[string]entry
	namesEnabled bool
}

// NewLexicon builds a lexicon from cfg. Words are normalized like tokens. A word
// listed under both genders is rejected with ErrLexiconConflict; a word that is both a
// marker and a name of the same gender is kept as a marker.
func NewLexicon(cfg LexiconConfig) (*Lexicon, error) {
	lex := &Lexicon{entries: make(map[string]entry)}

	// markers first so they take precedence over same-gender names
	groups := []struct {
		words []string
		entry entry
	}{
		{cfg.FeminineMarkers, entry{Feminine, Marker}},
		{cfg.MasculineMarkers, entry{Masculine, Marker}},
		{cfg.FeminineNames, entry{Feminine, Name}},
		{cfg.MasculineNames, entry{Masculine, Name}},
	}
	for _, group := range groups {
		for _, word := range group.words {
			if err := lex.add(word, group.entry); err != nil {
				return nil, err
			}
		}
	}

	slog.Debug("Lexicon built", "entries", len(lex.entries), "namesEnabled", lex.namesEnabled)
	return lex, nil
}

func (l *Lexicon) add(word string, e entry) error {
	word = normalize.Word(word)
	if word == "" {
		return nil
	}
	existing, ok := l.entries[word]
	if !ok {
		l.entries[word] = e
		if e.kind == Name {
			l.namesEnabled = true
		}
		return nil
	}
	if existing.gender != e.gender {
		return fmt.Errorf("%w: %q is listed as both %s and %s", ErrLexiconConflict, word, existing.gender, e.gender)
	}
	return nil
}

// Classify returns the gender and kind of token, or (Neutral, None) if unknown.
func (l *Lexicon) Classify(token string) (Gender, Kind) {
	e, ok := l.entries[token]
	if !ok {
		return Neutral, None
	}
	return e.gender, e.kind
}

// Gender returns the gender of token, Neutral if it is not in the lexicon.
func (l *Lexicon) Gender(token string) Gender {
	g, _ := l.Classify(token)
	return g
}

// NamesEnabled reports whether character names were configured.
func (l *Lexicon) NamesEnabled() bool {
	return l.namesEnabled
}

// Len returns the number of distinct words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}
