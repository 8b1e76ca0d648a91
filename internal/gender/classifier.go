package gender

import (
	"log/slog"

	"github.com/chriscorrea/stylo/internal/metrics"
)

// NaiveState is the state of the naive classifier: the gender of the most recent
// marker or name, masculine before any has been seen.
type NaiveState struct {
	Current Gender
}

// NewNaiveState returns the initial naive state.
func NewNaiveState() NaiveState {
	return NaiveState{Current: Masculine}
}

// Next moves to the gender of a gendered token and keeps the current gender otherwise.
func (s NaiveState) Next(class Gender) NaiveState {
	if class == Neutral {
		return s
	}
	return NaiveState{Current: class}
}

// StrictState is the state of the strict classifier: the last confirmed gender and
// the number of unconfirmed tokens seen since it.
type StrictState struct {
	Confirmed Gender
	Since     int
}

// Credit is a run of tokens attributed to a gender by one strict transition.
type Credit struct {
	Gender Gender
	Words  int
}

// Next consumes one token's class. A gendered token that repeats the confirmed gender
// closes the run and credits its tokens to that gender; the marker tokens themselves
// are never credited. Any gendered token restarts the run; a neutral token extends it.
func (s StrictState) Next(class Gender) (StrictState, Credit) {
	if class == Neutral {
		return StrictState{Confirmed: s.Confirmed, Since: s.Since + 1}, Credit{}
	}
	var credit Credit
	if class == s.Confirmed {
		credit = Credit{Gender: class, Words: s.Since}
	}
	return StrictState{Confirmed: class}, credit
}

// Tally counts attributed tokens.
type Tally struct {
	Feminine  int
	Masculine int
	Total     int
}

func (t *Tally) add(g Gender, n int) {
	switch g {
	case Feminine:
		t.Feminine += n
	case Masculine:
		t.Masculine += n
	}
}

// Shares converts the tally into percentages of the total token count.
func (t Tally) Shares() (Shares, error) {
	if t.Total == 0 {
		return Shares{}, metrics.ErrDivisionUndefined
	}
	total := float64(t.Total)
	return Shares{
		Feminine:  float64(t.Feminine) / total * 100,
		Masculine: float64(t.Masculine) / total * 100,
	}, nil
}

// Shares is a pair of percentages (0-100) of a text's tokens.
type Shares struct {
	Feminine  float64 `json:"feminine"`
	Masculine float64 `json:"masculine"`
}

// TallyNaive runs the naive classifier over tokens.
func TallyNaive(lex *Lexicon, tokens []string) Tally {
	state := NewNaiveState()
	tally := Tally{Total: len(tokens)}
	for _, token := range tokens {
		state = state.Next(lex.Gender(token))
		tally.add(state.Current, 1)
	}
	return tally
}

// TallyStrict runs the strict classifier over tokens. A run still open when the tokens
// end is never credited.
func TallyStrict(lex *Lexicon, tokens []string) Tally {
	var state StrictState
	var credit Credit
	tally := Tally{Total: len(tokens)}
	for _, token := range tokens {
		state, credit = state.Next(lex.Gender(token))
		tally.add(credit.Gender, credit.Words)
	}
	return tally
}

// ClassifyNaive returns the naive feminine and masculine shares. They always sum to
// 100. An empty token sequence returns metrics.ErrDivisionUndefined.
func ClassifyNaive(lex *Lexicon, tokens []string) (Shares, error) {
	tally := TallyNaive(lex, tokens)
	slog.Debug("Naive classification", "tokens", tally.Total, "feminine", tally.Feminine, "masculine", tally.Masculine)
	return tally.Shares()
}

// ClassifyStrict returns the strict feminine and masculine shares. Spans not bounded by
// same-gender markers are uncredited, so the shares may sum to less than 100.
func ClassifyStrict(lex *Lexicon, tokens []string) (Shares, error) {
	tally := TallyStrict(lex, tokens)
	slog.Debug("Strict classification", "tokens", tally.Total, "feminine", tally.Feminine, "masculine", tally.Masculine)
	return tally.Shares()
}
