package gender

import (
	"encoding/json"
	"strconv"

	"github.com/chriscorrea/stylo/internal/metrics"
)

// Stats are the raw counts of gendered identifiers in a text.
type Stats struct {
	FeminineMarkers  int `json:"feminine_markers"`
	MasculineMarkers int `json:"masculine_markers"`
	FeminineNames    int `json:"feminine_names"`
	MasculineNames   int `json:"masculine_names"`
}

// Statistics counts marker and name tokens. Each token falls in at most one bucket.
func Statistics(lex *Lexicon, tokens []string) Stats {
	var stats Stats
	for _, token := range tokens {
		g, kind := lex.Classify(token)
		switch {
		case g == Feminine && kind == Marker:
			stats.FeminineMarkers++
		case g == Masculine && kind == Marker:
			stats.MasculineMarkers++
		case g == Feminine && kind == Name:
			stats.FeminineNames++
		case g == Masculine && kind == Name:
			stats.MasculineNames++
		}
	}
	return stats
}

// Ratio is a float that may be undefined because its denominator was zero.
type Ratio struct {
	Value float64
	Valid bool
}

// Defined returns a valid ratio.
func Defined(v float64) Ratio {
	return Ratio{Value: v, Valid: true}
}

// Divide returns num/den, undefined when den is zero.
func Divide(num, den float64) Ratio {
	if den == 0 {
		return Ratio{}
	}
	return Defined(num / den)
}

// String formats the ratio with three decimals, or "N/A" when undefined.
func (r Ratio) String() string {
	if !r.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(r.Value, 'f', 3, 64)
}

// MarshalJSON encodes an undefined ratio as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// Err returns metrics.ErrDivisionUndefined for an undefined ratio, nil otherwise.
func (r Ratio) Err() error {
	if !r.Valid {
		return metrics.ErrDivisionUndefined
	}
	return nil
}

// Ratios are the seven derived metrics. Fields are undefined where the table of
// failure modes says so (e.g. MarkerRatio with no masculine markers).
type Ratios struct {
	MarkerRatio           Ratio `json:"ftm_marker_ratio"`
	NameRatio             Ratio `json:"ftm_name_ratio"`
	FeminineNameToMarker  Ratio `json:"fem_name_to_marker_ratio"`
	MasculineNameToMarker Ratio `json:"masc_name_to_marker_ratio"`
	FeminineScore         Ratio `json:"fem_weighted_score"`
	MasculineScore        Ratio `json:"masc_weighted_score"`
	Weighted              Ratio `json:"ftm_weighted_ratio"`
}

// ComputeRatios derives the ratio metrics from raw counts and the naive shares.
//
// The weighted scores give equal weight to how often a gender's identifiers occur
// among all gendered identifiers and to how much text the naive classifier attributes
// to that gender.
func ComputeRatios(stats Stats, naive Shares, namesEnabled bool) Ratios {
	fm := float64(stats.FeminineMarkers)
	mm := float64(stats.MasculineMarkers)
	fn := float64(stats.FeminineNames)
	mn := float64(stats.MasculineNames)

	r := Ratios{
		MarkerRatio:           Divide(fm, mm),
		FeminineNameToMarker:  Divide(fn, fm),
		MasculineNameToMarker: Divide(mn, mm),
	}

	if namesEnabled {
		r.NameRatio = Divide(fn, mn)
	} else {
		r.NameRatio = Defined(0)
	}

	identifiers := fm + fn + mm + mn
	coverage := naive.Feminine + naive.Masculine
	if identifiers != 0 && coverage != 0 {
		r.FeminineScore = Defined(0.5*(fm+fn)/identifiers + 0.5*naive.Feminine/coverage)
		r.MasculineScore = Defined(0.5*(mm+mn)/identifiers + 0.5*naive.Masculine/coverage)
	}

	if r.FeminineScore.Valid && r.MasculineScore.Valid {
		r.Weighted = Divide(r.FeminineScore.Value, r.MasculineScore.Value)
	}
	return r
}

// Report bundles every gender metric for one text.
type Report struct {
	Naive  Shares `json:"naive"`
	Strict Shares `json:"strict"`
	Stats  Stats  `json:"stats"`
	Ratios Ratios `json:"ratios"`
}

// Analyze runs both classifiers, counts identifiers and derives the ratios. An empty
// token sequence returns metrics.ErrDivisionUndefined.
func Analyze(lex *Lexicon, tokens []string) (Report, error) {
	naive, err := ClassifyNaive(lex, tokens)
	if err != nil {
		return Report{}, err
	}
	strict, err := ClassifyStrict(lex, tokens)
	if err != nil {
		return Report{}, err
	}
	stats := Statistics(lex, tokens)

	return Report{
		Naive:  naive,
		Strict: strict,
		Stats:  stats,
		Ratios: ComputeRatios(stats, naive, lex.NamesEnabled()),
	}, nil
}
