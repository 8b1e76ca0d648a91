package report

import (
	"io"
	"strconv"

	"github.com/chriscorrea/stylo/internal/gender"
)

// GenderHeader names the gender metric columns in output order.
var GenderHeader = []string{
	"Title", "Fem%", "Masc%", "Fem% (strict)", "Masc% (strict)",
	"Female marker words", "Male marker words", "Female names", "Male names",
	"FtM marker ratio", "FtM name ratio", "Fem NtM ratio", "Masc NtM ratio",
	"Fem weighted score", "Masc weighted score", "FtM weighted ratio",
}

// Gender holds the gender attribution metrics of one text.
type Gender struct {
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	gender.Report
}

// Row renders g in GenderHeader order.
func (g Gender) Row() []string {
	r := g.Ratios
	return []string{
		g.Title,
		formatFloat(g.Naive.Feminine, 2),
		formatFloat(g.Naive.Masculine, 2),
		formatFloat(g.Strict.Feminine, 2),
		formatFloat(g.Strict.Masculine, 2),
		strconv.Itoa(g.Stats.FeminineMarkers),
		strconv.Itoa(g.Stats.MasculineMarkers),
		strconv.Itoa(g.Stats.FeminineNames),
		strconv.Itoa(g.Stats.MasculineNames),
		r.MarkerRatio.String(),
		r.NameRatio.String(),
		r.FeminineNameToMarker.String(),
		r.MasculineNameToMarker.String(),
		r.FeminineScore.String(),
		r.MasculineScore.String(),
		r.Weighted.String(),
	}
}

// WriteGenderText writes a titled listing of each result, grouped like the columns.
func WriteGenderText(w io.Writer, results []Gender) error {
	tw := &textWriter{w: w}
	for _, g := range results {
		row := g.Row()
		tw.heading(g.Title)
		for i := 1; i < len(GenderHeader); i++ {
			tw.printf("%s: %s\n", GenderHeader[i], row[i])
			// blank line after each group of columns
			if i == 2 || i == 4 || i == 8 {
				tw.printf("\n")
			}
		}
		tw.printf("\n")
	}
	return tw.err
}
