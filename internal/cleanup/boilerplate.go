package cleanup

import (
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

// boilerplateStems are stemmed words typical of distributor headers, licenses and
// transcriber notes.
var boilerplateStems = map[string]struct{}{
	// publishing
	"appendix":  {},
	"copyright": {},
	"edit":      {},
	"ebook":     {},
	"electron":  {},
	"gutenberg": {},
	"isbn":      {},
	"produc":    {},
	"project":   {},
	"publish":   {},
	"releas":    {},
	"transcrib": {},

	// licensing
	"agreem":    {},
	"distribut": {},
	"donat":     {},
	"licens":    {},
	"liabil":    {},
	"permiss":   {},
	"reproduc":  {},
	"reserv":    {},
	"right":     {},
	"term":      {},
	"trademark": {},
	"warranti":  {},

	// web
	"archiv":  {},
	"foundat": {},
	"http":    {},
	"https":   {},
	"org":     {},
	"updat":   {},
	"volunt":  {},
	"www":     {},
}

// Distributor markers that delimit the body of a Project Gutenberg text.
var (
	startMarker = regexp.MustCompile(`(?i)^\s*\*{3}\s*START OF (THE|THIS) PROJECT GUTENBERG`)
	endMarker   = regexp.MustCompile(`(?i)^\s*\*{3}\s*END OF (THE|THIS) PROJECT GUTENBERG`)

	blankLine = regexp.MustCompile(`\n[ \t]*\n`)
)

// minClassifiedTokens is the shortest paragraph the classifier will judge. Shorter
// paragraphs are usually headings and are always kept.
const minClassifiedTokens = 4

// Classifier scores paragraphs by their share of boilerplate stems against a threshold
// that is lowest at the edges of a document.
type Classifier struct {
	tokenRegex *regexp.Regexp
	language   string
}

// NewClassifier returns a classifier that stems with the given snowball language.
func NewClassifier(language string) *Classifier {
	if language == "" {
		language = "english"
	}
	return &Classifier{
		tokenRegex: regexp.MustCompile(`\b[a-zA-Z]+\b`),
		language:   language,
	}
}

// IsBoilerplate reports whether the paragraph at index of total looks like front or
// back matter. Paragraphs too short to judge are never boilerplate.
func (c *Classifier) IsBoilerplate(paragraph string, index, total int) bool {
	if total <= 0 || index < 0 || index >= total {
		return false
	}

	tokens := c.tokenRegex.FindAllString(strings.ToLower(paragraph), -1)
	if len(tokens) < minClassifiedTokens {
		return false
	}

	hits := 0
	for _, token := range tokens {
		stemmed, err := snowball.Stem(token, c.language, true)
		if err != nil {
			stemmed = token
		}
		if _, ok := boilerplateStems[stemmed]; ok {
			hits++
		}
	}

	return float64(hits)/float64(len(tokens)) > c.threshold(index, total)
}

// threshold rises linearly from 0.1 at either edge to 0.33 in the middle.
func (c *Classifier) threshold(index, total int) float64 {
	if total <= 3 {
		return 0.5
	}
	pos := float64(index) / float64(total-1)
	factor := 1.0 - math.Abs(2.0*pos-1.0)

	const lo, hi = 0.1, 0.33
	return lo + (hi-lo)*factor
}

// Paragraphs splits text on blank lines and drops empty paragraphs.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var paragraphs []string
	for _, p := range blankLine.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// StripBoilerplate removes distributor front and back matter from text.
//
// When Project Gutenberg START and END markers are present only the text between them
// is kept. The classifier then trims boilerplate paragraphs inward from both edges,
// stopping at the first judged paragraph that is not boilerplate, so the body of the
// novel is never touched.
func (c *Classifier) StripBoilerplate(text string) string {
	text = betweenMarkers(text)
	paragraphs := Paragraphs(text)
	total := len(paragraphs)
	drop := make([]bool, total)

	scan := func(i int) bool {
		p := paragraphs[i]
		if c.IsBoilerplate(p, i, total) {
			drop[i] = true
			return true
		}
		// short paragraphs neither end the scan nor get dropped
		return len(c.tokenRegex.FindAllString(p, -1)) < minClassifiedTokens
	}

	front := 0
	for front < total && scan(front) {
		front++
	}
	back := total - 1
	for back > front && scan(back) {
		back--
	}

	kept := make([]string, 0, total)
	for i, p := range paragraphs {
		if !drop[i] {
			kept = append(kept, p)
		}
	}

	slog.Debug("Stripped boilerplate", "paragraphs", total, "removed", total-len(kept))
	return strings.Join(kept, "\n\n")
}

func betweenMarkers(text string) string {
	lines := strings.Split(text, "\n")
	start, end := -1, len(lines)
	for i, line := range lines {
		if start < 0 && startMarker.MatchString(line) {
			start = i
		}
		if endMarker.MatchString(line) {
			end = i
			break
		}
	}
	if start >= end {
		start = -1
	}
	return strings.Join(lines[start+1:end], "\n")
}
