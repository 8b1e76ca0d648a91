// Package section splits a document into labeled sections using whole-line delimiter
// markers such as chapter headings or narrator names ("DARL", "April Seventh, 1928.").
//
// Sections are keyed by label, not by contiguous run: a narrator who returns later in
// the book accumulates into the same bucket. Lines before the first delimiter belong to
// the implicit section labeled "".
//
// Usage Example:
//
//	delims, err := section.NewDelimiters([]string{"DARL", "CORA"})
//	sections := section.Segment(lines, delims)
//	for _, label := range sections.Labels() {
//		tokens := sections.Tokens(label)
//	}
package section

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/chriscorrea/stylo/internal/normalize"
)

// ImplicitLabel labels the text that precedes the first delimiter.
const ImplicitLabel = ""

// ErrMalformedDelimiters is returned for an empty or duplicated delimiter label.
var ErrMalformedDelimiters = errors.New("malformed delimiter configuration")

// Delimiters is a validated set of section labels with optional display aliases.
type Delimiters struct {
	labels  []string
	index   map[string]struct{}
	aliases map[string]string
}

// NewDelimiters validates labels. Labels are compared against trimmed lines, so they are
// trimmed here too; an empty label or a duplicate is a configuration error.
func NewDelimiters(labels []string) (*Delimiters, error) {
	d := &Delimiters{
		labels:  make([]string, 0, len(labels)),
		index:   make(map[string]struct{}, len(labels)),
		aliases: make(map[string]string),
	}
	for i, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("%w: delimiter %d is empty", ErrMalformedDelimiters, i+1)
		}
		if _, dup := d.index[label]; dup {
			return nil, fmt.Errorf("%w: duplicate delimiter %q", ErrMalformedDelimiters, label)
		}
		d.index[label] = struct{}{}
		d.labels = append(d.labels, label)
	}
	return d, nil
}

// SetAlias attaches a display name to a label, e.g. "April Seventh, 1928." -> "Benjy".
func (d *Delimiters) SetAlias(label, alias string) error {
	label = strings.TrimSpace(label)
	if _, ok := d.index[label]; !ok {
		return fmt.Errorf("%w: alias for unknown delimiter %q", ErrMalformedDelimiters, label)
	}
	d.aliases[label] = strings.TrimSpace(alias)
	return nil
}

// Display returns the alias for label if one is set, otherwise the label itself.
// The implicit section displays as "(preamble)". A nil Delimiters has no aliases.
func (d *Delimiters) Display(label string) string {
	if d != nil {
		if alias, ok := d.aliases[label]; ok && alias != "" {
			return alias
		}
	}
	if label == ImplicitLabel {
		return "(preamble)"
	}
	return label
}

// Labels returns the configured labels in configuration order.
func (d *Delimiters) Labels() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.labels)
}

// Len returns the number of configured labels.
func (d *Delimiters) Len() int {
	if d == nil {
		return 0
	}
	return len(d.labels)
}

// Match reports whether line, once trimmed, is exactly a delimiter, and returns it.
func (d *Delimiters) Match(line string) (string, bool) {
	if d == nil {
		return "", false
	}
	bare := strings.TrimSpace(line)
	_, ok := d.index[bare]
	return bare, ok
}

// Sections is an ordered map from label to tokens. Order is first discovery.
type Sections struct {
	order  []string
	tokens map[string][]string
}

// NewSections returns an empty Sections.
func NewSections() *Sections {
	return &Sections{tokens: make(map[string][]string)}
}

// Append adds tokens under label, creating the section on first use.
func (s *Sections) Append(label string, tokens ...string) {
	if _, ok := s.tokens[label]; !ok {
		s.order = append(s.order, label)
		s.tokens[label] = []string{}
	}
	s.tokens[label] = append(s.tokens[label], tokens...)
}

// Labels returns section labels in discovery order.
func (s *Sections) Labels() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.order)
}

// Tokens returns the tokens of a section, nil for an unknown label.
func (s *Sections) Tokens(label string) []string {
	if s == nil {
		return nil
	}
	return s.tokens[label]
}

// Has reports whether label names a section.
func (s *Sections) Has(label string) bool {
	_, ok := s.tokens[label]
	return ok
}

// Remove deletes the section labeled label, if present.
func (s *Sections) Remove(label string) {
	if _, ok := s.tokens[label]; !ok {
		return
	}
	delete(s.tokens, label)
	s.order = slices.DeleteFunc(s.order, func(l string) bool { return l == label })
}

// Len returns the number of sections.
func (s *Sections) Len() int {
	return len(s.order)
}

// Flatten concatenates every section's tokens in discovery order.
func (s *Sections) Flatten() []string {
	var all []string
	for _, label := range s.order {
		all = append(all, s.tokens[label]...)
	}
	return all
}

// Segment scans raw lines, switching the current section whenever a line is exactly a
// delimiter. Delimiter lines contribute no tokens. A nil Delimiters puts everything in
// the implicit section. The implicit section is only created once it receives tokens,
// so an empty document yields no sections at all.
func Segment(lines []string, d *Delimiters) *Sections {
	sections := NewSections()
	current := ImplicitLabel

	for _, line := range lines {
		if label, ok := d.Match(line); ok {
			current = label
			sections.Append(current)
			continue
		}
		tokens := normalize.Line(line)
		if len(tokens) == 0 {
			continue
		}
		sections.Append(current, tokens...)
	}

	slog.Debug("Document segmented", "lines", len(lines), "sections", sections.Len())
	return sections
}
