// Package report renders analysis results as CSV, JSON or a human-readable text
// listing. Undefined metrics render as "N/A" in CSV and text and as null in JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NotAvailable is written in place of an undefined value.
const NotAvailable = "N/A"

// Rower is a result that can be written as one CSV row.
type Rower interface {
	Row() []string
}

// WriteCSV writes header followed by one row per item.
func WriteCSV[T Rower](w io.Writer, header []string, items []T) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, item := range items {
		if err := cw.Write(item.Row()); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Heading writes title followed by a colon and a dashed underline one longer than the
// title.
func Heading(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "%s:\n%s\n", title, strings.Repeat("-", len([]rune(title))+1))
	return err
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// formatOptional formats v with prec decimals, or N/A when v is nil.
func formatOptional(v *float64, prec int) string {
	if v == nil {
		return NotAvailable
	}
	return formatFloat(*v, prec)
}

// Optional returns a pointer to v, or nil when err is non-nil.
func Optional(v float64, err error) *float64 {
	if err != nil {
		return nil
	}
	return &v
}

// textWriter accumulates the first write error so listings read straight through.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) heading(title string) {
	if t.err != nil {
		return
	}
	t.err = Heading(t.w, title)
}
