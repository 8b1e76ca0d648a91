package section

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadDelimiters parses a delimiter list: one label per line, optionally followed by
// "|" and a display alias. Blank lines and lines starting with "#" are ignored.
//
//	# As I Lay Dying
//	DARL
//	April Seventh, 1928.|Benjy
func ReadDelimiters(r io.Reader) (*Delimiters, error) {
	var labels []string
	aliases := map[string]string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		label, alias, hasAlias := strings.Cut(line, "|")
		label = strings.TrimSpace(label)
		labels = append(labels, label)
		if hasAlias {
			aliases[label] = alias
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read delimiters: %w", err)
	}

	d, err := NewDelimiters(labels)
	if err != nil {
		return nil, err
	}
	for label, alias := range aliases {
		if err := d.SetAlias(label, alias); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// LoadDelimiters reads a delimiter file from disk.
func LoadDelimiters(path string) (*Delimiters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open delimiter file %q: %w", path, err)
	}
	defer f.Close()

	d, err := ReadDelimiters(f)
	if err != nil {
		return nil, fmt.Errorf("delimiter file %q: %w", path, err)
	}
	return d, nil
}
