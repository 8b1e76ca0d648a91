package gender

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadWordList reads a newline-delimited list of words or names. Entries are
// lower-cased and trimmed; blank lines are skipped.
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// LoadWordList reads a word list from path. An empty path returns no words.
func LoadWordList(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %q: %w", path, err)
	}
	defer f.Close()

	words, err := ReadWordList(f)
	if err != nil {
		return nil, fmt.Errorf("word list %q: %w", path, err)
	}
	return words, nil
}

// LoadFiles holds optional word-list paths. Empty marker paths keep the defaults.
type LoadFiles struct {
	FeminineMarkers  string
	MasculineMarkers string
	FeminineNames    string
	MasculineNames   string
}

// LoadLexicon builds a lexicon from word-list files, falling back to the default
// markers where no marker file is given.
func LoadLexicon(files LoadFiles) (*Lexicon, error) {
	cfg := DefaultLexiconConfig()

	lists := []struct {
		path string
		dst  *[]string
	}{
		{files.FeminineMarkers, &cfg.FeminineMarkers},
		{files.MasculineMarkers, &cfg.MasculineMarkers},
		{files.FeminineNames, &cfg.FeminineNames},
		{files.MasculineNames, &cfg.MasculineNames},
	}
	for _, list := range lists {
		if list.path == "" {
			continue
		}
		words, err := LoadWordList(list.path)
		if err != nil {
			return nil, err
		}
		*list.dst = words
	}

	return NewLexicon(cfg)
}
