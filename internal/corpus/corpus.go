// Package corpus enumerates and loads the texts to analyze. A source is a local file,
// a directory of texts, an http(s) URL, or "-" for standard input. HTML and Markdown
// sources are reduced to plain text before analysis.
package corpus

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/chriscorrea/stylo/internal/extract"
	"github.com/chriscorrea/stylo/internal/normalize"
	"github.com/yuin/goldmark"
)

// StdinSource names standard input.
const StdinSource = "-"

// Extensions are the file types picked up when a source is a directory.
var Extensions = []string{".txt", ".html", ".htm", ".md", ".markdown"}

// Document is one loaded text.
type Document struct {
	Source string
	Author string
	Title  string
	Text   string
}

// Lines splits the document text into lines.
func (d *Document) Lines() []string {
	return normalize.SplitLines(d.Text)
}

// LoadOptions control HTML extraction.
type LoadOptions struct {
	Selector   string
	IncludeAll bool
}

// Expand replaces each directory source with the texts it contains, sorted by name.
// Other sources are passed through unchanged; a missing file surfaces when it is loaded.
func Expand(sources []string) ([]string, error) {
	var expanded []string
	for _, source := range sources {
		if source == StdinSource || IsURL(source) {
			expanded = append(expanded, source)
			continue
		}

		info, err := os.Stat(source)
		if err != nil || !info.IsDir() {
			expanded = append(expanded, source)
			continue
		}

		entries, err := os.ReadDir(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %q: %w", source, err)
		}
		found := 0
		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") || !hasTextExtension(entry.Name()) {
				continue
			}
			expanded = append(expanded, filepath.Join(source, entry.Name()))
			found++
		}
		slog.Debug("Expanded directory", "dir", source, "files", found)
	}
	return expanded, nil
}

func hasTextExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load reads one source into a Document.
func Load(ctx context.Context, source string, opts LoadOptions) (*Document, error) {
	reader, err := Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", source, err)
	}

	doc := &Document{Source: source}
	name := sourceName(source)
	doc.Author, doc.Title = TitleFromFilename(name)

	extractOpts := extract.Options{Selector: opts.Selector, IncludeAll: opts.IncludeAll}
	switch {
	case isMarkdown(name):
		var rendered bytes.Buffer
		if err := goldmark.Convert(raw, &rendered); err != nil {
			return nil, fmt.Errorf("failed to render markdown %q: %w", source, err)
		}
		raw = rendered.Bytes()
		// rendered markdown is all content, readability would only drop parts of it
		extractOpts.IncludeAll = true
	case !isHTML(name, raw):
		doc.Text = string(raw)
		return doc, nil
	}

	if IsURL(source) {
		extractOpts.BaseURL, _ = url.Parse(source)
	}
	page, err := extract.PlainText(bytes.NewReader(raw), extractOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %q: %w", source, err)
	}
	doc.Text = page.Text
	if page.Title != "" && (IsURL(source) || source == StdinSource) {
		doc.Title = page.Title
	}
	slog.Debug("Loaded markup document", "source", source, "title", doc.Title, "chars", len(doc.Text))
	return doc, nil
}

// sourceName is the file name used to derive a title.
func sourceName(source string) string {
	switch {
	case source == StdinSource:
		return "stdin"
	case IsURL(source):
		u, err := url.Parse(source)
		if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
			return source
		}
		return path.Base(u.Path)
	default:
		return filepath.Base(source)
	}
}

func isHTML(name string, raw []byte) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	case ".txt":
		return false
	}
	return strings.HasPrefix(http.DetectContentType(raw), "text/html")
}

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
