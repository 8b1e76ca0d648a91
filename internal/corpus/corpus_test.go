package corpus

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		wantAuthor string
		wantTitle  string
	}{
		{"dime novel", "dime_novel_042.txt", "Dime Novel", "#042"},
		{"author prefix", "Hemingway_1926-01_The_Sun_Also_Rises.txt", "Hemingway", "The Sun Also Rises"},
		{"year prefix", "1929-02_The_Sound_and_the_Fury.txt", "Faulkner", "The Sound and the Fury"},
		{"apostrophe override", "1926-01_Soldiers_Pay.txt", "Faulkner", "Soldiers' Pay"},
		{"comma override", "1942-01_Go_Down_Moses.txt", "Faulkner", "Go Down, Moses"},
		{"directory is ignored", "corpus/novels/1930-01_As_I_Lay_Dying.txt", "Faulkner", "As I Lay Dying"},
		{"html extension", "Woolf_1927-01_To_the_Lighthouse.html", "Woolf", "To the Lighthouse"},
		{"no pattern", "field_notes.txt", "", "field notes"},
		{"stdin", "stdin", "", "stdin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			author, title := TitleFromFilename(tt.file)
			if author != tt.wantAuthor || title != tt.wantTitle {
				t.Errorf("TitleFromFilename(%q) = (%q, %q), want (%q, %q)", tt.file, author, title, tt.wantAuthor, tt.wantTitle)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", p, err)
	}
	return p
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1930-01_As_I_Lay_Dying.txt", "x")
	writeFile(t, dir, "1929-02_The_Sound_and_the_Fury.txt", "x")
	writeFile(t, dir, "Woolf_1927-01_To_the_Lighthouse.HTML", "x")
	writeFile(t, dir, "notes.docx", "x")
	writeFile(t, dir, "chapter.md", "x")
	writeFile(t, dir, ".hidden.txt", "x")
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	got, err := Expand([]string{"-", dir, "https://example.com/book.txt", "missing.txt"})
	if err != nil {
		t.Fatalf("Expand() unexpected error: %v", err)
	}

	want := []string{
		"-",
		filepath.Join(dir, "1929-02_The_Sound_and_the_Fury.txt"),
		filepath.Join(dir, "1930-01_As_I_Lay_Dying.txt"),
		filepath.Join(dir, "Woolf_1927-01_To_the_Lighthouse.HTML"),
		filepath.Join(dir, "chapter.md"),
		"https://example.com/book.txt",
		"missing.txt",
	}
	if len(got) != len(want) {
		t.Fatalf("Expand() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expand()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "1929-02_The_Sound_and_the_Fury.txt", "APRIL SEVENTH, 1928.\r\nThrough the fence.\r\n")
	html := writeFile(t, dir, "Woolf_1927-01_To_the_Lighthouse.html",
		`<html><head><title>Lighthouse</title></head><body><div id="book"><h2>THE WINDOW</h2><p>Yes, of course, if it's fine tomorrow.</p></div></body></html>`)

	t.Run("plain text", func(t *testing.T) {
		doc, err := Load(context.Background(), txt, LoadOptions{})
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if doc.Author != "Faulkner" || doc.Title != "The Sound and the Fury" {
			t.Errorf("Load() author/title = %q/%q", doc.Author, doc.Title)
		}
		lines := doc.Lines()
		if len(lines) < 2 || lines[0] != "APRIL SEVENTH, 1928." || lines[1] != "Through the fence." {
			t.Errorf("Lines() = %q", lines)
		}
	})

	t.Run("html with selector", func(t *testing.T) {
		doc, err := Load(context.Background(), html, LoadOptions{Selector: "#book"})
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if doc.Title != "To the Lighthouse" {
			t.Errorf("Load() title = %q, want file-derived title", doc.Title)
		}
		if doc.Text != "THE WINDOW\n\nYes, of course, if it's fine tomorrow." {
			t.Errorf("Load() text = %q", doc.Text)
		}
	})

	t.Run("markdown", func(t *testing.T) {
		md := writeFile(t, dir, "1930-01_As_I_Lay_Dying.md", "# DARL\n\nJewel and I come up from the *field*.\n")
		doc, err := Load(context.Background(), md, LoadOptions{})
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if doc.Title != "As I Lay Dying" {
			t.Errorf("Load() title = %q", doc.Title)
		}
		if doc.Text != "DARL\n\nJewel and I come up from the field." {
			t.Errorf("Load() text = %q", doc.Text)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(dir, "nope.txt"), LoadOptions{})
		if err == nil || !strings.Contains(err.Error(), "does not exist") {
			t.Errorf("Load() error = %v, want does not exist", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		if _, err := Load(context.Background(), dir, LoadOptions{}); err == nil {
			t.Error("Load() expected error for a directory")
		}
	})
}

func TestLoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/novel.txt":
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("It was a pleasure to burn."))
		case "/page":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<!DOCTYPE html><html><head><title>Chapter One</title></head><body><main><p>Call me Ishmael.</p></main></body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	tests := []struct {
		name        string
		path        string
		opts        LoadOptions
		expectError bool
		wantTitle   string
		wantText    string
	}{
		{"plain text", "/novel.txt", LoadOptions{}, false, "novel", "It was a pleasure to burn."},
		{"sniffed html", "/page", LoadOptions{Selector: "main"}, false, "Chapter One", "Call me Ishmael."},
		{"not found", "/missing", LoadOptions{}, true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(context.Background(), server.URL+tt.path, tt.opts)
			if tt.expectError {
				if err == nil {
					t.Errorf("Load() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if doc.Title != tt.wantTitle || doc.Text != tt.wantText {
				t.Errorf("Load() = (%q, %q), want (%q, %q)", doc.Title, doc.Text, tt.wantTitle, tt.wantText)
			}
		})
	}
}

func TestOpenSourceTypes(t *testing.T) {
	reader, err := Open(context.Background(), StdinSource)
	if err != nil {
		t.Fatalf("Open(stdin) unexpected error: %v", err)
	}
	if err := reader.Close(); err != nil {
		t.Errorf("Close() on stdin = %v", err)
	}

	_, err = Open(context.Background(), "http://invalid-domain-that-definitely-does-not-exist.local")
	if err == nil || !strings.Contains(err.Error(), "failed to fetch URL") {
		t.Errorf("Open(bad URL) error = %v, want fetch failure", err)
	}
}

func TestLimitedReadCloser(t *testing.T) {
	l := &limitedReadCloser{
		ReadCloser: io.NopCloser(strings.NewReader("abcdefghij")),
		N:          4,
		source:     "test",
	}
	data, err := io.ReadAll(l)
	if err == nil || !strings.Contains(err.Error(), "exceeds size limit") {
		t.Errorf("ReadAll() error = %v, want size limit error", err)
	}
	if string(data) != "abcd" {
		t.Errorf("ReadAll() data = %q, want %q", data, "abcd")
	}
}
