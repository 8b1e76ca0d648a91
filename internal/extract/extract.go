// Package extract turns HTML novel sources into plain text. Block-level elements
// become their own paragraphs so headings used as section delimiters stay on a line
// of their own.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options control how a page is reduced to text.
type Options struct {
	// Selector restricts extraction to elements matching a CSS selector.
	Selector string
	// IncludeAll skips readability and keeps the whole body.
	IncludeAll bool
	// BaseURL gives readability context for relative links. May be nil.
	BaseURL *url.URL
}

// Page is the text extracted from one HTML document.
type Page struct {
	Title string
	Text  string
}

// PlainText extracts the readable text of an HTML document.
//
// With a selector, only matching elements are kept and an error is returned if none
// match. Otherwise go-readability picks the main content, unless opts.IncludeAll is
// set. Paragraphs in the result are separated by blank lines.
func PlainText(content io.Reader, opts Options) (Page, error) {
	raw, err := io.ReadAll(content)
	if err != nil {
		return Page{}, fmt.Errorf("failed to read HTML content: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Page{}, nil
	}

	switch {
	case opts.Selector != "":
		return extractWithSelector(raw, opts.Selector)
	case opts.IncludeAll:
		return extractAll(raw)
	default:
		return extractMainContent(raw, opts.BaseURL)
	}
}

func extractMainContent(raw []byte, baseURL *url.URL) (Page, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(bytes.NewReader(raw), baseURL)
	if err != nil {
		return Page{}, fmt.Errorf("failed to extract main content: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return Page{}, fmt.Errorf("failed to parse extracted content: %w", err)
	}

	text := selectionText(doc.Selection)
	slog.Debug("Readability extraction", "title", article.Title, "chars", len(text))
	return Page{Title: article.Title, Text: text}, nil
}

func extractWithSelector(raw []byte, selector string) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return Page{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return Page{}, fmt.Errorf("no elements found matching selector: %s", selector)
	}

	return Page{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  selectionText(selection),
	}, nil
}

func extractAll(raw []byte) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return Page{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	return Page{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  selectionText(body),
	}, nil
}

// selectionText renders every node of s as paragraphs of whitespace-collapsed text.
func selectionText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		writeNode(&b, n)
		b.WriteByte('\n')
	}

	var paragraphs []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

func writeNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		// source line wrapping is not a paragraph break
		b.WriteString(strings.Map(func(r rune) rune {
			if r == '\n' || r == '\r' || r == '\t' {
				return ' '
			}
			return r
		}, n.Data))
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Head:
			return
		case atom.Br:
			b.WriteByte('\n')
			return
		}
	}

	block := isBlock(n)
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

func isBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer,
		atom.Blockquote, atom.Pre, atom.Li, atom.Ul, atom.Ol, atom.Dl, atom.Dt, atom.Dd,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Hr,
		atom.Table, atom.Tr, atom.Td, atom.Th, atom.Body, atom.Main, atom.Aside, atom.Nav:
		return true
	}
	return false
}
