// Package griddoc parses rendered dashboard markup and flattens its
// ARIA-annotated grid into the item stream consumed by the tables package.
package griddoc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/tsawler/ariagrid/tables"
)

// Reader provides access to the grid content of a rendered dashboard page.
type Reader struct {
	doc   *html.Node
	title string
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader. The byte stream is decoded to
// UTF-8 first, with the source encoding sniffed from the first kilobyte;
// dashboard exports are not always UTF-8.
func OpenReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(1024)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading markup: %w", err)
	}
	enc, _, _ := charset.DetermineEncoding(peek, "")

	doc, err := html.Parse(transform.NewReader(br, enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{doc: doc}
	reader.extractTitle(doc)
	return reader, nil
}

// Parse parses HTML from an in-memory string.
func Parse(markup string) (*Reader, error) {
	return OpenReader(strings.NewReader(markup))
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the document title, if any.
func (r *Reader) Title() string {
	return r.title
}

// Node returns the root of the parsed document.
func (r *Reader) Node() *html.Node {
	return r.doc
}

// GridItems returns the accessibility-role-tagged grid elements in document
// order, which for a virtualized grid is the raster scan order of its cells.
// Elements carrying any other role are filtered out here and never reach
// reconstruction.
func (r *Reader) GridItems() []tables.Item {
	var items []tables.Item
	collectGridItems(r.doc, &items)
	return items
}

func collectGridItems(n *html.Node, items *[]tables.Item) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(attrValue(n, "role")) {
		case "columnheader":
			*items = append(*items, tables.NewColumnHeader(textContent(n)))
		case "rowheader":
			*items = append(*items, tables.NewRowHeader(textContent(n)))
		case "gridcell":
			*items = append(*items, cellItem(n))
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectGridItems(c, items)
	}
}

// cellItem builds a GridCell item, parsing the renderer's column-index
// attribute when present. A missing or malformed index leaves the cell
// unindexed rather than failing the pass.
func cellItem(n *html.Node) tables.Item {
	text := textContent(n)
	if v := attrValue(n, "column-index"); v != "" {
		if idx, err := strconv.Atoi(v); err == nil && idx >= 0 {
			return tables.NewCell(text, idx)
		}
	}
	return tables.NewUnindexedCell(text)
}

// attrValue returns the value of the named attribute, or "" when absent.
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent extracts all text content from a node and its descendants,
// with leading and trailing whitespace trimmed.
func textContent(n *html.Node) string {
	var sb strings.Builder
	textContentRecursive(n, &sb)
	return strings.TrimSpace(sb.String())
}

func textContentRecursive(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContentRecursive(c, sb)
	}
}

// extractTitle pulls the document title out of the head element.
func (r *Reader) extractTitle(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "title" {
		r.title = textContent(n)
		return
	}
	for c := n.FirstChild; c != nil && r.title == ""; c = c.NextSibling {
		r.extractTitle(c)
	}
}
