// Package htmldoc provides HTML document table parsing.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/mattspera/ansible-doctable-to-facts/facts"
)

// Reader provides access to tables found in an HTML document.
type Reader struct {
	doc    *html.Node
	tables []facts.Table
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

// OpenReader parses HTML from r, decoding legacy charsets when the
// document declares one (meta charset or BOM).
func OpenReader(r io.Reader) (*Reader, error) {
	decoded, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	return parse(decoded)
}

// OpenReaderCharset parses HTML from r decoded with the named charset,
// overriding anything the document declares.
func OpenReaderCharset(r io.Reader, name string) (*Reader, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	return parse(transform.NewReader(r, enc.NewDecoder()))
}

func parse(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{doc: doc}
	reader.collectTables(doc)
	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Tables returns every table in the document, in document order, as
// rectangular text grids. Cells spanning multiple columns repeat their
// text once per spanned column.
func (r *Reader) Tables() []facts.Table {
	return r.tables
}

// collectTables walks the DOM gathering top-level tables. Tables nested
// inside table cells are not descended into.
func (r *Reader) collectTables(n *html.Node) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "table" {
			if table := parseTable(n); len(table.Rows) > 0 {
				r.tables = append(r.tables, table)
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collectTables(c)
	}
}

// parseTable extracts a table from an HTML table element.
func parseTable(tableNode *html.Node) facts.Table {
	var table facts.Table

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					appendRow(&table, tr)
				}
			}
		case "tr":
			appendRow(&table, c)
		}
	}

	return table
}

func appendRow(table *facts.Table, tr *html.Node) {
	row := parseTableRow(tr)
	if len(row.Cells) > 0 {
		table.Rows = append(table.Rows, row)
	}
}

// parseTableRow parses a single table row. Both th and td cells count;
// a colspan repeats the cell text to keep the grid rectangular.
func parseTableRow(tr *html.Node) facts.Row {
	var row facts.Row

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}

		text := strings.TrimSpace(textContent(c))
		span := 1
		for _, attr := range c.Attr {
			if attr.Key == "colspan" {
				if n, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && n > 1 {
					span = n
				}
			}
		}
		for i := 0; i < span; i++ {
			row.Cells = append(row.Cells, facts.Cell{Text: text})
		}
	}

	return row
}

// shouldSkipElement returns true if the element should be skipped
// during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// textContent extracts all text content from a node and its
// descendants.
func textContent(n *html.Node) string {
	var sb strings.Builder
	textContentRecursive(n, &sb)
	return sb.String()
}

func textContentRecursive(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			sb.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContentRecursive(c, sb)
	}
}
