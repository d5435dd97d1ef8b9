package htmldoc

import (
	"strings"
	"testing"
)

func TestOpenReader_SimpleTable(t *testing.T) {
	doc := `<html><body>
<table>
  <tr><th>Destination</th><th>NextHop</th></tr>
  <tr><td>10.0.0.0/8</td><td>192.168.1.1</td></tr>
</table>
</body></html>`

	r, err := OpenReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	tables := r.Tables()
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if got := tables[0].Rows[0].Cells[0].Text; got != "Destination" {
		t.Errorf("cell[0][0] = %q, want 'Destination'", got)
	}
	if got := tables[0].Rows[1].Cells[1].Text; got != "192.168.1.1" {
		t.Errorf("cell[1][1] = %q, want '192.168.1.1'", got)
	}
}

func TestOpenReader_TheadTbodyOrder(t *testing.T) {
	doc := `<table>
  <tbody>
    <tr><td>data1</td></tr>
  </tbody>
  <thead>
    <tr><th>Header</th></tr>
  </thead>
</table>`

	r, err := OpenReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	// Rows come back in source order, not rendering order. The header
	// contract only cares about the first row of the source.
	tables := r.Tables()
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if len(tables[0].Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tables[0].Rows))
	}
	if got := tables[0].Rows[0].Cells[0].Text; got != "data1" {
		t.Errorf("first row = %q, want 'data1'", got)
	}
}

func TestOpenReader_ColspanRepeatsText(t *testing.T) {
	doc := `<table>
  <tr><td colspan="2">Merged</td><td>Single</td></tr>
</table>`

	r, err := OpenReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	row := r.Tables()[0].Rows[0]
	if len(row.Cells) != 3 {
		t.Fatalf("expected 3 cells after colspan expansion, got %d", len(row.Cells))
	}
	want := []string{"Merged", "Merged", "Single"}
	for i, w := range want {
		if row.Cells[i].Text != w {
			t.Errorf("cell[%d] = %q, want %q", i, row.Cells[i].Text, w)
		}
	}
}

func TestOpenReader_MultipleTables(t *testing.T) {
	doc := `<body>
<table><tr><td>first</td></tr></table>
<p>prose between tables</p>
<table><tr><td>second</td></tr></table>
</body>`

	r, err := OpenReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	tables := r.Tables()
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if tables[0].Rows[0].Cells[0].Text != "first" || tables[1].Rows[0].Cells[0].Text != "second" {
		t.Error("tables out of document order")
	}
}

func TestOpenReader_SkipsScriptContent(t *testing.T) {
	doc := `<table>
  <tr><td>visible<script>var hidden = 1;</script></td></tr>
</table>`

	r, err := OpenReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	if got := r.Tables()[0].Rows[0].Cells[0].Text; got != "visible" {
		t.Errorf("cell text = %q, want 'visible'", got)
	}
}

func TestOpenReader_NoTables(t *testing.T) {
	r, err := OpenReader(strings.NewReader("<p>just prose</p>"))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	if len(r.Tables()) != 0 {
		t.Errorf("expected no tables, got %d", len(r.Tables()))
	}
}

func TestOpenReaderCharset_Windows1252(t *testing.T) {
	// "Café" with an 0xE9 (é) byte, undeclared in the document itself.
	raw := []byte("<table><tr><td>Caf\xe9</td></tr></table>")

	r, err := OpenReaderCharset(strings.NewReader(string(raw)), "windows-1252")
	if err != nil {
		t.Fatalf("OpenReaderCharset() error = %v", err)
	}
	defer r.Close()

	if got := r.Tables()[0].Rows[0].Cells[0].Text; got != "Café" {
		t.Errorf("cell text = %q, want 'Café'", got)
	}
}

func TestOpenReaderCharset_UnknownCharset(t *testing.T) {
	_, err := OpenReaderCharset(strings.NewReader("<table/>"), "no-such-charset")
	if err == nil {
		t.Fatal("expected error for unknown charset")
	}
}

func TestOpenReader_DeclaredCharset(t *testing.T) {
	raw := "<html><head><meta charset=\"windows-1252\"></head>" +
		"<body><table><tr><td>Caf\xe9</td></tr></table></body></html>"

	r, err := OpenReader(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	if got := r.Tables()[0].Rows[0].Cells[0].Text; got != "Café" {
		t.Errorf("cell text = %q, want 'Café'", got)
	}
}
