package docx

import (
	"strconv"
	"strings"

	"github.com/mattspera/ansible-doctable-to-facts/facts"
)

// Tables returns every top-level table in the document body, in
// document order, as rectangular text grids.
//
// Merged cells are expanded to keep the grid rectangular: a cell
// spanning n grid columns (gridSpan) appears n times in its row, and a
// vertical-merge continuation (vMerge without "restart") repeats the
// text of the cell above it in the same column. Header matching can
// then treat every row as one cell per column.
func (r *Reader) Tables() []facts.Table {
	if r.document == nil || r.document.Body == nil {
		return nil
	}

	tables := make([]facts.Table, 0, len(r.document.Body.Tables))
	for _, tbl := range r.document.Body.Tables {
		tables = append(tables, parseTable(tbl))
	}
	return tables
}

// parseTable flattens a table XML element into a text grid.
func parseTable(tbl tableXML) facts.Table {
	var table facts.Table
	var prev []string // expanded texts of the previous row

	for _, row := range tbl.Rows {
		var texts []string
		for _, cell := range row.Cells {
			text := cellText(cell)
			if isMergeContinuation(cell.Properties.VMerge) && len(texts) < len(prev) {
				text = prev[len(texts)]
			}
			for i := 0; i < cellSpan(cell.Properties.GridSpan); i++ {
				texts = append(texts, text)
			}
		}

		cells := make([]facts.Cell, len(texts))
		for i, t := range texts {
			cells[i] = facts.Cell{Text: t}
		}
		table.Rows = append(table.Rows, facts.Row{Cells: cells})
		prev = texts
	}

	return table
}

// cellText combines the text of all paragraphs within a cell, one
// paragraph per line.
func cellText(cell tableCellXML) string {
	var parts []string
	for _, para := range cell.Paragraphs {
		if text := paragraphText(para); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// cellSpan returns the number of grid columns the cell occupies.
func cellSpan(span gridSpanXML) int {
	if n, err := strconv.Atoi(span.Val); err == nil && n > 1 {
		return n
	}
	return 1
}

// isMergeContinuation reports whether a vMerge element marks the cell
// as the continuation of a vertical merge. An empty val means continue;
// "restart" starts a new merge region.
func isMergeContinuation(vm vMergeXML) bool {
	return vm.XMLName.Local == "vMerge" && vm.Val != "restart"
}
