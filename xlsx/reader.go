// Package xlsx reads spreadsheet workbooks as document tables, one
// table per worksheet.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mattspera/ansible-doctable-to-facts/facts"
)

// Reader provides access to XLSX workbook content.
type Reader struct {
	file   *excelize.File
	sheets []string
}

// Open opens an XLSX workbook for reading.
func Open(filename string) (*Reader, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}

	return &Reader{
		file:   f,
		sheets: f.GetSheetList(),
	}, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// SheetNames returns the worksheet names in workbook order.
func (r *Reader) SheetNames() []string {
	return append([]string(nil), r.sheets...)
}

// Tables returns one table per worksheet, in workbook order. Trailing
// empty cells are already dropped by excelize, which lines up with the
// truncation rule used when pairing rows against a header row.
func (r *Reader) Tables() ([]facts.Table, error) {
	tables := make([]facts.Table, 0, len(r.sheets))
	for _, sheet := range r.sheets {
		table, err := r.Table(sheet)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// Table returns the named worksheet as a table.
func (r *Reader) Table(sheet string) (facts.Table, error) {
	rows, err := r.file.GetRows(sheet)
	if err != nil {
		return facts.Table{}, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}

	var table facts.Table
	for _, texts := range rows {
		row := facts.Row{Cells: make([]facts.Cell, len(texts))}
		for i, text := range texts {
			row.Cells[i] = facts.Cell{Text: text}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
