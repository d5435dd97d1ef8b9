package doctable

import (
	"fmt"
	"strings"

	"github.com/mattspera/ansible-doctable-to-facts/docx"
	"github.com/mattspera/ansible-doctable-to-facts/facts"
	"github.com/mattspera/ansible-doctable-to-facts/format"
	"github.com/mattspera/ansible-doctable-to-facts/htmldoc"
	"github.com/mattspera/ansible-doctable-to-facts/xlsx"
)

// Extractor provides a fluent interface for extracting table facts from
// DOCX, XLSX, and HTML files. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source
	filename string
	format   format.Format

	// Readers (only one will be used based on format)
	docxReader *docx.Reader
	htmlReader *htmldoc.Reader
	xlsxReader *xlsx.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		format:       e.format,
		docxReader:   e.docxReader,
		htmlReader:   e.htmlReader,
		xlsxReader:   e.xlsxReader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureReader opens the reader if not already open. An open or read
// failure is reported as *InputReadError before any table scanning.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	switch e.format {
	case format.DOCX:
		dr, err := docx.Open(e.filename)
		if err != nil {
			return &InputReadError{Path: e.filename, Err: err}
		}
		e.docxReader = dr

	case format.HTML:
		hr, err := htmldoc.Open(e.filename)
		if err != nil {
			return &InputReadError{Path: e.filename, Err: err}
		}
		e.htmlReader = hr

	case format.XLSX:
		xr, err := xlsx.Open(e.filename)
		if err != nil {
			return &InputReadError{Path: e.filename, Err: err}
		}
		e.xlsxReader = xr

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, e.filename)
	}

	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader {
		if e.docxReader != nil {
			err := e.docxReader.Close()
			e.docxReader = nil
			e.ownsReader = false
			return err
		}
		if e.htmlReader != nil {
			err := e.htmlReader.Close()
			e.htmlReader = nil
			e.ownsReader = false
			return err
		}
		if e.xlsxReader != nil {
			err := e.xlsxReader.Close()
			e.xlsxReader = nil
			e.ownsReader = false
			return err
		}
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Name sets the logical name under which extracted records are
// returned. The output key is "table_" + name.
//
// Example:
//
//	result, _, err := doctable.Open("doc.docx").Name("routes").Facts()
func (e *Extractor) Name(name string) *Extractor {
	newExt := e.clone()
	newExt.options.name = name
	return newExt
}

// Headers sets the column headers a table's first row must contain for
// the table to be selected. Multiple calls are cumulative. Calling with
// no arguments leaves the set empty, which selects every table.
//
// Example:
//
//	result, _, err := doctable.Open("doc.docx").
//		Name("routes").
//		Headers("Destination", "NextHop").
//		Facts()
func (e *Extractor) Headers(headers ...string) *Extractor {
	newExt := e.clone()
	newExt.options.headers = append(newExt.options.headers, headers...)
	return newExt
}

// TrimSpace configures the extractor to trim surrounding whitespace
// from cell text (and the requested headers) before matching. Useful
// for documents where table cells carry stray padding.
//
// Example:
//
//	result, _, err := doctable.Open("doc.docx").Name("routes").Headers("Destination").TrimSpace().Facts()
func (e *Extractor) TrimSpace() *Extractor {
	newExt := e.clone()
	newExt.options.trimSpace = true
	return newExt
}

// Sheet restricts extraction to the named worksheet. Only meaningful
// for XLSX sources; other formats ignore it.
//
// Example:
//
//	result, _, err := doctable.Open("book.xlsx").Sheet("Routes").Name("routes").Facts()
func (e *Extractor) Sheet(name string) *Extractor {
	newExt := e.clone()
	newExt.options.sheet = name
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Tables returns every table found in the document, in document order,
// without any header filtering. This is a terminal operation that
// closes the underlying reader.
func (e *Extractor) Tables() ([]facts.Table, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	tables, err := e.collectTables()
	if err != nil {
		return nil, e.warnings, err
	}
	if e.options.trimSpace {
		trimTables(tables)
	}
	return tables, e.warnings, nil
}

// Facts scans the document's tables, selects those whose header row
// contains every configured header, and returns their data rows as
// records under the "table_"+name key. The key is always present, even
// when nothing matched.
//
// Returns the result set, any warnings encountered during processing,
// and an error if extraction failed. Warnings indicate non-fatal issues
// (e.g. no table matched the requested headers) where extraction
// succeeded but the result is empty.
//
// Example:
//
//	result, warnings, err := doctable.Open("doc.docx").
//		Name("routes").
//		Headers("Destination", "NextHop").
//		Facts()
func (e *Extractor) Facts() (facts.ResultSet, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if e.options.name == "" {
		return nil, nil, fmt.Errorf("no fact name specified")
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	tables, err := e.collectTables()
	if err != nil {
		return nil, e.warnings, err
	}

	headers := e.options.headers
	if e.options.trimSpace {
		trimTables(tables)
		headers = trimAll(headers)
	}

	result := facts.Extract(tables, e.options.name, headers)

	key := facts.KeyPrefix + e.options.name
	if len(result[key]) == 0 {
		e.checkEmptyResult(tables, headers)
	}

	return result, e.warnings, nil
}

// AnsibleFacts is like Facts but wraps the result under the
// ansible_facts envelope key expected by the host automation framework.
func (e *Extractor) AnsibleFacts() (map[string]facts.ResultSet, []Warning, error) {
	result, warnings, err := e.Facts()
	if err != nil {
		return nil, warnings, err
	}
	return facts.Envelope(result), warnings, nil
}

// collectTables gathers every table from the open reader.
func (e *Extractor) collectTables() ([]facts.Table, error) {
	switch e.format {
	case format.DOCX:
		return e.docxReader.Tables(), nil

	case format.HTML:
		return e.htmlReader.Tables(), nil

	case format.XLSX:
		if e.options.sheet != "" {
			table, err := e.xlsxReader.Table(e.options.sheet)
			if err != nil {
				return nil, err
			}
			return []facts.Table{table}, nil
		}
		return e.xlsxReader.Tables()

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, e.format)
	}
}

// checkEmptyResult records which kind of emptiness produced zero
// records: no table matched at all, or matching tables had no data rows.
func (e *Extractor) checkEmptyResult(tables []facts.Table, headers []string) {
	for _, table := range tables {
		if table.Matches(headers) {
			e.warnings = append(e.warnings, Warning{
				Type:    WarningEmptyTables,
				Message: fmt.Sprintf("tables matching headers %v contain no data rows", headers),
			})
			return
		}
	}
	e.warnings = append(e.warnings, Warning{
		Type:    WarningNoMatch,
		Message: fmt.Sprintf("no table matched headers %v", headers),
	})
}

// trimTables trims surrounding whitespace from every cell, in place.
// The tables are owned by the extractor at this point.
func trimTables(tables []facts.Table) {
	for _, table := range tables {
		for _, row := range table.Rows {
			for i := range row.Cells {
				row.Cells[i].Text = strings.TrimSpace(row.Cells[i].Text)
			}
		}
	}
}

// trimAll returns a trimmed copy of the given strings.
func trimAll(values []string) []string {
	trimmed := make([]string, len(values))
	for i, v := range values {
		trimmed[i] = strings.TrimSpace(v)
	}
	return trimmed
}
