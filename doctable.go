// Package doctable extracts tables embedded in documents and converts
// them into Ansible facts.
//
// Tables of interest are identified by their header row: a table is
// selected when every requested header appears among its first-row
// cells. Each remaining row of a selected table becomes one record
// keyed by the header text.
//
// Basic usage:
//
//	result, warnings, err := doctable.Open("device_config.docx").
//		Name("routes").
//		Headers("Destination", "NextHop").
//		Facts()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", doctable.FormatWarnings(warnings))
//	}
//
// The result maps "table_routes" to one record per data row of every
// matching table. DOCX, XLSX, and HTML sources are supported; the
// format is detected from the filename.
//
// For advanced use cases, the lower-level facts, docx, htmldoc, and
// xlsx packages are also available.
package doctable

import (
	"github.com/mattspera/ansible-doctable-to-facts/format"
)

// Open opens a document file and returns an Extractor for fluent
// configuration. The returned Extractor must be closed when done,
// either explicitly via Close() or implicitly when calling a terminal
// operation like Facts().
//
// Example:
//
//	result, warnings, err := doctable.Open("doc.docx").Name("routes").Headers("Destination").Facts()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value. It is intended for use in
// scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	result := doctable.Must(doctable.Open("doc.docx").Name("routes").Facts())
func Must[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Capabilities reports which document formats this build can read.
// Entry points consult it once at startup, before dispatching to the
// extraction core, and fail fast on unsupported input.
func Capabilities() map[format.Format]bool {
	return map[format.Format]bool{
		format.DOCX: true,
		format.XLSX: true,
		format.HTML: true,
	}
}

// Supported reports whether documents of format f can be read.
func Supported(f format.Format) bool {
	return Capabilities()[f]
}
