package doctable

import "strings"

// WarningType identifies a class of non-fatal extraction issue.
type WarningType int

const (
	// WarningNoMatch indicates that no table's header row contained the
	// requested headers.
	WarningNoMatch WarningType = iota
	// WarningEmptyTables indicates that tables matched the requested
	// headers but none of them had any data rows.
	WarningEmptyTables
)

// Warning describes a non-fatal issue encountered during extraction.
// Extraction succeeded, but the result may be emptier than expected.
type Warning struct {
	Type    WarningType
	Message string
}

// FormatWarnings joins warning messages for display.
func FormatWarnings(warnings []Warning) string {
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}
