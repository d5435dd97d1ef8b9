package doctable

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when no reader exists for the
// detected document format.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// InputReadError reports a source document that could not be opened or
// read. No table scanning happens when this error is returned: the
// operation is all-or-nothing at the level of reading the document.
type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("IOError on input file: %s: %v", e.Path, e.Err)
}

func (e *InputReadError) Unwrap() error {
	return e.Err
}
