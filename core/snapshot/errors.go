package snapshot

import (
	"errors"
	"fmt"
)

// ErrUnsupportedExtension marks export paths whose extension matches neither
// supported encoding. It is wrapped inside a FormatError.
var ErrUnsupportedExtension = errors.New("unsupported file extension (expected .json or .txt)")

// FormatError reports export content that does not parse in the encoding
// detected for the file. IO failures are returned as plain wrapped errors
// and never as a FormatError.
type FormatError struct {
	// Path is the export path or object name that failed to parse.
	Path string
	// Err is the underlying parse failure.
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid export format in %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
