// Package parsererror defines the typed errors produced while turning raw
// files into transactions. File-level errors never abort a batch and
// row-level errors never abort a file; both end up as diagnostics on the
// ingest result rather than being raised to the caller.
package parsererror

import "fmt"

// FormatError means no usable table could be found in a file. It is
// file-level and non-fatal to the batch.
type FormatError struct {
	Filename string
	Reason   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Filename, e.Reason)
}

// RowError means a single row's field could not be parsed. It is row-level
// and non-fatal to the file.
type RowError struct {
	Filename string
	Row      int
	Field    string
	Value    string
	Err      error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: failed to parse %s=%q: %v",
		e.Filename, e.Row, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
