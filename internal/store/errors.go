package store

import "fmt"

// Load error codes.
const (
	ErrCodeOpen       = "E201" // Source could not be opened
	ErrCodeRead       = "E202" // I/O failure while reading
	ErrCodeFieldCount = "E203" // Line has fewer than three fields
	ErrCodeQuery      = "E204" // SQLite query failed
	ErrCodeTable      = "E205" // Invalid table name
)

// LoadError describes a failure to read records from a source.
type LoadError struct {
	Code    string
	Source  string // file path or DSN
	Line    int    // 1-based line number, 0 when not applicable
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	loc := e.Source
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", loc, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", loc, e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
