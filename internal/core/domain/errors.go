package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCatalog indicates no catalog has been loaded yet.
	ErrNoCatalog = errors.New("no catalog loaded")

	// ErrUnsupportedFormat indicates an unknown catalog source format.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// FormatError reports a catalog record that could not be parsed.
// It aborts the whole load: a malformed catalog must not silently
// serve partial data.
type FormatError struct {
	// Record is the raw name of the offending record.
	Record string

	// Line is the aspect line that failed to parse.
	Line string

	// Err is the underlying parse failure.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog record %q: invalid aspect line %q: %v", e.Record, e.Line, e.Err)
	}
	return fmt.Sprintf("catalog record %q: invalid aspect line %q", e.Record, e.Line)
}

// Unwrap returns the underlying parse failure.
func (e *FormatError) Unwrap() error {
	return e.Err
}
