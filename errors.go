// errors.go
package main

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is wrapped by a LoadError when the upload is not a
// spreadsheet any reader recognises.
var ErrUnknownFormat = errors.New("unrecognized spreadsheet format")

var (
	errNoFile       = errors.New("no file uploaded")
	errFileTooLarge = errors.New("file too large")
)

// StructuralError reports that the target column is absent from the table.
type StructuralError struct {
	Column  string
	Index   int
	Columns int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("column %s not found: table has %d column(s), need at least %d",
		e.Column, e.Columns, e.Index+1)
}

// LoadError reports that the upload could not be read as a spreadsheet.
type LoadError struct {
	Format string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("load spreadsheet: %v", e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Format, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// errorKind names the taxonomy bucket of err for API clients.
func errorKind(err error) string {
	var se *StructuralError
	var le *LoadError
	switch {
	case errors.Is(err, errNoFile), errors.Is(err, errFileTooLarge):
		return "upload"
	case errors.As(err, &se):
		return "structural"
	case errors.As(err, &le):
		return "load"
	default:
		return "internal"
	}
}
