package csvcolumns

import (
	"errors"
	"fmt"
)

var (
	// ErrBareQuote is returned in strict mode when a quote neither opens a field nor closes a quoted field.
	ErrBareQuote = errors.New("csvcolumns: bare quote in field")
	// ErrUnterminatedQuote is returned in strict mode when a quoted field is still open at end of input.
	ErrUnterminatedQuote = errors.New("csvcolumns: unterminated quoted field")
	// ErrorFieldCount is returned when a record does not contain the expected number of fields.
	ErrorFieldCount = errors.New("csvcolumns: wrong number of fields")
)

// ParseError contains location information for validation failures.
type ParseError struct {
	// Record is the 1-based record number, the header record included.
	Record int
	// Line and Column are the 1-based position in the input text. Column counts bytes.
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored Record, Line, Column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvcolumns: parse error in record %d on line %d, column %d: %v", e.Record, e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// newParseError locates offset in text and wraps err with that position.
func newParseError(text string, record, offset int, err error) *ParseError {
	line, column := 1, 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return &ParseError{Record: record, Line: line, Column: column, Err: err}
}
