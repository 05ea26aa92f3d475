package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewColumns indicates a spreadsheet row is structurally short.
	ErrTooFewColumns = errors.New("too few columns")

	// ErrInvalidValue indicates a cell or field value cannot be converted.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnsupportedField indicates a field is not carried by the content type.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrInvalidAttribute indicates a configuration attribute has the wrong type or range.
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrUnknownContentType indicates a document or row names no known content type.
	ErrUnknownContentType = errors.New("unknown content type")
)

// RowError ties a row parsing failure to its position in the sheet.
type RowError struct {
	Type ContentType
	Row  int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Type.Value(), e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// FieldError reports an attribute that is present but invalid.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("attribute %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
