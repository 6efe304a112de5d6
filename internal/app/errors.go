package app

import (
	"errors"
	"strings"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrModelUnavailable = errors.New("model not loaded")
	ErrUnknownStrategy  = errors.New("unknown strategy")
)

// MissingFieldsError reports every absent required vital, not just the first,
// in the fixed request field order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing fields: " + strings.Join(e.Fields, ", ")
}

// InvalidTypeError reports every supplied vital that could not be coerced to
// a finite number, in the fixed request field order.
type InvalidTypeError struct {
	Fields []string
}

func (e *InvalidTypeError) Error() string {
	return "fields must be numbers: " + strings.Join(e.Fields, ", ")
}
