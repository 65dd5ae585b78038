// Package errors defines the contract errors reported when a caller
// hands the analyzer dynamically shaped input that is not a sequence
// of strings. Unrecognized numbering schemes are not errors; they are
// ordinary results.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a contract violation.
type ErrorCode string

const (
	// ErrNotSequence indicates the input value is not a slice or array.
	ErrNotSequence ErrorCode = "listalyze-not-sequence"
	// ErrElementNotString indicates a sequence element is not a string.
	ErrElementNotString ErrorCode = "listalyze-element-not-string"
)

// TypeMismatch describes caller misuse of the dynamic entry point: the
// input was not a sequence, or an element of it was not a string. It
// names the Go type actually seen and, for element failures, the
// element's position.
type TypeMismatch struct {
	Code     ErrorCode
	Index    int // offending element index; -1 when the input itself is at fault
	TypeName string
}

// Error formats the mismatch with its code, position, and actual type.
func (e *TypeMismatch) Error() string {
	if e == nil {
		return "type mismatch <nil>"
	}
	if e.Code == ErrElementNotString {
		return fmt.Sprintf("[%s] element at index %d is %s, not string", e.Code, e.Index, e.TypeName)
	}
	return fmt.Sprintf("[%s] %s is not a sequence of strings", e.Code, e.TypeName)
}

// NewNotSequence builds the error for a non-sequence input value.
func NewNotSequence(typeName string) *TypeMismatch {
	return &TypeMismatch{Code: ErrNotSequence, Index: -1, TypeName: typeName}
}

// NewElementNotString builds the error for a non-string element.
func NewElementNotString(index int, typeName string) *TypeMismatch {
	return &TypeMismatch{Code: ErrElementNotString, Index: index, TypeName: typeName}
}

// AsTypeMismatch extracts a TypeMismatch from an error chain.
func AsTypeMismatch(err error) (*TypeMismatch, bool) {
	var tm *TypeMismatch
	if errors.As(err, &tm) && tm != nil {
		return tm, true
	}
	return nil, false
}
