package errors

import (
	"fmt"

	"github.com/eaugeas/ordered/logs"
)

const (
	// ErrCodeEmptyContainer is used when a query needs at least
	// one value and the container has none
	ErrCodeEmptyContainer = 1000 + iota

	// ErrCodeNoResult is used when no stored value satisfies a query
	ErrCodeNoResult

	// ErrCodeKeyNotFound is used when a dictionary lookup misses
	ErrCodeKeyNotFound

	// ErrCodeInvalidKind is used when asking for an unknown tree kind
	ErrCodeInvalidKind
)

// Error is the error returned by the containers when an
// operation cannot be satisfied
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates a new Error
func New(code int, description string) *Error {
	return &Error{ErrorCode: code, Description: description}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is works across wrapped instances
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.ErrorCode == e.ErrorCode
}

// String implementation of fmt.Stringer for Error
func (e *Error) String() string {
	return fmt.Sprintf("[%d] %s", e.ErrorCode, e.Description)
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}
