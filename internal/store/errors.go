package store

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a persistence failure
type ErrorType int

const (
	// ErrTypeInvalidName indicates the list name cannot be used as a file name
	ErrTypeInvalidName ErrorType = iota
	// ErrTypeNotFound indicates no list is saved under the name
	ErrTypeNotFound
	// ErrTypeIO indicates the file system refused a read or write
	ErrTypeIO
	// ErrTypeCorrupt indicates the saved document could not be decoded
	ErrTypeCorrupt
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeInvalidName:
		return "Invalid List Name"
	case ErrTypeNotFound:
		return "List Not Found"
	case ErrTypeIO:
		return "I/O Error"
	case ErrTypeCorrupt:
		return "Corrupt Save File"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by every failing Store operation
type Error struct {
	Type    ErrorType // Category of error
	Name    string    // List name the operation was for
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// IsType reports whether err is a store Error of the given type.
func IsType(err error, typ ErrorType) bool {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Type == typ
	}
	return false
}

// IsNotFound reports whether err means the list does not exist
func IsNotFound(err error) bool {
	return IsType(err, ErrTypeNotFound)
}

// IsCorrupt reports whether err means the saved document is malformed
func IsCorrupt(err error) bool {
	return IsType(err, ErrTypeCorrupt)
}

// IsInvalidName reports whether err means the list name was rejected
func IsInvalidName(err error) bool {
	return IsType(err, ErrTypeInvalidName)
}

func newInvalidName(name, message string) *Error {
	return &Error{Type: ErrTypeInvalidName, Name: name, Message: message}
}

func newIOError(name, message string, err error) *Error {
	return &Error{Type: ErrTypeIO, Name: name, Message: message, Err: err}
}

func newCorrupt(name, message string, err error) *Error {
	return &Error{Type: ErrTypeCorrupt, Name: name, Message: message, Err: err}
}
