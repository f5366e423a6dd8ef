package errors

import (
	"github.com/eaugeas/arboretum/logs"
	pkgerrors "github.com/pkg/errors"
)

const (
	// CodeOrphanNode is used when a node holds a reference to a parent
	// that does not hold the node as one of its children. The tree is
	// corrupted once this happens
	CodeOrphanNode = 1000 + iota

	// CodeUnknownOperation is used when a script contains an
	// operation that is not supported
	CodeUnknownOperation

	// CodeInvalidArgument is used when an operation receives the
	// wrong number of arguments or an argument that cannot be parsed
	CodeInvalidArgument

	// CodeInvalidValueType is used when the configured value type
	// is not supported
	CodeInvalidValueType
)

// Error is the value returned or raised when an operation fails.
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}

// NewOrphanNode creates the error raised when a tree detects that
// the parent of a node does not reference it
func NewOrphanNode() *Error {
	return &Error{
		ErrorCode:   CodeOrphanNode,
		Description: "corrupted tree structure: found an orphan node",
	}
}

// NewUnknownOperation creates a new error for an unsupported operation
func NewUnknownOperation(op string) *Error {
	return &Error{
		ErrorCode:   CodeUnknownOperation,
		Description: "unknown operation " + op,
	}
}

// NewInvalidArgument creates a new error for an argument that
// is missing or malformed
func NewInvalidArgument(description string) *Error {
	return &Error{
		ErrorCode:   CodeInvalidArgument,
		Description: description,
	}
}

// NewInvalidValueType creates a new error for a value type that
// is not supported
func NewInvalidValueType(valueType string) *Error {
	return &Error{
		ErrorCode:   CodeInvalidValueType,
		Description: "unsupported value type " + valueType,
	}
}

// Is reports whether the cause of err is an *Error with
// the provided code
func Is(err error, code int) bool {
	c, ok := Code(err)
	return ok && c == code
}

// Code returns the code of the *Error that caused err. It
// returns false if the cause of err is not an *Error
func Code(err error) (int, bool) {
	e, ok := pkgerrors.Cause(err).(*Error)
	if !ok {
		return 0, false
	}

	return e.ErrorCode, true
}
