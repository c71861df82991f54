// Package errors defines the coded errors shared by the loaders, the render
// pipeline, the CLI and the preview server.
//
// A code says which side is at fault: INVALID_* and UNSUPPORTED are caller
// mistakes, *NOT_FOUND means a diagram or file is missing, and INTERNAL_ERROR
// is everything else. The preview server maps them to 400, 404 and 500.
//
//	err := errors.New(errors.ErrCodeInvalidDiagram, "leaf %q has children", name)
//	if errors.IsClient(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidDiagram Code = "INVALID_DIAGRAM"
	ErrCodeInvalidKind    Code = "INVALID_KIND"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeUnsupported    Code = "UNSUPPORTED"

	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeDiagramNotFound Code = "DIAGRAM_NOT_FOUND"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// NotFound reports whether c names a missing diagram, file or resource.
func (c Code) NotFound() bool {
	switch c {
	case ErrCodeNotFound, ErrCodeDiagramNotFound, ErrCodeFileNotFound:
		return true
	}
	return false
}

// Client reports whether c describes bad input rather than a failure on our
// side. Not-found codes are not client codes.
func (c Code) Client() bool {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidDiagram,
		ErrCodeInvalidKind, ErrCodeInvalidPath, ErrCodeUnsupported:
		return true
	}
	return false
}

// Error carries a code, a message for the user and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error that keeps cause reachable through errors.Is/As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err's chain holds an *Error with the given code.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// IsNotFound reports whether err carries one of the not-found codes.
func IsNotFound(err error) bool { return GetCode(err).NotFound() }

// IsClient reports whether err carries a client-side code.
func IsClient(err error) bool { return GetCode(err).Client() }

// UserMessage strips the code prefix and cause from coded errors. Other
// errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
