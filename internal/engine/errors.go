package engine

import (
	"errors"
	"fmt"
)

// Kind classifies why a calculation was rejected.
type Kind string

const (
	// KindValidation marks malformed input: non-positive dimensions, negative
	// counts, unknown door type, or a module too small for its construction.
	KindValidation Kind = "VALIDATION"
	// KindUnknownModuleType marks a module type tag that is not registered.
	KindUnknownModuleType Kind = "UNKNOWN_MODULE_TYPE"
	// KindConfiguration marks a required component role with no material bound.
	KindConfiguration Kind = "CONFIGURATION"
)

// Sentinels for errors.Is. Any *Error with the same Kind matches.
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrUnknownModuleType = &Error{Kind: KindUnknownModuleType}
	ErrConfiguration     = &Error{Kind: KindConfiguration}
)

// Error is returned by every failing engine operation. No partial result
// accompanies it.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrConfiguration) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationError(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

func configurationError(format string, args ...any) *Error {
	return newError(KindConfiguration, format, args...)
}

// KindOf extracts the Kind from an error, or "" if it is not an engine error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// UserMessage returns the message without the kind prefix.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
