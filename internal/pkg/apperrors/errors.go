// internal/pkg/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch on it without
// inspecting error text.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindDuplicate    Kind = "duplicate"
	KindValidation   Kind = "validation"
	KindInvariant    Kind = "invariant"
	KindStorage      Kind = "storage"
	KindUnauthorized Kind = "unauthorized"
)

// Error is the single error type returned by every repository and service.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, may be nil
}

// New creates an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind around an underlying cause
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two apperrors by kind, so sentinel errors wrapped with extra
// context still satisfy errors.Is against the sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
}

// KindOf returns the kind of err, or an empty kind for foreign errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound reports whether err is a lookup miss
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsDuplicate reports whether err is a unique-constraint violation
func IsDuplicate(err error) bool { return KindOf(err) == KindDuplicate }

// IsValidation reports whether err is a malformed-input failure
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsInvariant reports whether err is a broken-invariant observation
func IsInvariant(err error) bool { return KindOf(err) == KindInvariant }

// IsStorage reports whether err is an underlying engine failure
func IsStorage(err error) bool { return KindOf(err) == KindStorage }

// IsUnauthorized reports whether err is an authentication failure
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }
