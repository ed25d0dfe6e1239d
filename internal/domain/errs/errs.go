// Package errs holds the error kinds shared by every aggregate. Aggregate
// packages declare their own sentinels on top of these kinds so the HTTP layer
// can map by kind with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDuplicate         = errors.New("duplicate")
	ErrConflict          = errors.New("stale version")
	ErrInUse             = errors.New("still referenced")
	ErrStore             = errors.New("store failure")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// New returns a sentinel with its own message that still matches kind.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Validation builds an ErrValidation with a formatted message.
func Validation(format string, args ...any) error {
	return &kindError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

type storeError struct{ cause error }

func (e *storeError) Error() string   { return "store: " + e.cause.Error() }
func (e *storeError) Unwrap() []error { return []error{ErrStore, e.cause} }

// Store wraps a persistence failure. The cause stays reachable through
// errors.Is / errors.As. Errors that already carry a kind pass through.
func Store(err error) error {
	if err == nil {
		return nil
	}
	if HasKind(err) {
		return err
	}
	return &storeError{cause: err}
}

// HasKind reports whether err already matches one of the kinds above.
func HasKind(err error) bool {
	for _, k := range []error{
		ErrValidation, ErrNotFound, ErrInvalidTransition, ErrDuplicate,
		ErrConflict, ErrInUse, ErrStore, ErrUnauthorized, ErrForbidden,
	} {
		if errors.Is(err, k) {
			return true
		}
	}
	return false
}
