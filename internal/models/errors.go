package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain failure so callers can map it to an
// outcome (HTTP status, retry decision) without parsing messages.
type ErrorKind string

const (
	// KindValidation marks caller-supplied input that violates a field
	// contract. Detected before any mutation.
	KindValidation ErrorKind = "validation"
	// KindNotFound marks a reference to an aggregate or child entity
	// that does not exist.
	KindNotFound ErrorKind = "not_found"
	// KindConflict marks an attempt to create an entity whose id is
	// already taken.
	KindConflict ErrorKind = "conflict"
	// KindInvariant marks an operation that would leave an entity in an
	// invalid state (e.g. negative stock). The operation aborts and the
	// prior state is preserved.
	KindInvariant ErrorKind = "invariant_violation"
)

// Error is the failure type raised by entities, repositories and
// services. It carries a kind for programmatic handling plus a
// human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ValidationErrorf builds a validation-kind error.
func ValidationErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundErrorf builds a not-found-kind error.
func NotFoundErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// ConflictErrorf builds a conflict-kind error.
func ConflictErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvariantErrorf builds an invariant-violation-kind error.
func InvariantErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvariant, Message: fmt.Sprintf(format, args...)}
}

func isKind(err error, kind ErrorKind) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind == kind
	}
	return false
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsConflict reports whether err is a conflict failure.
func IsConflict(err error) bool { return isKind(err, KindConflict) }

// IsInvariant reports whether err is an invariant violation.
func IsInvariant(err error) bool { return isKind(err, KindInvariant) }
