// Package errs defines the closed set of client-visible error kinds used by
// the service layer and translated into HTTP responses at the handler
// boundary.
//
// Every *Error carries a fixed HTTP status and a human-readable message.
// Anything that is not an *Error is an unexpected server error: handlers map
// it to a generic 500 body and keep the original value for operator-side
// diagnosis only.
package errs

import "net/http"

// Kind identifies one of the client-visible failure categories.
type Kind int

const (
	// KindValidation marks a malformed or incomplete request payload.
	KindValidation Kind = iota
	// KindNotFound marks a lookup by key that matched nothing.
	KindNotFound
	// KindInvariant marks a mutating operation whose postcondition failed,
	// e.g. zero rows affected or a uniqueness rule violated.
	KindInvariant
	// KindAuthorization marks a caller lacking rights over the target resource.
	KindAuthorization
)

// Error is a client-visible domain error. It binds a Kind to the HTTP status
// and message that every handler must emit for it.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// NewValidationError reports a payload that failed shape or type checks (400).
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

// NewNotFoundError reports a missing resource (404).
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

// NewInvariantError reports a failed postcondition or business rule (400).
func NewInvariantError(message string) *Error {
	return &Error{Kind: KindInvariant, Status: http.StatusBadRequest, Message: message}
}

// NewAuthorizationError reports an ownership/permission failure (403).
func NewAuthorizationError(message string) *Error {
	return &Error{Kind: KindAuthorization, Status: http.StatusForbidden, Message: message}
}
