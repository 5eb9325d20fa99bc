// Package apperr defines the error taxonomy shared by services and handlers.
// Services wrap these sentinels with context; handlers map them to HTTP codes
// with errors.Is instead of matching on message text.
package apperr

import "errors"

var (
	// ErrUnauthenticated means the credential is missing, malformed, expired,
	// or resolves to no identity. Maps to 401.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means a valid identity holds the wrong role. Maps to 403.
	ErrForbidden = errors.New("access denied")

	// ErrNotFound covers both missing records and records scoped away from
	// the requester. Maps to 404.
	ErrNotFound = errors.New("not found")

	// ErrInvalid is malformed or out-of-policy input. Maps to 400.
	ErrInvalid = errors.New("invalid input")

	// ErrConflict is a lost race on a read-then-write transition. Maps to 409.
	ErrConflict = errors.New("conflict")
)
