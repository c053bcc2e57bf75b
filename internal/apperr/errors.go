// Package apperr defines the sentinel errors shared by the Writely server
// and client. Callers should use errors.Is to match these values; layers
// attach detail by wrapping, e.g. fmt.Errorf("title: %w", apperr.ErrValidation).
package apperr

import "errors"

var (
	// ErrValidation marks malformed input (bad email, short password,
	// missing title).
	ErrValidation = errors.New("validation error")

	// ErrConflict marks an attempt to register an already-taken email.
	ErrConflict = errors.New("email already registered")

	// ErrUnauthorized covers bad credentials and missing, malformed or
	// expired tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a missing resource.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks an ownership mismatch on an existing resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNetwork is synthesized by the client when no response reached
	// the server.
	ErrNetwork = errors.New("network error")

	// ErrUnexpected is the catch-all for everything the taxonomy does
	// not name.
	ErrUnexpected = errors.New("unexpected error")
)
