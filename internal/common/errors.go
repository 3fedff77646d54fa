// Package common defines shared constants and sentinel errors used across
// the Lu Estilo API. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Login-time error. Deliberately identical for an unknown username and
	// a wrong password, so the response leaks neither.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Request authentication errors.
	ErrMissingCredentials = errors.New("missing credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrMalformedToken     = errors.New("malformed token")
	ErrUnknownAlgorithm   = errors.New("unexpected signing algorithm")

	// Authorization error.
	ErrInsufficientPermission = errors.New("insufficient permission")

	// Password hashing failure. A server fault, never a client error.
	ErrHashing = errors.New("hashing error")

	// Order-specific errors.
	ErrInsufficientInventory = errors.New("insufficient inventory")
)
