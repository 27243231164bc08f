// Package common defines shared constants and sentinel errors used across
// the NoteKeeper server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorValidation         = errors.New("validation error")
	ErrorDuplicateUsername  = errors.New("username already exists")
	ErrorInvalidCredentials = errors.New("invalid username or password")
	ErrorAccessDenied       = errors.New("access denied")
	ErrorRateLimited        = errors.New("too many requests")

	// Auth errors (invalid or malformed token).
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
