// Package common defines shared constants and sentinel errors used across
// the lost & found engine. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Permission errors (fail-closed: the action is refused, no store call is made).
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (rejected before any store call).
	ErrorValidation = errors.New("validation error")

	// Import errors (top-level batch shape is not a JSON array).
	ErrMalformedBatch = errors.New("malformed batch")
)
