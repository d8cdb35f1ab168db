// Package common defines shared constants and sentinel errors used across
// blustick-api layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors. ErrEmptyBatch is a special case of an invalid
	// payload: the batch endpoint requires a non-empty JSON array.
	ErrInvalidPayload = errors.New("invalid payload")
	ErrEmptyBatch     = errors.New("body must be a non-empty array")

	// Auth errors (missing, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
