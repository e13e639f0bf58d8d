// Package errors provides standardized domain errors that express the kind of failure
// rather than where it happened. Domain packages wrap these sentinels so callers can
// branch on the kind with errors.Is while still getting a descriptive message.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrInvalidInput indicates caller-supplied input is malformed or out of range.
	// The caller can recover by correcting the input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfiguration indicates security parameters are outside their allowed
	// bounds. Configuration values are rejected, never silently clamped.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvariant indicates an internal invariant could not be satisfied after bounded
	// retries (e.g., entropy budget or diversity attempts exhausted).
	ErrInvariant = errors.New("invariant violated")
)

// Error kinds reported by Kind.
const (
	KindValidation    = "validation"
	KindConfiguration = "configuration"
	KindFatal         = "fatal"
	KindUnknown       = "unknown"
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap but formats the message with the given arguments.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Kind classifies err by the standard sentinel it wraps.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrInvalidConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrInvariant):
		return KindFatal
	default:
		return KindUnknown
	}
}
