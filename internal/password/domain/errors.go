package domain

import (
	"github.com/allisson/fibrohash/internal/errors"
)

// Validation errors. Returned before any cryptographic work is performed.
var (
	// ErrEmptyPhrase indicates the phrase is empty after sanitizing.
	ErrEmptyPhrase = errors.Wrap(errors.ErrInvalidInput, "phrase is empty")

	// ErrPhraseTooLong indicates the sanitized phrase exceeds the configured byte limit.
	ErrPhraseTooLong = errors.Wrap(errors.ErrInvalidInput, "phrase exceeds maximum length")

	// ErrInvalidLength indicates the requested password length is outside the configured bounds.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid password length")

	// ErrInvalidSecurityLevel indicates an unknown security level.
	ErrInvalidSecurityLevel = errors.Wrap(errors.ErrInvalidInput, "invalid security level")

	// ErrEmptyPassword indicates an empty password was submitted for audit.
	ErrEmptyPassword = errors.Wrap(errors.ErrInvalidInput, "password is empty")
)

// Configuration errors. Parameters are rejected, never clamped.
var (
	// ErrEmptyKeyMaterial indicates key derivation was called with an empty phrase.
	ErrEmptyKeyMaterial = errors.Wrap(errors.ErrInvalidConfiguration, "empty key derivation input")

	// ErrIterationsOutOfRange indicates the PBKDF2 iteration count is outside [1000, 10000].
	ErrIterationsOutOfRange = errors.Wrap(errors.ErrInvalidConfiguration, "iterations out of range")

	// ErrKeyLengthTooShort indicates the derived key length is below the minimum.
	ErrKeyLengthTooShort = errors.Wrap(errors.ErrInvalidConfiguration, "derived key length too short")

	// ErrSaltTooShort indicates the salt is shorter than the minimum.
	ErrSaltTooShort = errors.Wrap(errors.ErrInvalidConfiguration, "salt too short")

	// ErrInvalidExpansion indicates invalid entropy expansion parameters.
	ErrInvalidExpansion = errors.Wrap(errors.ErrInvalidConfiguration, "invalid expansion parameters")

	// ErrInvalidAlphabet indicates the alphabet violates size, uniqueness or class rules.
	ErrInvalidAlphabet = errors.Wrap(errors.ErrInvalidConfiguration, "invalid alphabet")

	// ErrInvalidSettings indicates the generation settings failed validation.
	ErrInvalidSettings = errors.Wrap(errors.ErrInvalidConfiguration, "invalid settings")

	// ErrInvalidPolicy indicates the validation policy failed validation.
	ErrInvalidPolicy = errors.Wrap(errors.ErrInvalidConfiguration, "invalid policy")
)

// Invariant errors. Fatal after bounded retries.
var (
	// ErrInsufficientEntropy indicates the expansion budget was exhausted.
	ErrInsufficientEntropy = errors.Wrap(errors.ErrInvariant, "insufficient entropy")

	// ErrDiversity indicates diversity enforcement exhausted its attempts.
	ErrDiversity = errors.Wrap(errors.ErrInvariant, "character diversity not satisfied")
)

// ErrInvalidSeverity indicates an unknown pattern severity.
var ErrInvalidSeverity = errors.Wrap(errors.ErrInvalidConfiguration, "invalid severity")
