// Package service provides the cryptographic and analysis building blocks for password
// generation: key derivation, entropy expansion, unbiased character encoding, phrase
// sanitizing, security auditing and policy validation.
package service

import (
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

// KeyDeriver turns a phrase and salt into a derived key.
type KeyDeriver interface {
	Derive(phrase, salt []byte, iterations, keyLength int) ([]byte, error)
}

// EntropyStream is a lazy, finite stream of pseudorandom bytes.
type EntropyStream interface {
	// ReadByte returns the next byte, or ErrInsufficientEntropy when the granted
	// budget is used up.
	ReadByte() (byte, error)

	// Extend grants one more batch of blocks. Returns ErrInsufficientEntropy once
	// the stream's ceiling is reached.
	Extend() error

	// Close zeroes all internal state. The stream is unusable afterwards.
	Close()
}

// EntropyExpander creates entropy streams seeded from a derived key.
type EntropyExpander interface {
	Expand(seed []byte, rounds, maxBatches int) (EntropyStream, error)
}

// CharacterEncoder maps an entropy stream onto alphabet characters.
type CharacterEncoder interface {
	Encode(stream EntropyStream, alphabet *passwordDomain.Alphabet, length int) ([]rune, error)
}

// PhraseSanitizer normalizes untrusted phrases before key derivation.
type PhraseSanitizer interface {
	Sanitize(phrase string) ([]byte, error)
}

// SecurityAuditor computes entropy and structural metrics for a password.
type SecurityAuditor interface {
	Audit(password string) (*passwordDomain.AuditReport, error)
}

// PasswordValidator checks a password against a policy and collects every violation.
type PasswordValidator interface {
	Validate(password string) (bool, []passwordDomain.PolicyViolation)
}
