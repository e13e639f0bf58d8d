// Package domain defines core password generation and audit domain models.
// Covers security levels, the character alphabet, immutable generation settings,
// validation policies and the audit/report value objects.
package domain

// SecurityLevel selects the cost parameters used for a generation call.
type SecurityLevel string

const (
	LevelStandard SecurityLevel = "standard"
	LevelHigh     SecurityLevel = "high"
	LevelMaximum  SecurityLevel = "maximum"
)

// SecurityLevels lists the levels from weakest to strongest.
var SecurityLevels = []SecurityLevel{LevelStandard, LevelHigh, LevelMaximum}

// Validate checks if the security level is one of the supported levels.
func (l SecurityLevel) Validate() error {
	switch l {
	case LevelStandard, LevelHigh, LevelMaximum:
		return nil
	default:
		return ErrInvalidSecurityLevel
	}
}

// String returns the string representation of the security level.
func (l SecurityLevel) String() string {
	return string(l)
}

// Key derivation and expansion bounds
const (
	// MinIterations is the lowest accepted PBKDF2 iteration count.
	MinIterations = 1000

	// MaxIterations is the highest accepted PBKDF2 iteration count.
	MaxIterations = 10000

	// MinKeyLength is the minimum derived key size in bytes.
	MinKeyLength = 16

	// MinSaltSize is the minimum salt size in bytes.
	MinSaltSize = 16

	// DefaultSaltSize is the salt size used when settings do not override it.
	DefaultSaltSize = 32

	// MinAlphabetSize is the minimum number of distinct characters in an alphabet.
	MinAlphabetSize = 90

	// MaxAlphabetSize is the largest alphabet the byte-wise encoder can index without bias.
	MaxAlphabetSize = 256

	// DiversityMinLength is the shortest password for which all four classes are required.
	DiversityMinLength = 4
)

// Password length bounds
const (
	// AbsoluteMinLength is the floor for the configurable minimum password length.
	AbsoluteMinLength = 8

	// AbsoluteMaxLength is the ceiling for the configurable maximum password length.
	AbsoluteMaxLength = 256

	// DefaultMinLength is the default minimum password length.
	DefaultMinLength = 8

	// DefaultMaxLength is the default maximum password length.
	DefaultMaxLength = 128

	// DefaultLength is the default generated password length.
	DefaultLength = 32

	// DefaultMaxPhraseBytes is the default maximum phrase size after sanitizing.
	DefaultMaxPhraseBytes = 1000

	// DefaultMaxDiversityAttempts bounds the redraws performed by diversity enforcement.
	DefaultMaxDiversityAttempts = 10
)

// Default policy thresholds
const (
	// DefaultMinClassTypes is how many character classes a valid password mixes.
	DefaultMinClassTypes = 3

	// DefaultMaxRepetitionRatio is the highest tolerated share of repeated characters.
	DefaultMaxRepetitionRatio = 0.3
)

// DefaultCharset is the 90-character extended alphabet.
const DefaultCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!@#$%^&*()_+-=<>?{}[]|:;,.~`"

// LevelParams holds the cost parameters of a security level.
type LevelParams struct {
	Iterations int `json:"iterations"`
	KeyLength  int `json:"key_length"`
	Rounds     int `json:"rounds"`
}
