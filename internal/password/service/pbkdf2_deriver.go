package service

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/allisson/fibrohash/internal/errors"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

type pbkdf2Deriver struct{}

// NewPBKDF2Deriver creates a KeyDeriver backed by PBKDF2-HMAC-SHA256.
func NewPBKDF2Deriver() KeyDeriver {
	return &pbkdf2Deriver{}
}

// Derive runs PBKDF2-HMAC-SHA256 over phrase and salt. The result is deterministic for
// identical inputs. Iterations must be within [1000, 10000], keyLength at least 16 bytes
// and salt at least 16 bytes; violations return configuration errors.
func (d *pbkdf2Deriver) Derive(phrase, salt []byte, iterations, keyLength int) ([]byte, error) {
	if len(phrase) == 0 {
		return nil, passwordDomain.ErrEmptyKeyMaterial
	}
	if iterations < passwordDomain.MinIterations || iterations > passwordDomain.MaxIterations {
		return nil, errors.Wrapf(
			passwordDomain.ErrIterationsOutOfRange,
			"got %d, want [%d, %d]",
			iterations, passwordDomain.MinIterations, passwordDomain.MaxIterations,
		)
	}
	if keyLength < passwordDomain.MinKeyLength {
		return nil, errors.Wrapf(
			passwordDomain.ErrKeyLengthTooShort,
			"got %d, want at least %d",
			keyLength, passwordDomain.MinKeyLength,
		)
	}
	if len(salt) < passwordDomain.MinSaltSize {
		return nil, errors.Wrapf(
			passwordDomain.ErrSaltTooShort,
			"got %d, want at least %d",
			len(salt), passwordDomain.MinSaltSize,
		)
	}

	return pbkdf2.Key(phrase, salt, iterations, keyLength, sha256.New), nil
}
