package service

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"

	apperrors "github.com/allisson/fibrohash/internal/errors"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

func TestPBKDF2Deriver_Derive(t *testing.T) {
	deriver := NewPBKDF2Deriver()
	phrase := []byte("correct horse battery staple")
	salt := bytes.Repeat([]byte{0x42}, 32)

	t.Run("Success_MatchesPBKDF2SHA256", func(t *testing.T) {
		key, err := deriver.Derive(phrase, salt, 1000, 32)

		require.NoError(t, err)
		assert.Len(t, key, 32)
		assert.Equal(t, pbkdf2.Key(phrase, salt, 1000, 32, sha256.New), key)
	})

	t.Run("Success_Deterministic", func(t *testing.T) {
		first, err := deriver.Derive(phrase, salt, 1000, 64)
		require.NoError(t, err)
		second, err := deriver.Derive(phrase, salt, 1000, 64)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Success_SaltChangesKey", func(t *testing.T) {
		otherSalt := bytes.Repeat([]byte{0x43}, 32)

		first, err := deriver.Derive(phrase, salt, 1000, 32)
		require.NoError(t, err)
		second, err := deriver.Derive(phrase, otherSalt, 1000, 32)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	tests := []struct {
		name       string
		phrase     []byte
		salt       []byte
		iterations int
		keyLength  int
		expected   error
	}{
		{
			name:       "Error_EmptyPhrase",
			phrase:     nil,
			salt:       salt,
			iterations: 1000,
			keyLength:  32,
			expected:   passwordDomain.ErrEmptyKeyMaterial,
		},
		{
			name:       "Error_IterationsTooLow",
			phrase:     phrase,
			salt:       salt,
			iterations: 999,
			keyLength:  32,
			expected:   passwordDomain.ErrIterationsOutOfRange,
		},
		{
			name:       "Error_IterationsTooHigh",
			phrase:     phrase,
			salt:       salt,
			iterations: 10001,
			keyLength:  32,
			expected:   passwordDomain.ErrIterationsOutOfRange,
		},
		{
			name:       "Error_KeyLengthTooShort",
			phrase:     phrase,
			salt:       salt,
			iterations: 1000,
			keyLength:  8,
			expected:   passwordDomain.ErrKeyLengthTooShort,
		},
		{
			name:       "Error_SaltTooShort",
			phrase:     phrase,
			salt:       []byte("short"),
			iterations: 1000,
			keyLength:  32,
			expected:   passwordDomain.ErrSaltTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := deriver.Derive(tt.phrase, tt.salt, tt.iterations, tt.keyLength)

			assert.Nil(t, key)
			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, apperrors.KindConfiguration, apperrors.Kind(err))
		})
	}
}
