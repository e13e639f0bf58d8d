package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/fibrohash/internal/errors"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

func TestPhraseSanitizer_Sanitize(t *testing.T) {
	sanitizer := NewPhraseSanitizer(16)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Success_PlainPhrase", input: "hello world", expected: "hello world"},
		{name: "Success_StripsControlCharacters", input: "hel\x00lo\t\n", expected: "hello"},
		{name: "Success_DropsInvalidUTF8", input: "ab\xffcd", expected: "abcd"},
		{name: "Success_KeepsMultibyteRunes", input: "café ñ", expected: "café ñ"},
		{name: "Success_ExactlyAtLimit", input: strings.Repeat("a", 16), expected: strings.Repeat("a", 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := sanitizer.Sanitize(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}

	t.Run("Error_Empty", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\x00\x01", "\xff\xfe"} {
			_, err := sanitizer.Sanitize(input)
			assert.ErrorIs(t, err, passwordDomain.ErrEmptyPhrase)
			assert.Equal(t, apperrors.KindValidation, apperrors.Kind(err))
		}
	})

	t.Run("Error_TooLong", func(t *testing.T) {
		secret := strings.Repeat("s", 17)

		_, err := sanitizer.Sanitize(secret)

		assert.ErrorIs(t, err, passwordDomain.ErrPhraseTooLong)
		assert.NotContains(t, err.Error(), secret)
	})

	t.Run("Error_LimitCountsBytes", func(t *testing.T) {
		// nine two-byte runes exceed a 16-byte limit.
		_, err := sanitizer.Sanitize(strings.Repeat("é", 9))

		assert.ErrorIs(t, err, passwordDomain.ErrPhraseTooLong)
	})
}
