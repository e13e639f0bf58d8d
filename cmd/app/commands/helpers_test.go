package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	apperrors "github.com/allisson/fibrohash/internal/errors"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

// exitCode extracts the exit code carried by err.
func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitCoder cli.ExitCoder
	require.True(t, errors.As(err, &exitCoder), "expected cli.ExitCoder, got %T", err)
	return exitCoder.ExitCode()
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"Success_Validation", passwordDomain.ErrInvalidLength, ExitCodeValidation},
		{"Success_Configuration", passwordDomain.ErrInvalidSettings, ExitCodeConfiguration},
		{"Success_Fatal", passwordDomain.ErrDiversity, ExitCodeFatal},
		{"Success_Unknown", errors.New("boom"), ExitCodeUnknown},
		{"Success_WrappedValidation", apperrors.Wrap(passwordDomain.ErrEmptyPhrase, "generate"), ExitCodeValidation},
		{"Success_ExistingExitCoder", cli.Exit("", ExitCodePolicyViolation), ExitCodePolicyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, exitCode(t, ExitError(tt.err)))
		})
	}

	t.Run("Success_Nil", func(t *testing.T) {
		assert.NoError(t, ExitError(nil))
	})
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("text"))
	assert.NoError(t, validateFormat("json"))

	err := validateFormat("yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "invalid format: yaml")
}

func TestReadSecret(t *testing.T) {
	t.Run("Success_FirstLine", func(t *testing.T) {
		in := IOTuple{Reader: strings.NewReader("first line\r\nsecond line\n"), Writer: &bytes.Buffer{}}
		secret, err := readSecret(in, "prompt: ")
		require.NoError(t, err)
		assert.Equal(t, "first line", secret)
	})

	t.Run("Success_NoTrailingNewline", func(t *testing.T) {
		in := IOTuple{Reader: strings.NewReader("only"), Writer: &bytes.Buffer{}}
		secret, err := readSecret(in, "prompt: ")
		require.NoError(t, err)
		assert.Equal(t, "only", secret)
	})

	t.Run("Success_EmptyInput", func(t *testing.T) {
		in := IOTuple{Reader: strings.NewReader(""), Writer: &bytes.Buffer{}}
		secret, err := readSecret(in, "prompt: ")
		require.NoError(t, err)
		assert.Empty(t, secret)
	})
}
