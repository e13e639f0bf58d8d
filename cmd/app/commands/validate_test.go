package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
	passwordMocks "github.com/allisson/fibrohash/internal/password/usecase/mocks"
)

func TestRunValidate(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)
	var noPolicy *passwordDomain.Policy

	t.Run("Success_ValidPassword", func(t *testing.T) {
		mockUseCase := passwordMocks.NewMockReportUseCase(t)
		mockUseCase.On("Validate", ctx, "Xk9#mQ2$vL7!", noPolicy).
			Return(&passwordDomain.ValidationResult{Valid: true}, nil).Once()

		var out bytes.Buffer
		err := RunValidate(ctx, mockUseCase, logger, &out, "Xk9#mQ2$vL7!", "text")

		require.NoError(t, err)
		assert.Equal(t, "Password is valid\n", out.String())
	})

	t.Run("Success_InvalidPasswordText", func(t *testing.T) {
		mockUseCase := passwordMocks.NewMockReportUseCase(t)
		mockUseCase.On("Validate", ctx, "short", noPolicy).Return(&passwordDomain.ValidationResult{
			Valid: false,
			Violations: []passwordDomain.PolicyViolation{
				{Kind: passwordDomain.ViolationLength, Detail: "password must be at least 8 characters"},
				{Kind: passwordDomain.ViolationMissingClass, Detail: "missing digit characters"},
			},
		}, nil).Once()

		var out bytes.Buffer
		err := RunValidate(ctx, mockUseCase, logger, &out, "short", "text")

		require.Error(t, err)
		assert.Equal(t, ExitCodePolicyViolation, exitCode(t, ExitError(err)))
		assert.Contains(t, out.String(), "Password is invalid (2 violation(s)):")
		assert.Contains(t, out.String(), "  - [length] password must be at least 8 characters")
		assert.Contains(t, out.String(), "  - [missing_class] missing digit characters")
	})

	t.Run("Success_InvalidPasswordJSON", func(t *testing.T) {
		mockUseCase := passwordMocks.NewMockReportUseCase(t)
		mockUseCase.On("Validate", ctx, "short", noPolicy).Return(&passwordDomain.ValidationResult{
			Valid: false,
			Violations: []passwordDomain.PolicyViolation{
				{Kind: passwordDomain.ViolationLength, Detail: "too short"},
			},
		}, nil).Once()

		var out bytes.Buffer
		err := RunValidate(ctx, mockUseCase, logger, &out, "short", "json")
		require.Error(t, err)

		var doc passwordDomain.ValidationResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
		assert.False(t, doc.Valid)
		require.Len(t, doc.Violations, 1)
		assert.Equal(t, passwordDomain.ViolationLength, doc.Violations[0].Kind)
	})

	t.Run("Error_ValidateFails", func(t *testing.T) {
		mockUseCase := passwordMocks.NewMockReportUseCase(t)
		mockUseCase.On("Validate", ctx, "pw", noPolicy).Return(nil, passwordDomain.ErrInvalidPolicy).Once()

		err := RunValidate(ctx, mockUseCase, logger, &bytes.Buffer{}, "pw", "text")

		require.Error(t, err)
		assert.ErrorIs(t, err, passwordDomain.ErrInvalidPolicy)
		assert.Equal(t, ExitCodeConfiguration, exitCode(t, ExitError(err)))
	})
}
