package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	passwordUseCase "github.com/allisson/fibrohash/internal/password/usecase"
)

// RunValidate checks a password against the default policy and prints the outcome.
// An invalid password yields an ExitCodePolicyViolation exit error after printing.
func RunValidate(
	ctx context.Context,
	reportUseCase passwordUseCase.ReportUseCase,
	logger *slog.Logger,
	writer io.Writer,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	result, err := reportUseCase.Validate(ctx, password, nil)
	if err != nil {
		return fmt.Errorf("failed to validate password: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, result); err != nil {
			return err
		}
	} else if result.Valid {
		_, _ = fmt.Fprintln(writer, "Password is valid")
	} else {
		_, _ = fmt.Fprintf(writer, "Password is invalid (%d violation(s)):\n", len(result.Violations))
		outputViolationsText(writer, result.Violations)
	}

	logger.Info("password validated",
		slog.Bool("valid", result.Valid),
		slog.Int("violations", len(result.Violations)),
	)

	if !result.Valid {
		return cli.Exit("", ExitCodePolicyViolation)
	}
	return nil
}
