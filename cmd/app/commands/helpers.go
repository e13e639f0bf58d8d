// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	apperrors "github.com/allisson/fibrohash/internal/errors"
)

// Process exit codes returned through cli.Exit.
const (
	ExitCodeUnknown         = 1
	ExitCodeValidation      = 2
	ExitCodeConfiguration   = 3
	ExitCodeFatal           = 4
	ExitCodePolicyViolation = 5
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// ExitError maps err to a cli.ExitCoder carrying the exit code of its error kind.
// Errors that already carry an exit code are returned unchanged.
func ExitError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(cli.ExitCoder); ok {
		return err
	}

	code := ExitCodeUnknown
	switch apperrors.Kind(err) {
	case apperrors.KindValidation:
		code = ExitCodeValidation
	case apperrors.KindConfiguration:
		code = ExitCodeConfiguration
	case apperrors.KindFatal:
		code = ExitCodeFatal
	}
	return cli.Exit(err.Error(), code)
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return apperrors.Wrapf(
			apperrors.ErrInvalidInput,
			"invalid format: %s (valid options: text, json)",
			format,
		)
	}
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// readSecret reads a single secret line. A terminal reader is prompted on stderr
// and read without echo; any other reader supplies its first line.
func readSecret(in IOTuple, prompt string) (string, error) {
	if f, ok := in.Reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(os.Stderr, prompt)
		secret, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read from terminal: %w", err)
		}
		return string(secret), nil
	}

	reader := bufio.NewReader(in.Reader)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
