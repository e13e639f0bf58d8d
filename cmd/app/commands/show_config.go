package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/allisson/fibrohash/internal/config"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

// RunShowConfig prints the effective security settings in the settings file layout.
func RunShowConfig(writer io.Writer, settings *passwordDomain.Settings, source string, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	fileSettings := config.FromDomain(settings)
	if format == "json" {
		return writeJSON(writer, fileSettings)
	}

	_, _ = fmt.Fprintf(writer, "Settings file: %s\n\n", source)

	_, _ = fmt.Fprintln(writer, "Security:")
	_, _ = fmt.Fprintf(writer, "  Password length: min=%d max=%d default=%d\n",
		settings.MinLength, settings.MaxLength, settings.DefaultLength)
	_, _ = fmt.Fprintf(writer, "  Default level: %s\n", settings.DefaultLevel)
	_, _ = fmt.Fprintf(writer, "  Character diversity: %s (max attempts %d)\n",
		enabledDisabled(settings.EnforceDiversity), settings.MaxDiversityAttempts)
	_, _ = fmt.Fprintf(writer, "  Max phrase bytes: %d\n", settings.MaxPhraseBytes)
	_, _ = fmt.Fprintf(writer, "  Salt size: %d\n", settings.SaltSize)

	_, _ = fmt.Fprintln(writer, "Cryptography:")
	for _, level := range passwordDomain.SecurityLevels {
		params := settings.Levels[level]
		_, _ = fmt.Fprintf(writer, "  %s: iterations=%d key_size=%d rounds=%d\n",
			level, params.Iterations, params.KeyLength, params.Rounds)
	}

	_, _ = fmt.Fprintln(writer, "Charset:")
	_, _ = fmt.Fprintf(writer, "  Size: %d\n", settings.Alphabet.Size())
	_, _ = fmt.Fprintf(writer, "  Characters: %s\n", settings.Alphabet.String())

	_, _ = fmt.Fprintln(writer, "Audit:")
	_, _ = fmt.Fprintf(writer, "  Min entropy bits: %.2f\n", settings.MinEntropyBits)
	_, _ = fmt.Fprintf(writer, "  Min character types: %d\n", settings.MinClassTypes)
	_, _ = fmt.Fprintf(writer, "  Max repetition ratio: %.2f\n", settings.MaxRepetitionRatio)
	_, _ = fmt.Fprintf(writer, "  Max pattern severity: %s\n", settings.MaxPatternSeverity)
	_, _ = fmt.Fprintf(writer, "  Forbidden substrings: %s\n", strings.Join(settings.ForbiddenSubstrings, ", "))

	return nil
}

func enabledDisabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
