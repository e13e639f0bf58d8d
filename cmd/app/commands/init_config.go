package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/fibrohash/internal/config"
)

// RunInitConfig writes the default security settings to path. An existing file is
// only replaced when force is set.
func RunInitConfig(logger *slog.Logger, writer io.Writer, path string, force bool) error {
	if err := config.WriteDefaultSettings(path, force); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "Default settings written to %s\n", path)

	logger.Info("settings file written", slog.String("path", path), slog.Bool("force", force))

	return nil
}
