package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/allisson/fibrohash/internal/config"
	apperrors "github.com/allisson/fibrohash/internal/errors"
	"github.com/allisson/fibrohash/internal/metrics"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogLevel:                 "info",
		SettingsFile:             filepath.Join(t.TempDir(), "missing.json"),
		MetricsNamespace:         "fibrohash",
		MaxConcurrentGenerations: 4,
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := newTestConfig(t)

	container := NewContainer(cfg)

	if container == nil {
		t.Fatal("expected non-nil container")
	}

	if container.Config() != cfg {
		t.Error("container config does not match provided config")
	}
}

// TestContainerLogger verifies that the logger can be retrieved from the container.
func TestContainerLogger(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.LogLevel = "debug"

	container := NewContainer(cfg)
	var buf bytes.Buffer
	container.SetLogOutput(&buf)
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Calling Logger() again should return the same instance (singleton)
	logger2 := container.Logger()
	if logger != logger2 {
		t.Error("expected same logger instance on multiple calls")
	}

	logger.Debug("hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected JSON debug record, got %q", buf.String())
	}
}

// TestContainerLoggerDefaultLevel verifies that logger defaults to info level.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.LogLevel = "invalid"

	container := NewContainer(cfg)
	var buf bytes.Buffer
	container.SetLogOutput(&buf)
	logger := container.Logger()

	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug record should be filtered at info level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("expected info record")
	}
}

// TestContainerSettingsDefaults verifies that a missing settings file yields the defaults.
func TestContainerSettingsDefaults(t *testing.T) {
	container := NewContainer(newTestConfig(t))

	settings, err := container.Settings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defaults := passwordDomain.DefaultSettings()
	if settings.DefaultLength != defaults.DefaultLength {
		t.Errorf("expected default length %d, got %d", defaults.DefaultLength, settings.DefaultLength)
	}
	if settings.Alphabet.Size() != defaults.Alphabet.Size() {
		t.Errorf("expected alphabet size %d, got %d", defaults.Alphabet.Size(), settings.Alphabet.Size())
	}
}

// TestContainerInitializationErrors verifies that initialization errors are properly handled.
func TestContainerInitializationErrors(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.SettingsFile = filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(cfg.SettingsFile, []byte(`{"security": {"min_password_length": 2}}`), 0o600); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}

	container := NewContainer(cfg)

	_, err := container.Settings()
	if err == nil {
		t.Fatal("expected error for invalid settings")
	}
	if !errors.Is(err, apperrors.ErrInvalidConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}

	// Second call should return the same stored error
	_, err2 := container.Settings()
	if err2 == nil {
		t.Fatal("expected stored error on second call")
	}

	// Dependents surface the same failure
	if _, err := container.GeneratorUseCase(); err == nil {
		t.Error("expected generator use case error")
	}
	if _, err := container.ReportUseCase(); err == nil {
		t.Error("expected report use case error")
	}
}

// TestContainerBusinessMetricsDisabled verifies that a no-op recorder is used when metrics are off.
func TestContainerBusinessMetricsDisabled(t *testing.T) {
	container := NewContainer(newTestConfig(t))

	bm, err := container.BusinessMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := bm.(*metrics.NoOpBusinessMetrics); !ok {
		t.Errorf("expected no-op business metrics, got %T", bm)
	}
	if container.metricsProvider != nil {
		t.Error("metrics provider should not be created when metrics are disabled")
	}
}

// TestContainerGeneratorUseCase verifies the generator is wired end to end.
func TestContainerGeneratorUseCase(t *testing.T) {
	container := NewContainer(newTestConfig(t))
	container.SetLogOutput(&bytes.Buffer{})

	uc, err := container.GeneratorUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc2, err := container.GeneratorUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc != uc2 {
		t.Error("expected same generator use case instance on multiple calls")
	}

	password, err := uc.Generate(context.Background(), passwordDomain.GenerateInput{
		Phrase: "correct horse battery staple",
		Length: 24,
		Level:  passwordDomain.LevelHigh,
	})
	if err != nil {
		t.Fatalf("unexpected generate error: %v", err)
	}
	if got := len([]rune(password)); got != 24 {
		t.Errorf("expected 24 characters, got %d", got)
	}
}

// TestContainerReportUseCase verifies the report use case is wired end to end.
func TestContainerReportUseCase(t *testing.T) {
	container := NewContainer(newTestConfig(t))

	uc, err := container.ReportUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := uc.Report(context.Background(), "Xk9#mQ2$vL7!")
	if err != nil {
		t.Fatalf("unexpected report error: %v", err)
	}
	if !report.Validation.Valid {
		t.Errorf("expected valid password, got violations %v", report.Validation.Violations)
	}
}

// TestContainerShutdownWritesMetricsFile verifies that recorded metrics reach the metrics file.
func TestContainerShutdownWritesMetricsFile(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.MetricsEnabled = true
	cfg.MetricsFile = filepath.Join(t.TempDir(), "fibrohash.prom")

	container := NewContainer(cfg)
	uc, err := container.ReportUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Audit(context.Background(), "Xk9#mQ2$vL7!"); err != nil {
		t.Fatalf("unexpected audit error: %v", err)
	}

	generator, err := container.GeneratorUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := generator.Generate(context.Background(), passwordDomain.GenerateInput{Phrase: "metrics phrase"}); err != nil {
		t.Fatalf("unexpected generate error: %v", err)
	}

	if err := container.Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}

	data, err := os.ReadFile(cfg.MetricsFile)
	if err != nil {
		t.Fatalf("failed to read metrics file: %v", err)
	}
	for _, name := range []string{
		"fibrohash_operations_total",
		"fibrohash_password_diversity_redraws_total",
		"fibrohash_password_stream_extensions_total",
		"fibrohash_generated_password_length_count",
		"fibrohash_password_security_score_count",
	} {
		if !strings.Contains(string(data), name) {
			t.Errorf("expected %s in metrics file, got:\n%s", name, data)
		}
	}
}

// TestContainerShutdownWithoutResources verifies that shutdown succeeds when nothing was initialized.
func TestContainerShutdownWithoutResources(t *testing.T) {
	container := NewContainer(newTestConfig(t))

	if err := container.Shutdown(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
