package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

// exposition writes the provider's metrics to a temporary file and returns its content.
func exposition(t *testing.T, provider *Provider) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, provider.WriteToTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewBusinessMetrics(t *testing.T) {
	t.Run("Success_CreateBusinessMetrics", func(t *testing.T) {
		provider, err := NewProvider()
		require.NoError(t, err)

		businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)
	})
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	ctx := context.Background()
	noOp := NewNoOpBusinessMetrics()

	assert.IsType(t, &NoOpBusinessMetrics{}, noOp)
	assert.NotPanics(t, func() {
		noOp.RecordOperation(ctx, "password", "generate", "success")
		noOp.RecordDuration(ctx, "password", "report", 200*time.Millisecond, "error")
		noOp.RecordGeneration(ctx, GenerationStats{Level: "high", Length: 32, Redraws: 2, Status: "success"})
		noOp.RecordSecurityScore(ctx, "audit", 73)
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "password", "generate", "success")
	bm.RecordOperation(ctx, "password", "generate", "success")
	bm.RecordOperation(ctx, "password", "generate", "error")
	bm.RecordOperation(ctx, "password", "audit", "success")

	bm.RecordDuration(ctx, "password", "generate", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "password", "generate", 60*time.Millisecond, "success")
	bm.RecordDuration(ctx, "password", "audit", 1*time.Millisecond, "success")

	bm.RecordGeneration(ctx, GenerationStats{Level: "high", Length: 32, Status: "success", Redraws: 2, Extensions: 1})
	bm.RecordGeneration(ctx, GenerationStats{Level: "high", Length: 16, Status: "success", Redraws: 1})
	bm.RecordGeneration(ctx, GenerationStats{Level: "standard", Length: 8, Status: "error", Redraws: 10, Extensions: 3})

	bm.RecordSecurityScore(ctx, "audit", 73)
	bm.RecordSecurityScore(ctx, "audit", 21)
	bm.RecordSecurityScore(ctx, "report", 95)

	output := exposition(t, provider)

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="password".*operation="generate".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="password".*operation="generate".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="password".*operation="audit".*status="success"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="password".*operation="generate".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_sum`,
		`domain="password".*operation="generate".*status="success"`,
		``,
	)

	assertBizMetricLine(t, output, `integration_test_password_diversity_redraws_total`, `level="high"`, `3`)
	assertBizMetricLine(t, output, `integration_test_password_diversity_redraws_total`, `level="standard"`, `10`)
	assertBizMetricLine(t, output, `integration_test_password_stream_extensions_total`, `level="high"`, `1`)
	assertBizMetricLine(t, output, `integration_test_password_stream_extensions_total`, `level="standard"`, `3`)

	// Failed generations count redraws but not lengths.
	assertBizMetricLine(t, output, `integration_test_generated_password_length_count`, `level="high"`, `2`)
	assertBizMetricLine(t, output, `integration_test_generated_password_length_sum`, `level="high"`, `48`)
	assert.NotRegexp(t, `integration_test_generated_password_length_count\{[^}]*level="standard"`, output)

	assertBizMetricLine(t, output, `integration_test_password_security_score_count`, `operation="audit"`, `2`)
	assertBizMetricLine(t, output, `integration_test_password_security_score_bucket`, `operation="audit".*le="40"`, `1`)
	assertBizMetricLine(t, output, `integration_test_password_security_score_sum`, `operation="report"`, `95`)
}
