package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// GenerationStats describes the internals of one password generation call.
type GenerationStats struct {
	Level  string
	Length int
	Status string

	// Redraws counts candidates rejected by the character diversity check.
	Redraws int

	// Extensions counts extra entropy batches the encoder had to request.
	Extensions int
}

// BusinessMetrics defines the interface for recording password operation metrics.
type BusinessMetrics interface {
	// RecordOperation records a business operation with its status.
	// Domain example: "password"
	// Operation examples: "generate", "audit", "validate", "report"
	// Status examples: "success", "error"
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the duration of a business operation with its status.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordGeneration records diversity redraws and entropy stream extensions per level,
	// and the password length of successful generations.
	RecordGeneration(ctx context.Context, stats GenerationStats)

	// RecordSecurityScore records the 0..100 score of an analysed password.
	RecordSecurityScore(ctx context.Context, operation string, score int)
}

var (
	lengthBuckets = []float64{8, 12, 16, 24, 32, 48, 64, 96, 128}
	scoreBuckets  = []float64{20, 40, 60, 75, 90, 100}
)

// businessMetrics implements BusinessMetrics using OpenTelemetry metrics.
type businessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
	redraws    metric.Int64Counter
	extensions metric.Int64Counter
	lengths    metric.Int64Histogram
	scores     metric.Int64Histogram
}

// NewBusinessMetrics creates the instruments on meterProvider. Every metric name is
// prefixed with namespace (e.g., "fibrohash").
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)
	name := func(suffix string) string { return fmt.Sprintf("%s_%s", namespace, suffix) }

	var (
		b   businessMetrics
		err error
	)

	if b.operations, err = meter.Int64Counter(
		name("operations_total"),
		metric.WithDescription("Total number of password operations"),
		metric.WithUnit("{operation}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	if b.durations, err = meter.Float64Histogram(
		name("operation_duration_seconds"),
		metric.WithDescription("Duration of password operations in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	if b.redraws, err = meter.Int64Counter(
		name("password_diversity_redraws_total"),
		metric.WithDescription("Candidates rejected by the character diversity check"),
		metric.WithUnit("{redraw}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create redraw counter: %w", err)
	}

	if b.extensions, err = meter.Int64Counter(
		name("password_stream_extensions_total"),
		metric.WithDescription("Extra entropy batches requested while encoding"),
		metric.WithUnit("{batch}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create extension counter: %w", err)
	}

	if b.lengths, err = meter.Int64Histogram(
		name("generated_password_length"),
		metric.WithDescription("Length of generated passwords in characters"),
		metric.WithUnit("{character}"),
		metric.WithExplicitBucketBoundaries(lengthBuckets...),
	); err != nil {
		return nil, fmt.Errorf("failed to create length histogram: %w", err)
	}

	if b.scores, err = meter.Int64Histogram(
		name("password_security_score"),
		metric.WithDescription("Security score of analysed passwords"),
		metric.WithUnit("{point}"),
		metric.WithExplicitBucketBoundaries(scoreBuckets...),
	); err != nil {
		return nil, fmt.Errorf("failed to create score histogram: %w", err)
	}

	return &b, nil
}

// RecordOperation increments the operation counter.
func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

// RecordDuration records the operation duration in seconds.
func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

// RecordGeneration adds the redraw and extension counts under the level label. Zero
// counts are still added so every level that ran shows up in the exposition.
func (b *businessMetrics) RecordGeneration(ctx context.Context, stats GenerationStats) {
	level := metric.WithAttributes(attribute.String("level", stats.Level))

	b.redraws.Add(ctx, int64(stats.Redraws), level)
	b.extensions.Add(ctx, int64(stats.Extensions), level)
	if stats.Status == "success" {
		b.lengths.Record(ctx, int64(stats.Length), level)
	}
}

// RecordSecurityScore records score under the operation label.
func (b *businessMetrics) RecordSecurityScore(ctx context.Context, operation string, score int) {
	b.scores.Record(ctx, int64(score), metric.WithAttributes(attribute.String("operation", operation)))
}

// NoOpBusinessMetrics is used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (n *NoOpBusinessMetrics) RecordGeneration(ctx context.Context, stats GenerationStats) {}

func (n *NoOpBusinessMetrics) RecordSecurityScore(ctx context.Context, operation string, score int) {}
