package usecase

import (
	"context"
	"time"

	"github.com/allisson/fibrohash/internal/metrics"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

const metricsDomain = "password"

func operationStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// generatorUseCaseWithMetrics decorates GeneratorUseCase with metrics instrumentation.
type generatorUseCaseWithMetrics struct {
	next    GeneratorUseCase
	metrics metrics.BusinessMetrics
}

// NewGeneratorUseCaseWithMetrics wraps a GeneratorUseCase with metrics recording.
func NewGeneratorUseCaseWithMetrics(useCase GeneratorUseCase, m metrics.BusinessMetrics) GeneratorUseCase {
	return &generatorUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for password generation.
func (g *generatorUseCaseWithMetrics) Generate(
	ctx context.Context,
	input passwordDomain.GenerateInput,
) (string, error) {
	start := time.Now()
	password, err := g.next.Generate(ctx, input)

	status := operationStatus(err)
	g.metrics.RecordOperation(ctx, metricsDomain, "generate", status)
	g.metrics.RecordDuration(ctx, metricsDomain, "generate", time.Since(start), status)

	return password, err
}

// reportUseCaseWithMetrics decorates ReportUseCase with metrics instrumentation.
type reportUseCaseWithMetrics struct {
	next    ReportUseCase
	metrics metrics.BusinessMetrics
}

// NewReportUseCaseWithMetrics wraps a ReportUseCase with metrics recording.
func NewReportUseCaseWithMetrics(useCase ReportUseCase, m metrics.BusinessMetrics) ReportUseCase {
	return &reportUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Audit records metrics for password audits.
func (r *reportUseCaseWithMetrics) Audit(ctx context.Context, password string) (*passwordDomain.AuditReport, error) {
	start := time.Now()
	report, err := r.next.Audit(ctx, password)

	status := operationStatus(err)
	r.metrics.RecordOperation(ctx, metricsDomain, "audit", status)
	r.metrics.RecordDuration(ctx, metricsDomain, "audit", time.Since(start), status)
	if report != nil {
		r.metrics.RecordSecurityScore(ctx, "audit", report.SecurityScore)
	}

	return report, err
}

// Validate records metrics for policy validation.
func (r *reportUseCaseWithMetrics) Validate(
	ctx context.Context,
	password string,
	policy *passwordDomain.Policy,
) (*passwordDomain.ValidationResult, error) {
	start := time.Now()
	result, err := r.next.Validate(ctx, password, policy)

	status := operationStatus(err)
	r.metrics.RecordOperation(ctx, metricsDomain, "validate", status)
	r.metrics.RecordDuration(ctx, metricsDomain, "validate", time.Since(start), status)

	return result, err
}

// Report records metrics for security report generation.
func (r *reportUseCaseWithMetrics) Report(
	ctx context.Context,
	password string,
) (*passwordDomain.SecurityReport, error) {
	start := time.Now()
	report, err := r.next.Report(ctx, password)

	status := operationStatus(err)
	r.metrics.RecordOperation(ctx, metricsDomain, "report", status)
	r.metrics.RecordDuration(ctx, metricsDomain, "report", time.Since(start), status)
	if report != nil && report.Audit != nil {
		r.metrics.RecordSecurityScore(ctx, "report", report.Audit.SecurityScore)
	}

	return report, err
}
