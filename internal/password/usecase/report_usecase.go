package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
	passwordService "github.com/allisson/fibrohash/internal/password/service"
)

// reportUseCase implements ReportUseCase.
type reportUseCase struct {
	settings  *passwordDomain.Settings
	auditor   passwordService.SecurityAuditor
	validator passwordService.PasswordValidator
}

// Audit computes the audit report for password.
func (r *reportUseCase) Audit(_ context.Context, password string) (*passwordDomain.AuditReport, error) {
	return r.auditor.Audit(password)
}

// Validate checks password against policy, falling back to the default policy.
func (r *reportUseCase) Validate(
	_ context.Context,
	password string,
	policy *passwordDomain.Policy,
) (*passwordDomain.ValidationResult, error) {
	validator := r.validator
	if policy != nil {
		if err := policy.Validate(); err != nil {
			return nil, err
		}
		validator = passwordService.NewPasswordValidator(*policy, r.auditor)
	}

	valid, violations := validator.Validate(password)
	return &passwordDomain.ValidationResult{Valid: valid, Violations: violations}, nil
}

// Report audits and validates password and summarizes the findings. The report holds a
// masked form of the password only.
func (r *reportUseCase) Report(_ context.Context, password string) (*passwordDomain.SecurityReport, error) {
	audit, err := r.auditor.Audit(password)
	if err != nil {
		return nil, err
	}

	valid, violations := r.validator.Validate(password)

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report id: %w", err)
	}

	return &passwordDomain.SecurityReport{
		ID:             id,
		GeneratedAt:    time.Now().UTC(),
		MaskedPassword: maskPassword(password),
		Audit:          audit,
		Validation: passwordDomain.ValidationResult{
			Valid:      valid,
			Violations: violations,
		},
		Summary: summarize(audit, violations, r.settings.Weights.TargetEntropyBits),
	}, nil
}

// NewReportUseCase creates a new ReportUseCase. validator applies the default policy.
func NewReportUseCase(
	settings *passwordDomain.Settings,
	auditor passwordService.SecurityAuditor,
	validator passwordService.PasswordValidator,
) ReportUseCase {
	return &reportUseCase{
		settings:  settings,
		auditor:   auditor,
		validator: validator,
	}
}
