// Package usecase defines interfaces and implementations for password use cases.
// Provides phrase-based password generation and security analysis (audit, policy
// validation and full security reports).
package usecase

import (
	"context"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

// GeneratorUseCase defines the interface for password generation.
type GeneratorUseCase interface {
	// Generate derives a password from the input phrase. Zero length and empty level
	// fall back to the configured defaults. Invalid input fails before any cryptographic
	// work. Two calls with identical input return different passwords.
	Generate(ctx context.Context, input passwordDomain.GenerateInput) (string, error)
}

// ReportUseCase defines the interface for analysing passwords.
type ReportUseCase interface {
	// Audit computes the audit report for password.
	Audit(ctx context.Context, password string) (*passwordDomain.AuditReport, error)

	// Validate checks password against policy, or the default policy when policy is nil.
	// Returns an error only when the supplied policy itself is invalid.
	Validate(
		ctx context.Context,
		password string,
		policy *passwordDomain.Policy,
	) (*passwordDomain.ValidationResult, error)

	// Report combines audit, default-policy validation and a summary.
	Report(ctx context.Context, password string) (*passwordDomain.SecurityReport, error)
}
