// Package mocks provides mock implementations of the password use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockGeneratorUseCase is a mock implementation of GeneratorUseCase.
type MockGeneratorUseCase struct {
	mock.Mock
}

// NewMockGeneratorUseCase creates a MockGeneratorUseCase whose expectations are asserted on cleanup.
func NewMockGeneratorUseCase(t testingT) *MockGeneratorUseCase {
	m := &MockGeneratorUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Generate mocks the Generate method of GeneratorUseCase.
func (m *MockGeneratorUseCase) Generate(ctx context.Context, input passwordDomain.GenerateInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// MockReportUseCase is a mock implementation of ReportUseCase.
type MockReportUseCase struct {
	mock.Mock
}

// NewMockReportUseCase creates a MockReportUseCase whose expectations are asserted on cleanup.
func NewMockReportUseCase(t testingT) *MockReportUseCase {
	m := &MockReportUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Audit mocks the Audit method of ReportUseCase.
func (m *MockReportUseCase) Audit(ctx context.Context, password string) (*passwordDomain.AuditReport, error) {
	args := m.Called(ctx, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*passwordDomain.AuditReport), args.Error(1)
}

// Validate mocks the Validate method of ReportUseCase.
func (m *MockReportUseCase) Validate(
	ctx context.Context,
	password string,
	policy *passwordDomain.Policy,
) (*passwordDomain.ValidationResult, error) {
	args := m.Called(ctx, password, policy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*passwordDomain.ValidationResult), args.Error(1)
}

// Report mocks the Report method of ReportUseCase.
func (m *MockReportUseCase) Report(ctx context.Context, password string) (*passwordDomain.SecurityReport, error) {
	args := m.Called(ctx, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*passwordDomain.SecurityReport), args.Error(1)
}
