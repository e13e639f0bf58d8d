// Package mocks provides mock implementations of the password service interfaces for testing.
package mocks

import (
	"github.com/stretchr/testify/mock"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
	passwordService "github.com/allisson/fibrohash/internal/password/service"
)

// testingT is the subset of testing.T the mock constructors need.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockKeyDeriver is a mock implementation of KeyDeriver.
type MockKeyDeriver struct {
	mock.Mock
}

// NewMockKeyDeriver creates a MockKeyDeriver whose expectations are asserted on cleanup.
func NewMockKeyDeriver(t testingT) *MockKeyDeriver {
	m := &MockKeyDeriver{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Derive mocks the Derive method of KeyDeriver.
func (m *MockKeyDeriver) Derive(phrase, salt []byte, iterations, keyLength int) ([]byte, error) {
	args := m.Called(phrase, salt, iterations, keyLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockEntropyStream is a mock implementation of EntropyStream.
type MockEntropyStream struct {
	mock.Mock
}

// NewMockEntropyStream creates a MockEntropyStream whose expectations are asserted on cleanup.
func NewMockEntropyStream(t testingT) *MockEntropyStream {
	m := &MockEntropyStream{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ReadByte mocks the ReadByte method of EntropyStream.
func (m *MockEntropyStream) ReadByte() (byte, error) {
	args := m.Called()
	return args.Get(0).(byte), args.Error(1)
}

// Extend mocks the Extend method of EntropyStream.
func (m *MockEntropyStream) Extend() error {
	args := m.Called()
	return args.Error(0)
}

// Close mocks the Close method of EntropyStream.
func (m *MockEntropyStream) Close() {
	m.Called()
}

// MockEntropyExpander is a mock implementation of EntropyExpander.
type MockEntropyExpander struct {
	mock.Mock
}

// NewMockEntropyExpander creates a MockEntropyExpander whose expectations are asserted on cleanup.
func NewMockEntropyExpander(t testingT) *MockEntropyExpander {
	m := &MockEntropyExpander{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Expand mocks the Expand method of EntropyExpander.
func (m *MockEntropyExpander) Expand(
	seed []byte,
	rounds, maxBatches int,
) (passwordService.EntropyStream, error) {
	args := m.Called(seed, rounds, maxBatches)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(passwordService.EntropyStream), args.Error(1)
}

// MockCharacterEncoder is a mock implementation of CharacterEncoder.
type MockCharacterEncoder struct {
	mock.Mock
}

// NewMockCharacterEncoder creates a MockCharacterEncoder whose expectations are asserted on cleanup.
func NewMockCharacterEncoder(t testingT) *MockCharacterEncoder {
	m := &MockCharacterEncoder{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Encode mocks the Encode method of CharacterEncoder.
func (m *MockCharacterEncoder) Encode(
	stream passwordService.EntropyStream,
	alphabet *passwordDomain.Alphabet,
	length int,
) ([]rune, error) {
	args := m.Called(stream, alphabet, length)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rune), args.Error(1)
}

// MockPhraseSanitizer is a mock implementation of PhraseSanitizer.
type MockPhraseSanitizer struct {
	mock.Mock
}

// NewMockPhraseSanitizer creates a MockPhraseSanitizer whose expectations are asserted on cleanup.
func NewMockPhraseSanitizer(t testingT) *MockPhraseSanitizer {
	m := &MockPhraseSanitizer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Sanitize mocks the Sanitize method of PhraseSanitizer.
func (m *MockPhraseSanitizer) Sanitize(phrase string) ([]byte, error) {
	args := m.Called(phrase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockSecurityAuditor is a mock implementation of SecurityAuditor.
type MockSecurityAuditor struct {
	mock.Mock
}

// NewMockSecurityAuditor creates a MockSecurityAuditor whose expectations are asserted on cleanup.
func NewMockSecurityAuditor(t testingT) *MockSecurityAuditor {
	m := &MockSecurityAuditor{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Audit mocks the Audit method of SecurityAuditor.
func (m *MockSecurityAuditor) Audit(password string) (*passwordDomain.AuditReport, error) {
	args := m.Called(password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*passwordDomain.AuditReport), args.Error(1)
}

// MockPasswordValidator is a mock implementation of PasswordValidator.
type MockPasswordValidator struct {
	mock.Mock
}

// NewMockPasswordValidator creates a MockPasswordValidator whose expectations are asserted on cleanup.
func NewMockPasswordValidator(t testingT) *MockPasswordValidator {
	m := &MockPasswordValidator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Validate mocks the Validate method of PasswordValidator.
func (m *MockPasswordValidator) Validate(password string) (bool, []passwordDomain.PolicyViolation) {
	args := m.Called(password)
	violations, _ := args.Get(1).([]passwordDomain.PolicyViolation)
	return args.Bool(0), violations
}

var (
	_ passwordService.KeyDeriver        = (*MockKeyDeriver)(nil)
	_ passwordService.EntropyStream     = (*MockEntropyStream)(nil)
	_ passwordService.EntropyExpander   = (*MockEntropyExpander)(nil)
	_ passwordService.CharacterEncoder  = (*MockCharacterEncoder)(nil)
	_ passwordService.PhraseSanitizer   = (*MockPhraseSanitizer)(nil)
	_ passwordService.SecurityAuditor   = (*MockSecurityAuditor)(nil)
	_ passwordService.PasswordValidator = (*MockPasswordValidator)(nil)
)
