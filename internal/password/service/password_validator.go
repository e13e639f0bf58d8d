package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

type passwordValidator struct {
	policy  passwordDomain.Policy
	auditor SecurityAuditor
}

// NewPasswordValidator creates a PasswordValidator for policy. Entropy and pattern checks
// use auditor. The policy should already have passed Policy.Validate.
func NewPasswordValidator(policy passwordDomain.Policy, auditor SecurityAuditor) PasswordValidator {
	return &passwordValidator{policy: policy, auditor: auditor}
}

// Validate runs every check and collects all violations; no check masks another. The
// result is (true, empty) only when no violation was found.
func (v *passwordValidator) Validate(password string) (bool, []passwordDomain.PolicyViolation) {
	violations := make([]passwordDomain.PolicyViolation, 0)
	p := v.policy

	length := utf8.RuneCountInString(password)
	if length < p.MinLength {
		violations = append(violations, passwordDomain.PolicyViolation{
			Kind:   passwordDomain.ViolationLength,
			Detail: fmt.Sprintf("password must be at least %d characters", p.MinLength),
		})
	}
	if length > p.MaxLength {
		violations = append(violations, passwordDomain.PolicyViolation{
			Kind:   passwordDomain.ViolationLength,
			Detail: fmt.Sprintf("password must not exceed %d characters", p.MaxLength),
		})
	}

	present := make(map[passwordDomain.CharClass]bool, len(passwordDomain.RequiredClasses))
	for _, r := range password {
		present[passwordDomain.ClassOf(r)] = true
	}
	for _, class := range p.RequiredClasses {
		if !present[class] {
			violations = append(violations, passwordDomain.PolicyViolation{
				Kind:   passwordDomain.ViolationMissingClass,
				Detail: fmt.Sprintf("password must contain %s characters", class),
				Class:  class,
			})
		}
	}

	if p.MinClassTypes > 0 {
		types := 0
		for _, class := range passwordDomain.RequiredClasses {
			if present[class] {
				types++
			}
		}
		if types < p.MinClassTypes {
			violations = append(violations, passwordDomain.PolicyViolation{
				Kind: passwordDomain.ViolationClassTypes,
				Detail: fmt.Sprintf(
					"password mixes %d character types, at least %d required",
					types, p.MinClassTypes,
				),
			})
		}
	}

	// An empty password has no report; it carries zero entropy and no patterns.
	report, err := v.auditor.Audit(password)
	var entropy float64
	if err == nil {
		entropy = report.ActualEntropyBits
	}
	if entropy < p.MinEntropyBits {
		violations = append(violations, passwordDomain.PolicyViolation{
			Kind: passwordDomain.ViolationLowEntropy,
			Detail: fmt.Sprintf(
				"password entropy %.1f bits is below the minimum of %.1f bits",
				entropy, p.MinEntropyBits,
			),
		})
	}

	if report != nil && p.MaxRepetitionRatio > 0 && report.RepetitionRatio > p.MaxRepetitionRatio {
		violations = append(violations, passwordDomain.PolicyViolation{
			Kind: passwordDomain.ViolationRepetition,
			Detail: fmt.Sprintf(
				"password repetition ratio %.2f exceeds the maximum of %.2f",
				report.RepetitionRatio, p.MaxRepetitionRatio,
			),
		})
	}

	if report != nil {
		for _, pattern := range report.Patterns {
			if pattern.Severity <= p.MaxPatternSeverity {
				continue
			}
			detected := pattern
			violations = append(violations, passwordDomain.PolicyViolation{
				Kind: passwordDomain.ViolationForbiddenPattern,
				Detail: fmt.Sprintf(
					"password contains a %s %s pattern at position %d",
					pattern.Severity, pattern.Kind, pattern.Position,
				),
				Pattern: &detected,
			})
		}
	}

	lowered := strings.ToLower(password)
	for _, forbidden := range p.ForbiddenSubstrings {
		if strings.Contains(lowered, strings.ToLower(forbidden)) {
			violations = append(violations, passwordDomain.PolicyViolation{
				Kind:   passwordDomain.ViolationForbiddenPattern,
				Detail: fmt.Sprintf("password contains forbidden pattern: %s", forbidden),
			})
		}
	}

	return len(violations) == 0, violations
}
