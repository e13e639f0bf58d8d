package domain

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/fibrohash/internal/errors"
	customValidation "github.com/allisson/fibrohash/internal/validation"
)

// ViolationKind enumerates the reasons a password can fail a policy.
type ViolationKind string

const (
	ViolationLength           ViolationKind = "length"
	ViolationMissingClass     ViolationKind = "missing_class"
	ViolationClassTypes       ViolationKind = "class_types"
	ViolationLowEntropy       ViolationKind = "low_entropy"
	ViolationRepetition       ViolationKind = "repetition"
	ViolationForbiddenPattern ViolationKind = "forbidden_pattern"
)

// PolicyViolation is a single failed policy check. Class is set only for
// ViolationMissingClass and Pattern only for detected-pattern violations.
type PolicyViolation struct {
	Kind    ViolationKind `json:"kind"`
	Detail  string        `json:"detail"`
	Class   CharClass     `json:"class,omitempty"`
	Pattern *Pattern      `json:"pattern,omitempty"`
}

// String returns the violation detail.
func (v PolicyViolation) String() string {
	return v.Detail
}

// Policy is the set of rules a password is validated against.
type Policy struct {
	MinLength int `json:"min_length"`
	MaxLength int `json:"max_length"`

	// RequiredClasses lists classes that must appear at least once.
	RequiredClasses []CharClass `json:"required_classes"`

	// MinClassTypes is how many of the four character classes must appear, whichever
	// they are. Zero disables the check.
	MinClassTypes int `json:"min_class_types"`

	// MinEntropyBits is the minimum Shannon entropy (bits over the whole password).
	MinEntropyBits float64 `json:"min_entropy_bits"`

	// MaxRepetitionRatio caps 1 - distinct/length. Zero disables the check.
	MaxRepetitionRatio float64 `json:"max_repetition_ratio"`

	// MaxPatternSeverity is the highest tolerated severity of a detected pattern.
	MaxPatternSeverity Severity `json:"max_pattern_severity"`

	// ForbiddenSubstrings are rejected case-insensitively wherever they appear.
	ForbiddenSubstrings []string `json:"forbidden_substrings"`
}

// DefaultPolicy derives the validation policy from generation settings.
func DefaultPolicy(s *Settings) Policy {
	forbidden := make([]string, len(s.ForbiddenSubstrings))
	copy(forbidden, s.ForbiddenSubstrings)

	return Policy{
		MinLength:           s.MinLength,
		MaxLength:           s.MaxLength,
		RequiredClasses:     append([]CharClass(nil), RequiredClasses...),
		MinClassTypes:       s.MinClassTypes,
		MinEntropyBits:      s.MinEntropyBits,
		MaxRepetitionRatio:  s.MaxRepetitionRatio,
		MaxPatternSeverity:  s.MaxPatternSeverity,
		ForbiddenSubstrings: forbidden,
	}
}

// Validate checks the policy is internally consistent.
func (p Policy) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.MinLength, validation.Required, validation.Min(1)),
		validation.Field(&p.MaxLength, validation.Required, validation.Min(p.MinLength)),
		validation.Field(&p.RequiredClasses, validation.Each(validation.In(
			ClassUpper, ClassLower, ClassDigit, ClassSymbol,
		))),
		validation.Field(&p.MinClassTypes, validation.Min(0), validation.Max(len(RequiredClasses))),
		validation.Field(&p.MinEntropyBits, validation.Min(0.0)),
		validation.Field(&p.MaxRepetitionRatio, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&p.MaxPatternSeverity),
		validation.Field(&p.ForbiddenSubstrings, validation.Each(validation.Required, customValidation.NotBlank)),
	)
	if err != nil {
		return errors.Wrap(ErrInvalidPolicy, err.Error())
	}
	return nil
}
