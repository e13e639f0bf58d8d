package domain

import (
	"time"

	"github.com/google/uuid"
)

// PatternKind identifies a class of weakness found by the auditor.
type PatternKind string

const (
	PatternSequential PatternKind = "sequential"
	PatternKeyboard   PatternKind = "keyboard"
	PatternRepetition PatternKind = "repetition"
	PatternDictionary PatternKind = "dictionary"

	// PatternSubstitution is a look-alike character standing in for a letter of a
	// dictionary word, e.g. "a->@".
	PatternSubstitution PatternKind = "substitution"
)

// Severity ranks detected patterns. Higher values are worse.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

// Validate checks if the severity is a known value.
func (s Severity) Validate() error {
	if s < SeverityNone || s > SeverityHigh {
		return ErrInvalidSeverity
	}
	return nil
}

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a severity name into a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "none":
		return SeverityNone, nil
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	default:
		return SeverityNone, ErrInvalidSeverity
	}
}

// Pattern is a weakness detected in a password.
type Pattern struct {
	Kind     PatternKind `json:"kind"`
	Value    string      `json:"value"`
	Position int         `json:"position"`
	Severity Severity    `json:"severity"`
}

// ClassCounts tallies characters per class.
type ClassCounts struct {
	Upper  int `json:"upper"`
	Lower  int `json:"lower"`
	Digit  int `json:"digit"`
	Symbol int `json:"symbol"`
	Other  int `json:"other"`
}

// Get returns the count for class.
func (c ClassCounts) Get(class CharClass) int {
	switch class {
	case ClassUpper:
		return c.Upper
	case ClassLower:
		return c.Lower
	case ClassDigit:
		return c.Digit
	case ClassSymbol:
		return c.Symbol
	default:
		return c.Other
	}
}

// Covered returns how many of the four required classes are present.
func (c ClassCounts) Covered() int {
	n := 0
	for _, class := range RequiredClasses {
		if c.Get(class) > 0 {
			n++
		}
	}
	return n
}

// AuditReport holds the metrics computed for a single password. Values are never
// modified after the auditor returns them.
type AuditReport struct {
	Length                 int         `json:"length"`
	DistinctCount          int         `json:"distinct_count"`
	TheoreticalEntropyBits float64     `json:"theoretical_entropy_bits"`
	ObservedEntropyBits    float64     `json:"observed_entropy_bits"`
	ShannonEntropyPerChar  float64     `json:"shannon_entropy_per_char"`
	ActualEntropyBits      float64     `json:"actual_entropy_bits"`
	RepetitionRatio        float64     `json:"repetition_ratio"`
	ClassCounts            ClassCounts `json:"character_class_counts"`
	DiversityScore         float64     `json:"diversity_score"`
	Patterns               []Pattern   `json:"detected_patterns"`
	SecurityScore          int         `json:"security_score"`
}

// HasPattern reports whether a pattern of the given kind was detected.
func (r *AuditReport) HasPattern(kind PatternKind) bool {
	for _, p := range r.Patterns {
		if p.Kind == kind {
			return true
		}
	}
	return false
}

// Compliance records whether a password meets common published baselines.
type Compliance struct {
	NISTBasic         bool `json:"nist_basic"`
	NISTEnhanced      bool `json:"nist_enhanced"`
	PCIDSS            bool `json:"pci_dss"`
	ISO27001          bool `json:"iso27001"`
	EnterpriseMinimum bool `json:"enterprise_minimum"`
}

// ValidationResult is the outcome of validating a password against a policy.
type ValidationResult struct {
	Valid      bool              `json:"is_valid"`
	Violations []PolicyViolation `json:"violations"`
}

// ReportSummary condenses an audit into human-readable findings.
type ReportSummary struct {
	Rating          string     `json:"overall_rating"`
	Strengths       []string   `json:"key_strengths"`
	Weaknesses      []string   `json:"key_weaknesses"`
	Recommendations []string   `json:"recommendations"`
	Compliance      Compliance `json:"compliance_status"`
}

// SecurityReport combines audit, validation and summary for one password.
// It never contains the password itself, only a masked form.
type SecurityReport struct {
	ID             uuid.UUID        `json:"id"`
	GeneratedAt    time.Time        `json:"generated_at"`
	MaskedPassword string           `json:"password_masked"`
	Audit          *AuditReport     `json:"audit_results"`
	Validation     ValidationResult `json:"validation_results"`
	Summary        ReportSummary    `json:"summary"`
}
