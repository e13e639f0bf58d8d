package usecase

import (
	"strings"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

// Rating names, from best to worst.
const (
	RatingExcellent = "Excellent"
	RatingVeryGood  = "Very Good"
	RatingGood      = "Good"
	RatingFair      = "Fair"
	RatingPoor      = "Poor"
)

// summarize builds the report summary from an audit and its policy violations.
func summarize(
	audit *passwordDomain.AuditReport,
	violations []passwordDomain.PolicyViolation,
	targetEntropyBits float64,
) passwordDomain.ReportSummary {
	return passwordDomain.ReportSummary{
		Rating:          ratingFromScore(audit.SecurityScore),
		Strengths:       strengths(audit, targetEntropyBits),
		Weaknesses:      weaknesses(audit, violations),
		Recommendations: recommendations(audit),
		Compliance:      compliance(audit),
	}
}

// ratingFromScore converts a 0..100 security score to a rating.
func ratingFromScore(score int) string {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 75:
		return RatingVeryGood
	case score >= 60:
		return RatingGood
	case score >= 40:
		return RatingFair
	default:
		return RatingPoor
	}
}

func strengths(audit *passwordDomain.AuditReport, targetEntropyBits float64) []string {
	found := make([]string, 0)
	if audit.Length >= 16 {
		found = append(found, "Good length")
	}
	if audit.DiversityScore >= 75 {
		found = append(found, "High character diversity")
	}
	if audit.ActualEntropyBits >= 0.7*targetEntropyBits {
		found = append(found, "High entropy")
	}
	if !audit.HasPattern(passwordDomain.PatternDictionary) {
		found = append(found, "No common dictionary words")
	}
	if audit.RepetitionRatio < 0.2 {
		found = append(found, "Low character repetition")
	}
	return found
}

func weaknesses(audit *passwordDomain.AuditReport, violations []passwordDomain.PolicyViolation) []string {
	found := make([]string, 0, len(violations))
	for _, v := range violations {
		found = append(found, v.Detail)
	}
	if audit.HasPattern(passwordDomain.PatternSequential) {
		found = append(found, "Contains sequential patterns")
	}
	if audit.HasPattern(passwordDomain.PatternKeyboard) {
		found = append(found, "Contains keyboard patterns")
	}
	if audit.HasPattern(passwordDomain.PatternSubstitution) {
		found = append(found, "Contains predictable character substitutions")
	}
	if audit.RepetitionRatio > 0.4 {
		found = append(found, "High character repetition")
	}
	return found
}

func recommendations(audit *passwordDomain.AuditReport) []string {
	found := make([]string, 0)
	if audit.Length < 12 {
		found = append(found, "Increase password length to at least 12 characters")
	}

	counts := audit.ClassCounts
	if counts.Upper == 0 {
		found = append(found, "Add uppercase letters")
	}
	if counts.Lower == 0 {
		found = append(found, "Add lowercase letters")
	}
	if counts.Digit == 0 {
		found = append(found, "Add numeric digits")
	}
	if counts.Symbol == 0 {
		found = append(found, "Add special characters")
	}

	if audit.HasPattern(passwordDomain.PatternSequential) {
		found = append(found, "Avoid sequential character patterns")
	}
	if audit.HasPattern(passwordDomain.PatternRepetition) {
		found = append(found, "Reduce repeated substrings")
	}
	if audit.HasPattern(passwordDomain.PatternKeyboard) {
		found = append(found, "Avoid keyboard patterns")
	}
	if audit.HasPattern(passwordDomain.PatternDictionary) {
		found = append(found, "Avoid common dictionary words")
	}
	if audit.HasPattern(passwordDomain.PatternSubstitution) {
		found = append(found, "Avoid look-alike substitutions such as @ for a")
	}
	if audit.RepetitionRatio > 0.3 {
		found = append(found, "Reduce character repetition")
	}
	return found
}

// compliance checks published length and composition baselines.
func compliance(audit *passwordDomain.AuditReport) passwordDomain.Compliance {
	c := audit.ClassCounts
	n := audit.Length
	hasUpper, hasLower, hasDigit, hasSymbol := c.Upper > 0, c.Lower > 0, c.Digit > 0, c.Symbol > 0

	return passwordDomain.Compliance{
		NISTBasic:         n >= 8,
		NISTEnhanced:      n >= 14,
		PCIDSS:            n >= 7 && hasUpper && hasLower && hasDigit,
		ISO27001:          n >= 8 && hasUpper && hasLower && hasDigit && hasSymbol,
		EnterpriseMinimum: n >= 12,
	}
}

// maskPassword keeps the first and last three characters of passwords longer than six
// and masks everything else.
func maskPassword(password string) string {
	runes := []rune(password)
	n := len(runes)
	if n <= 6 {
		return strings.Repeat("*", n)
	}
	return string(runes[:3]) + strings.Repeat("*", n-6) + string(runes[n-3:])
}
