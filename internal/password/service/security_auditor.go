package service

import (
	"math"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

type securityAuditor struct {
	alphabetSize int
	weights      passwordDomain.ScoreWeights
}

// NewSecurityAuditor creates a SecurityAuditor. The theoretical entropy is computed over
// the configured alphabet and the score uses the configured weights.
func NewSecurityAuditor(settings *passwordDomain.Settings) SecurityAuditor {
	return &securityAuditor{
		alphabetSize: settings.Alphabet.Size(),
		weights:      settings.Weights,
	}
}

// Audit computes entropy metrics, class counts, diversity, detected patterns and the
// overall score for password. It has no side effects and returns equal reports for
// equal inputs. An empty password returns ErrEmptyPassword.
func (a *securityAuditor) Audit(password string) (*passwordDomain.AuditReport, error) {
	if password == "" {
		return nil, passwordDomain.ErrEmptyPassword
	}

	runes := []rune(password)
	n := len(runes)

	freq := make(map[rune]int, n)
	order := make([]rune, 0, n)
	var counts passwordDomain.ClassCounts

	for _, r := range runes {
		if freq[r] == 0 {
			order = append(order, r)
		}
		freq[r]++

		switch passwordDomain.ClassOf(r) {
		case passwordDomain.ClassUpper:
			counts.Upper++
		case passwordDomain.ClassLower:
			counts.Lower++
		case passwordDomain.ClassDigit:
			counts.Digit++
		case passwordDomain.ClassSymbol:
			counts.Symbol++
		default:
			counts.Other++
		}
	}

	distinct := len(order)

	// Sum in first-appearance order so repeated audits are bit-for-bit identical.
	var shannon float64
	for _, r := range order {
		p := float64(freq[r]) / float64(n)
		shannon -= p * math.Log2(p)
	}

	var observed float64
	if distinct > 1 {
		observed = float64(n) * math.Log2(float64(distinct))
	}

	report := &passwordDomain.AuditReport{
		Length:                 n,
		DistinctCount:          distinct,
		TheoreticalEntropyBits: TheoreticalEntropyBits(n, a.alphabetSize),
		ObservedEntropyBits:    observed,
		ShannonEntropyPerChar:  shannon,
		ActualEntropyBits:      shannon * float64(n),
		RepetitionRatio:        1 - float64(distinct)/float64(n),
		ClassCounts:            counts,
		Patterns:               detectPatterns(runes),
	}

	report.DiversityScore = a.diversityScore(counts, distinct, n)
	report.SecurityScore = a.securityScore(report)

	return report, nil
}

// TheoreticalEntropyBits returns length * log2(alphabetSize).
func TheoreticalEntropyBits(length, alphabetSize int) float64 {
	if length <= 0 || alphabetSize <= 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabetSize))
}

// diversityScore blends class coverage with the distinct-character ratio on a 0..100 scale.
func (a *securityAuditor) diversityScore(counts passwordDomain.ClassCounts, distinct, n int) float64 {
	coverage := float64(counts.Covered()) / float64(len(passwordDomain.RequiredClasses))
	ratio := float64(distinct) / float64(n)
	score := 100 * (a.weights.DiversityClassWeight*coverage + a.weights.DiversityDistinctWeight*ratio)
	return math.Min(100, math.Max(0, score))
}

// securityScore combines entropy adequacy, diversity and pattern penalties into 0..100.
func (a *securityAuditor) securityScore(report *passwordDomain.AuditReport) int {
	w := a.weights

	entropyFactor := math.Min(1, report.ActualEntropyBits/w.TargetEntropyBits)

	var penalty float64
	for _, p := range report.Patterns {
		penalty += w.Penalty(p.Severity)
	}
	patternFactor := math.Max(0, 1-penalty/100)

	score := w.EntropyWeight*entropyFactor +
		w.DiversityWeight*report.DiversityScore/100 +
		w.PatternWeight*patternFactor

	return int(math.Min(100, math.Max(0, math.Round(score))))
}
