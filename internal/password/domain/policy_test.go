package domain

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	s := DefaultSettings()
	p := DefaultPolicy(s)

	require.NoError(t, p.Validate())
	assert.Equal(t, 8, p.MinLength)
	assert.Equal(t, 128, p.MaxLength)
	assert.Equal(t, RequiredClasses, p.RequiredClasses)
	assert.Equal(t, 20.0, p.MinEntropyBits)
	assert.Equal(t, 3, p.MinClassTypes)
	assert.Equal(t, 0.3, p.MaxRepetitionRatio)
	assert.Equal(t, SeverityLow, p.MaxPatternSeverity)
	assert.Equal(t, []string{"password", "123456", "qwerty"}, p.ForbiddenSubstrings)

	p.ForbiddenSubstrings[0] = "changed"
	assert.Equal(t, "password", s.ForbiddenSubstrings[0])
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Policy)
	}{
		{name: "Error_ZeroMinLength", mutate: func(p *Policy) { p.MinLength = 0 }},
		{name: "Error_MaxBelowMin", mutate: func(p *Policy) { p.MaxLength = 4 }},
		{name: "Error_UnknownClass", mutate: func(p *Policy) { p.RequiredClasses = []CharClass{ClassOther} }},
		{name: "Error_NegativeEntropy", mutate: func(p *Policy) { p.MinEntropyBits = -1 }},
		{name: "Error_NegativeClassTypes", mutate: func(p *Policy) { p.MinClassTypes = -1 }},
		{name: "Error_TooManyClassTypes", mutate: func(p *Policy) { p.MinClassTypes = 5 }},
		{name: "Error_NegativeRepetitionRatio", mutate: func(p *Policy) { p.MaxRepetitionRatio = -0.1 }},
		{name: "Error_RepetitionRatioAboveOne", mutate: func(p *Policy) { p.MaxRepetitionRatio = 1.1 }},
		{name: "Error_InvalidSeverity", mutate: func(p *Policy) { p.MaxPatternSeverity = Severity(-1) }},
		{name: "Error_EmptyForbiddenSubstring", mutate: func(p *Policy) { p.ForbiddenSubstrings = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy(DefaultSettings())
			tt.mutate(&p)

			assert.ErrorIs(t, p.Validate(), ErrInvalidPolicy)
		})
	}
}

func TestSeverity(t *testing.T) {
	t.Run("Success_ParseRoundTrip", func(t *testing.T) {
		for _, s := range []Severity{SeverityNone, SeverityLow, SeverityMedium, SeverityHigh} {
			parsed, err := ParseSeverity(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("Success_JSONUsesNames", func(t *testing.T) {
		data, err := json.Marshal(Pattern{Kind: PatternKeyboard, Value: "qwe", Severity: SeverityMedium})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"severity":"medium"`)

		var p Pattern
		require.NoError(t, json.Unmarshal(data, &p))
		assert.Equal(t, SeverityMedium, p.Severity)
	})

	t.Run("Error_UnknownName", func(t *testing.T) {
		_, err := ParseSeverity("critical")
		assert.ErrorIs(t, err, ErrInvalidSeverity)
		assert.Equal(t, "unknown", Severity(7).String())
	})
}

func TestAuditReport_Helpers(t *testing.T) {
	report := &AuditReport{
		ClassCounts: ClassCounts{Upper: 2, Lower: 3, Other: 1},
		Patterns:    []Pattern{{Kind: PatternSequential, Value: "abc", Severity: SeverityMedium}},
	}

	assert.Equal(t, 2, report.ClassCounts.Covered())
	assert.Equal(t, 3, report.ClassCounts.Get(ClassLower))
	assert.Equal(t, 1, report.ClassCounts.Get(ClassOther))
	assert.True(t, report.HasPattern(PatternSequential))
	assert.False(t, report.HasPattern(PatternDictionary))
}

func TestGenerateInput_RedactsPhrase(t *testing.T) {
	input := GenerateInput{Phrase: "my very secret phrase", Length: 16, Level: LevelHigh}

	for _, format := range []string{"%v", "%+v", "%s", "%#v"} {
		out := fmt.Sprintf(format, input)
		assert.NotContains(t, out, "secret phrase")
		assert.Contains(t, out, "REDACTED")
	}
}
