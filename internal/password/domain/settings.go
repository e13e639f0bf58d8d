package domain

import (
	"fmt"

	validation "github.com/jellydator/validation"

	"github.com/allisson/fibrohash/internal/errors"
	customValidation "github.com/allisson/fibrohash/internal/validation"
)

// ScoreWeights are the tunable constants of the audit scoring model.
type ScoreWeights struct {
	// EntropyWeight, DiversityWeight and PatternWeight split the 100-point security score.
	EntropyWeight   float64 `json:"entropy_weight"`
	DiversityWeight float64 `json:"diversity_weight"`
	PatternWeight   float64 `json:"pattern_weight"`

	// DiversityClassWeight and DiversityDistinctWeight split the diversity score between
	// class coverage and the distinct-character ratio. They must sum to 1.
	DiversityClassWeight    float64 `json:"diversity_class_weight"`
	DiversityDistinctWeight float64 `json:"diversity_distinct_weight"`

	// TargetEntropyBits is the Shannon entropy at which the entropy component saturates.
	TargetEntropyBits float64 `json:"target_entropy_bits"`

	// Per-pattern penalties, in points out of 100, subtracted from the pattern component.
	PenaltyLow    float64 `json:"penalty_low"`
	PenaltyMedium float64 `json:"penalty_medium"`
	PenaltyHigh   float64 `json:"penalty_high"`
}

// DefaultScoreWeights returns the default scoring model.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		EntropyWeight:           40,
		DiversityWeight:         30,
		PatternWeight:           30,
		DiversityClassWeight:    0.6,
		DiversityDistinctWeight: 0.4,
		TargetEntropyBits:       128,
		PenaltyLow:              5,
		PenaltyMedium:           15,
		PenaltyHigh:             30,
	}
}

// Penalty returns the configured penalty for a pattern of severity s.
func (w ScoreWeights) Penalty(s Severity) float64 {
	switch s {
	case SeverityLow:
		return w.PenaltyLow
	case SeverityMedium:
		return w.PenaltyMedium
	case SeverityHigh:
		return w.PenaltyHigh
	default:
		return 0
	}
}

// Validate checks the weights form a 0..100 score.
func (w ScoreWeights) Validate() error {
	const epsilon = 1e-9

	err := validation.ValidateStruct(&w,
		validation.Field(&w.EntropyWeight, validation.Min(0.0)),
		validation.Field(&w.DiversityWeight, validation.Min(0.0)),
		validation.Field(&w.PatternWeight, validation.Min(0.0)),
		validation.Field(&w.DiversityClassWeight, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&w.DiversityDistinctWeight, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&w.TargetEntropyBits, validation.Required, validation.Min(1.0)),
		validation.Field(&w.PenaltyLow, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&w.PenaltyMedium, validation.Min(w.PenaltyLow), validation.Max(100.0)),
		validation.Field(&w.PenaltyHigh, validation.Min(w.PenaltyMedium), validation.Max(100.0)),
	)
	if err != nil {
		return err
	}

	if sum := w.EntropyWeight + w.DiversityWeight + w.PatternWeight; sum < 100-epsilon || sum > 100+epsilon {
		return validation.NewError("validation_score_weights", "score weights must sum to 100")
	}
	if sum := w.DiversityClassWeight + w.DiversityDistinctWeight; sum < 1-epsilon || sum > 1+epsilon {
		return validation.NewError("validation_diversity_weights", "diversity weights must sum to 1")
	}
	return nil
}

// Settings is the validated, immutable configuration consumed by the generator,
// auditor and validator. Build it with DefaultSettings or config.LoadSettings and
// do not modify it after Validate succeeds; it is shared across calls.
type Settings struct {
	Levels map[SecurityLevel]LevelParams

	MinLength     int
	MaxLength     int
	DefaultLength int
	DefaultLevel  SecurityLevel

	EnforceDiversity     bool
	MaxDiversityAttempts int

	MaxPhraseBytes int
	SaltSize       int

	Alphabet *Alphabet

	MinEntropyBits      float64
	MinClassTypes       int
	MaxRepetitionRatio  float64
	MaxPatternSeverity  Severity
	ForbiddenSubstrings []string

	Weights ScoreWeights
}

// DefaultLevels returns the default cost table.
func DefaultLevels() map[SecurityLevel]LevelParams {
	return map[SecurityLevel]LevelParams{
		LevelStandard: {Iterations: 1000, KeyLength: 32, Rounds: 3},
		LevelHigh:     {Iterations: 5000, KeyLength: 64, Rounds: 5},
		LevelMaximum:  {Iterations: 10000, KeyLength: 128, Rounds: 10},
	}
}

// DefaultSettings returns the default settings. The result is valid.
func DefaultSettings() *Settings {
	return &Settings{
		Levels:               DefaultLevels(),
		MinLength:            DefaultMinLength,
		MaxLength:            DefaultMaxLength,
		DefaultLength:        DefaultLength,
		DefaultLevel:         LevelHigh,
		EnforceDiversity:     true,
		MaxDiversityAttempts: DefaultMaxDiversityAttempts,
		MaxPhraseBytes:       DefaultMaxPhraseBytes,
		SaltSize:             DefaultSaltSize,
		Alphabet:             MustAlphabet(DefaultCharset),
		MinEntropyBits:       20,
		MinClassTypes:        DefaultMinClassTypes,
		MaxRepetitionRatio:   DefaultMaxRepetitionRatio,
		MaxPatternSeverity:   SeverityLow,
		ForbiddenSubstrings:  []string{"password", "123456", "qwerty"},
		Weights:              DefaultScoreWeights(),
	}
}

// Params returns the cost parameters for level.
func (s *Settings) Params(level SecurityLevel) (LevelParams, error) {
	if err := level.Validate(); err != nil {
		return LevelParams{}, err
	}
	params, ok := s.Levels[level]
	if !ok {
		return LevelParams{}, errors.Wrapf(ErrInvalidSettings, "no parameters for level %s", level)
	}
	return params, nil
}

// Validate checks every bound and cross-field invariant. Out-of-range values are
// reported as ErrInvalidSettings; nothing is adjusted.
func (s *Settings) Validate() error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.Levels, validation.Required, validation.By(validateLevels)),
		validation.Field(&s.MinLength,
			validation.Required,
			validation.Min(AbsoluteMinLength),
			validation.Max(s.MaxLength),
		),
		validation.Field(&s.MaxLength, validation.Required, validation.Max(AbsoluteMaxLength)),
		validation.Field(&s.DefaultLength,
			validation.Required,
			validation.Min(s.MinLength),
			validation.Max(s.MaxLength),
		),
		validation.Field(&s.DefaultLevel, validation.Required),
		validation.Field(&s.MaxDiversityAttempts, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&s.MaxPhraseBytes, validation.Required, validation.Min(1), validation.Max(10000)),
		validation.Field(&s.SaltSize, validation.Required, validation.Min(MinSaltSize)),
		validation.Field(&s.Alphabet, validation.Required),
		validation.Field(&s.MinEntropyBits, validation.Min(0.0)),
		validation.Field(&s.MinClassTypes, validation.Min(0), validation.Max(len(RequiredClasses))),
		validation.Field(&s.MaxRepetitionRatio, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.MaxPatternSeverity),
		validation.Field(&s.ForbiddenSubstrings, validation.Each(validation.Required, customValidation.NotBlank)),
		validation.Field(&s.Weights),
	)
	if err != nil {
		return errors.Wrap(ErrInvalidSettings, err.Error())
	}
	return nil
}

// validateLevels checks every level is present, within bounds, and that costs never
// decrease from standard to maximum.
func validateLevels(value interface{}) error {
	levels, ok := value.(map[SecurityLevel]LevelParams)
	if !ok {
		return validation.NewError("validation_levels_type", "must be a level table")
	}

	iterations := make([]int, 0, len(SecurityLevels))
	keyLengths := make([]int, 0, len(SecurityLevels))
	rounds := make([]int, 0, len(SecurityLevels))

	for _, level := range SecurityLevels {
		params, ok := levels[level]
		if !ok {
			return validation.NewError("validation_levels_missing", fmt.Sprintf("missing level %s", level))
		}
		err := validation.ValidateStruct(&params,
			validation.Field(&params.Iterations,
				validation.Required,
				validation.Min(MinIterations),
				validation.Max(MaxIterations),
			),
			validation.Field(&params.KeyLength, validation.Required, validation.Min(MinKeyLength)),
			validation.Field(&params.Rounds, validation.Required, validation.Min(1)),
		)
		if err != nil {
			return validation.NewError("validation_level_params", fmt.Sprintf("%s: %v", level, err))
		}
		iterations = append(iterations, params.Iterations)
		keyLengths = append(keyLengths, params.KeyLength)
		rounds = append(rounds, params.Rounds)
	}

	for name, values := range map[string][]int{
		"iterations": iterations,
		"key_length": keyLengths,
		"rounds":     rounds,
	} {
		if err := validation.Validate(values, customValidation.NonDecreasing); err != nil {
			return validation.NewError(
				"validation_levels_order",
				fmt.Sprintf("%s must not decrease from standard to maximum", name),
			)
		}
	}

	return nil
}
