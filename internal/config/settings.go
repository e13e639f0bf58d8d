package config

import (
	"encoding/json"
	"os"
	"strings"

	validation "github.com/jellydator/validation"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/allisson/fibrohash/internal/errors"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
	customValidation "github.com/allisson/fibrohash/internal/validation"
)

// SettingsEnvPrefix prefixes environment overrides of settings file keys. Sections and
// keys are separated by a double underscore, e.g. FIBROHASH__SECURITY__MIN_PASSWORD_LENGTH.
const SettingsEnvPrefix = "FIBROHASH__"

// ErrSettingsFileExists indicates init-config would overwrite an existing file.
var ErrSettingsFileExists = apperrors.Wrap(apperrors.ErrInvalidInput, "settings file already exists")

// LevelTable holds one value per security level.
type LevelTable struct {
	Standard int `koanf:"standard" json:"standard"`
	High     int `koanf:"high" json:"high"`
	Maximum  int `koanf:"maximum" json:"maximum"`
}

// SecuritySection configures password and phrase limits.
type SecuritySection struct {
	MinPasswordLength         int    `koanf:"min_password_length" json:"min_password_length"`
	MaxPasswordLength         int    `koanf:"max_password_length" json:"max_password_length"`
	DefaultPasswordLength     int    `koanf:"default_password_length" json:"default_password_length"`
	MaxInputLength            int    `koanf:"max_input_length" json:"max_input_length"`
	DefaultSecurityLevel      string `koanf:"default_security_level" json:"default_security_level"`
	EnforceCharacterDiversity bool   `koanf:"enforce_character_diversity" json:"enforce_character_diversity"`
	MaxDiversityAttempts      int    `koanf:"max_diversity_attempts" json:"max_diversity_attempts"`
	SaltSize                  int    `koanf:"salt_size" json:"salt_size"`
}

// CryptographySection configures per-level key derivation and expansion costs.
type CryptographySection struct {
	PBKDF2Iterations LevelTable `koanf:"pbkdf2_iterations" json:"pbkdf2_iterations"`
	KeySizes         LevelTable `koanf:"key_sizes" json:"key_sizes"`
	GenerationRounds LevelTable `koanf:"generation_rounds" json:"generation_rounds"`
}

// CharsetSection configures the output alphabet.
type CharsetSection struct {
	ExtendedCharset string `koanf:"extended_charset" json:"extended_charset"`
}

// ScoringSection configures the audit score model.
type ScoringSection struct {
	EntropyWeight           float64 `koanf:"entropy_weight" json:"entropy_weight"`
	DiversityWeight         float64 `koanf:"diversity_weight" json:"diversity_weight"`
	PatternWeight           float64 `koanf:"pattern_weight" json:"pattern_weight"`
	DiversityClassWeight    float64 `koanf:"diversity_class_weight" json:"diversity_class_weight"`
	DiversityDistinctWeight float64 `koanf:"diversity_distinct_weight" json:"diversity_distinct_weight"`
	TargetEntropyBits       float64 `koanf:"target_entropy_bits" json:"target_entropy_bits"`
	PenaltyLow              float64 `koanf:"penalty_low" json:"penalty_low"`
	PenaltyMedium           float64 `koanf:"penalty_medium" json:"penalty_medium"`
	PenaltyHigh             float64 `koanf:"penalty_high" json:"penalty_high"`
}

// AuditSection configures the default validation policy and scoring.
type AuditSection struct {
	MinEntropyBits      float64        `koanf:"min_entropy_bits" json:"min_entropy_bits"`
	MinCharacterTypes   int            `koanf:"min_character_types" json:"min_character_types"`
	MaxRepetitionRatio  float64        `koanf:"max_repetition_ratio" json:"max_repetition_ratio"`
	MaxPatternSeverity  string         `koanf:"max_pattern_severity" json:"max_pattern_severity"`
	ForbiddenSubstrings []string       `koanf:"forbidden_substrings" json:"forbidden_substrings"`
	Scoring             ScoringSection `koanf:"scoring" json:"scoring"`
}

// FileSettings mirrors the settings file layout. Unknown keys are ignored, so files
// written for older releases still load.
type FileSettings struct {
	Security     SecuritySection     `koanf:"security" json:"security"`
	Cryptography CryptographySection `koanf:"cryptography" json:"cryptography"`
	Charset      CharsetSection      `koanf:"charset" json:"charset"`
	Audit        AuditSection        `koanf:"audit" json:"audit"`
}

// DefaultFileSettings returns the file representation of domain.DefaultSettings.
func DefaultFileSettings() *FileSettings {
	return FromDomain(passwordDomain.DefaultSettings())
}

// FromDomain converts settings into their file representation.
func FromDomain(s *passwordDomain.Settings) *FileSettings {
	table := func(get func(passwordDomain.LevelParams) int) LevelTable {
		return LevelTable{
			Standard: get(s.Levels[passwordDomain.LevelStandard]),
			High:     get(s.Levels[passwordDomain.LevelHigh]),
			Maximum:  get(s.Levels[passwordDomain.LevelMaximum]),
		}
	}

	charset := ""
	if s.Alphabet != nil {
		charset = s.Alphabet.String()
	}

	w := s.Weights
	return &FileSettings{
		Security: SecuritySection{
			MinPasswordLength:         s.MinLength,
			MaxPasswordLength:         s.MaxLength,
			DefaultPasswordLength:     s.DefaultLength,
			MaxInputLength:            s.MaxPhraseBytes,
			DefaultSecurityLevel:      s.DefaultLevel.String(),
			EnforceCharacterDiversity: s.EnforceDiversity,
			MaxDiversityAttempts:      s.MaxDiversityAttempts,
			SaltSize:                  s.SaltSize,
		},
		Cryptography: CryptographySection{
			PBKDF2Iterations: table(func(p passwordDomain.LevelParams) int { return p.Iterations }),
			KeySizes:         table(func(p passwordDomain.LevelParams) int { return p.KeyLength }),
			GenerationRounds: table(func(p passwordDomain.LevelParams) int { return p.Rounds }),
		},
		Charset: CharsetSection{ExtendedCharset: charset},
		Audit: AuditSection{
			MinEntropyBits:      s.MinEntropyBits,
			MinCharacterTypes:   s.MinClassTypes,
			MaxRepetitionRatio:  s.MaxRepetitionRatio,
			MaxPatternSeverity:  s.MaxPatternSeverity.String(),
			ForbiddenSubstrings: append([]string(nil), s.ForbiddenSubstrings...),
			Scoring: ScoringSection{
				EntropyWeight:           w.EntropyWeight,
				DiversityWeight:         w.DiversityWeight,
				PatternWeight:           w.PatternWeight,
				DiversityClassWeight:    w.DiversityClassWeight,
				DiversityDistinctWeight: w.DiversityDistinctWeight,
				TargetEntropyBits:       w.TargetEntropyBits,
				PenaltyLow:              w.PenaltyLow,
				PenaltyMedium:           w.PenaltyMedium,
				PenaltyHigh:             w.PenaltyHigh,
			},
		},
	}
}

// Validate checks the fields that must be parsed before conversion.
func (f *FileSettings) Validate() error {
	err := validation.ValidateStruct(&f.Charset,
		validation.Field(&f.Charset.ExtendedCharset,
			validation.Required,
			customValidation.ValidUTF8,
			customValidation.PrintableRunes,
			customValidation.DistinctRunes,
			customValidation.RuneCount(passwordDomain.MinAlphabetSize, passwordDomain.MaxAlphabetSize),
		),
	)
	if err != nil {
		return customValidation.WrapConfigurationError(err)
	}

	err = validation.ValidateStruct(&f.Security,
		validation.Field(&f.Security.DefaultSecurityLevel,
			validation.Required,
			validation.In(
				passwordDomain.LevelStandard.String(),
				passwordDomain.LevelHigh.String(),
				passwordDomain.LevelMaximum.String(),
			),
		),
	)
	if err != nil {
		return customValidation.WrapConfigurationError(err)
	}

	err = validation.ValidateStruct(&f.Audit,
		validation.Field(&f.Audit.MaxPatternSeverity,
			validation.Required,
			validation.In("none", "low", "medium", "high"),
		),
	)
	return customValidation.WrapConfigurationError(err)
}

// ToDomain validates the file settings and converts them into domain settings.
func (f *FileSettings) ToDomain() (*passwordDomain.Settings, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	alphabet, err := passwordDomain.NewAlphabet(f.Charset.ExtendedCharset)
	if err != nil {
		return nil, err
	}
	severity, err := passwordDomain.ParseSeverity(f.Audit.MaxPatternSeverity)
	if err != nil {
		return nil, err
	}

	c := f.Cryptography
	levels := map[passwordDomain.SecurityLevel]passwordDomain.LevelParams{
		passwordDomain.LevelStandard: {
			Iterations: c.PBKDF2Iterations.Standard,
			KeyLength:  c.KeySizes.Standard,
			Rounds:     c.GenerationRounds.Standard,
		},
		passwordDomain.LevelHigh: {
			Iterations: c.PBKDF2Iterations.High,
			KeyLength:  c.KeySizes.High,
			Rounds:     c.GenerationRounds.High,
		},
		passwordDomain.LevelMaximum: {
			Iterations: c.PBKDF2Iterations.Maximum,
			KeyLength:  c.KeySizes.Maximum,
			Rounds:     c.GenerationRounds.Maximum,
		},
	}

	sc := f.Audit.Scoring
	settings := &passwordDomain.Settings{
		Levels:               levels,
		MinLength:            f.Security.MinPasswordLength,
		MaxLength:            f.Security.MaxPasswordLength,
		DefaultLength:        f.Security.DefaultPasswordLength,
		DefaultLevel:         passwordDomain.SecurityLevel(f.Security.DefaultSecurityLevel),
		EnforceDiversity:     f.Security.EnforceCharacterDiversity,
		MaxDiversityAttempts: f.Security.MaxDiversityAttempts,
		MaxPhraseBytes:       f.Security.MaxInputLength,
		SaltSize:             f.Security.SaltSize,
		Alphabet:             alphabet,
		MinEntropyBits:       f.Audit.MinEntropyBits,
		MinClassTypes:        f.Audit.MinCharacterTypes,
		MaxRepetitionRatio:   f.Audit.MaxRepetitionRatio,
		MaxPatternSeverity:   severity,
		ForbiddenSubstrings:  append([]string(nil), f.Audit.ForbiddenSubstrings...),
		Weights: passwordDomain.ScoreWeights{
			EntropyWeight:           sc.EntropyWeight,
			DiversityWeight:         sc.DiversityWeight,
			PatternWeight:           sc.PatternWeight,
			DiversityClassWeight:    sc.DiversityClassWeight,
			DiversityDistinctWeight: sc.DiversityDistinctWeight,
			TargetEntropyBits:       sc.TargetEntropyBits,
			PenaltyLow:              sc.PenaltyLow,
			PenaltyMedium:           sc.PenaltyMedium,
			PenaltyHigh:             sc.PenaltyHigh,
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadFileSettings reads the settings file at path over the defaults and applies
// FIBROHASH__ environment overrides. A missing file yields the defaults. The file may
// be JSON or YAML.
func LoadFileSettings(path string) (*FileSettings, error) {
	k := koanf.New(".")

	defaults, err := json.Marshal(DefaultFileSettings())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode default settings")
	}
	if err := k.Load(rawbytes.Provider(defaults), yaml.Parser()); err != nil {
		return nil, apperrors.Wrap(err, "failed to load default settings")
	}

	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, apperrors.Wrapf(apperrors.ErrInvalidConfiguration, "load settings file %s: %v", path, err)
			}
		case !os.IsNotExist(statErr):
			return nil, apperrors.Wrapf(statErr, "failed to stat settings file %s", path)
		}
	}

	transform := func(s string) string {
		s = strings.TrimPrefix(s, SettingsEnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}
	if err := k.Load(env.Provider(SettingsEnvPrefix, ".", transform), nil); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidConfiguration, "load settings from env: %v", err)
	}

	var settings FileSettings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidConfiguration, "decode settings: %v", err)
	}
	return &settings, nil
}

// LoadSettings loads, validates and converts the settings file at path.
func LoadSettings(path string) (*passwordDomain.Settings, error) {
	fileSettings, err := LoadFileSettings(path)
	if err != nil {
		return nil, err
	}
	return fileSettings.ToDomain()
}

// WriteDefaultSettings writes the default settings to path as indented JSON. An existing
// file is only replaced when force is set.
func WriteDefaultSettings(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return apperrors.Wrapf(ErrSettingsFileExists, "%s", path)
		}
	}

	data, err := json.MarshalIndent(DefaultFileSettings(), "", "  ")
	if err != nil {
		return apperrors.Wrap(err, "failed to encode default settings")
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return apperrors.Wrapf(err, "failed to write settings file %s", path)
	}
	return nil
}
