// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/fibrohash/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// WrapConfigurationError wraps validation errors as domain ErrInvalidConfiguration
func WrapConfigurationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidConfiguration, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// ValidUTF8 validates that a string is well-formed UTF-8
var ValidUTF8 = validation.NewStringRuleWithError(
	utf8.ValidString,
	validation.NewError("validation_utf8", "must be valid UTF-8"),
)

// DistinctRunes validates that a string contains no repeated characters
var DistinctRunes = validation.NewStringRuleWithError(
	func(s string) bool {
		seen := make(map[rune]struct{}, len(s))
		for _, r := range s {
			if _, ok := seen[r]; ok {
				return false
			}
			seen[r] = struct{}{}
		}
		return true
	},
	validation.NewError("validation_distinct_runes", "must not contain duplicate characters"),
)

// PrintableRunes validates that a string contains only printable, non-space characters
var PrintableRunes = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, r := range s {
			if !unicode.IsPrint(r) || unicode.IsSpace(r) {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_printable_runes", "must contain only printable, non-space characters"),
)

// RuneCount validates that a string has between min and max characters (inclusive)
func RuneCount(min, max int) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			n := utf8.RuneCountInString(s)
			return n >= min && n <= max
		},
		validation.NewError("validation_rune_count", "has an invalid number of characters").
			SetParams(map[string]any{"min": min, "max": max}),
	)
}

// NonDecreasing validates that a slice of ints never decreases
var NonDecreasing = validation.By(func(value interface{}) error {
	values, ok := value.([]int)
	if !ok {
		return validation.NewError("validation_non_decreasing_type", "must be a list of integers")
	}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return validation.NewError("validation_non_decreasing", "must not decrease")
		}
	}
	return nil
})
