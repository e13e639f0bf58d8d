package domain

import (
	"fmt"
	"unicode"

	"github.com/allisson/fibrohash/internal/errors"
)

// CharClass identifies the character class of a rune.
type CharClass string

const (
	ClassUpper  CharClass = "upper"
	ClassLower  CharClass = "lower"
	ClassDigit  CharClass = "digit"
	ClassSymbol CharClass = "symbol"
	ClassOther  CharClass = "other"
)

// RequiredClasses lists the four classes an alphabet is partitioned into.
var RequiredClasses = []CharClass{ClassUpper, ClassLower, ClassDigit, ClassSymbol}

// ClassOf returns the class of r. Printable punctuation and symbols count as ClassSymbol;
// whitespace, control characters and anything else unclassifiable is ClassOther.
func ClassOf(r rune) CharClass {
	switch {
	case unicode.IsUpper(r):
		return ClassUpper
	case unicode.IsLower(r):
		return ClassLower
	case unicode.IsDigit(r):
		return ClassDigit
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return ClassSymbol
	default:
		return ClassOther
	}
}

// Alphabet is an ordered set of distinct runes partitioned into upper, lower, digit
// and symbol classes. It is immutable after construction.
type Alphabet struct {
	runes []rune
	index map[rune]CharClass
}

// NewAlphabet builds an alphabet from chars. Returns ErrInvalidAlphabet if chars has
// duplicates, fewer than MinAlphabetSize or more than MaxAlphabetSize runes, a rune
// outside the four classes, or a class with no member.
func NewAlphabet(chars string) (*Alphabet, error) {
	runes := []rune(chars)
	if len(runes) < MinAlphabetSize || len(runes) > MaxAlphabetSize {
		return nil, errors.Wrapf(
			ErrInvalidAlphabet,
			"size %d outside [%d, %d]",
			len(runes), MinAlphabetSize, MaxAlphabetSize,
		)
	}

	index := make(map[rune]CharClass, len(runes))
	present := make(map[CharClass]bool, len(RequiredClasses))
	for _, r := range runes {
		if _, dup := index[r]; dup {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "duplicate character %q", r)
		}
		class := ClassOf(r)
		if class == ClassOther || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "unsupported character %q", r)
		}
		index[r] = class
		present[class] = true
	}

	for _, class := range RequiredClasses {
		if !present[class] {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "no %s characters", class)
		}
	}

	return &Alphabet{runes: runes, index: index}, nil
}

// MustAlphabet is like NewAlphabet but panics on error. Intended for constants.
func MustAlphabet(chars string) *Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(fmt.Sprintf("domain: %v", err))
	}
	return a
}

// Size returns the number of characters in the alphabet.
func (a *Alphabet) Size() int {
	return len(a.runes)
}

// At returns the character at position i.
func (a *Alphabet) At(i int) rune {
	return a.runes[i]
}

// Contains reports whether r belongs to the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// HasAllClasses reports whether runes contains at least one character of every required class.
func (a *Alphabet) HasAllClasses(runes []rune) bool {
	var upper, lower, digit, symbol bool
	for _, r := range runes {
		switch ClassOf(r) {
		case ClassUpper:
			upper = true
		case ClassLower:
			lower = true
		case ClassDigit:
			digit = true
		case ClassSymbol:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// String returns the alphabet characters in order.
func (a *Alphabet) String() string {
	return string(a.runes)
}
