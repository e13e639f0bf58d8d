package service

import (
	"strings"
	"unicode"

	"github.com/allisson/fibrohash/internal/errors"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

type phraseSanitizer struct {
	maxBytes int
}

// NewPhraseSanitizer creates a PhraseSanitizer enforcing a maximum byte length.
func NewPhraseSanitizer(maxBytes int) PhraseSanitizer {
	return &phraseSanitizer{maxBytes: maxBytes}
}

// Sanitize drops invalid UTF-8 and control characters and checks the remaining bytes are
// non-empty and at most maxBytes long. Errors never include the phrase.
func (s *phraseSanitizer) Sanitize(phrase string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == unicode.ReplacementChar || unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(phrase, ""))

	if strings.TrimSpace(cleaned) == "" {
		return nil, passwordDomain.ErrEmptyPhrase
	}
	if len(cleaned) > s.maxBytes {
		return nil, errors.Wrapf(
			passwordDomain.ErrPhraseTooLong,
			"%d bytes, limit %d",
			len(cleaned), s.maxBytes,
		)
	}

	return []byte(cleaned), nil
}
