package service

import (
	"github.com/allisson/fibrohash/internal/errors"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

type rejectionEncoder struct{}

// NewRejectionEncoder creates a CharacterEncoder that maps stream bytes onto an alphabet
// with rejection sampling, so every character is equally likely for any alphabet size.
func NewRejectionEncoder() CharacterEncoder {
	return &rejectionEncoder{}
}

// Encode draws length characters. A byte b is accepted only when b < 256 - 256%n, where
// n is the alphabet size, and is then mapped to index b%n; other bytes are discarded.
// When the stream runs dry it is extended one batch at a time; if the stream refuses,
// ErrInsufficientEntropy is returned and no partial result escapes.
func (e *rejectionEncoder) Encode(
	stream EntropyStream,
	alphabet *passwordDomain.Alphabet,
	length int,
) ([]rune, error) {
	if length < 1 {
		return nil, errors.Wrap(passwordDomain.ErrInvalidLength, "length must be positive")
	}
	n := alphabet.Size()
	if n < 2 || n > passwordDomain.MaxAlphabetSize {
		return nil, errors.Wrapf(passwordDomain.ErrInvalidAlphabet, "cannot encode onto %d characters", n)
	}

	limit := 256 - 256%n
	out := make([]rune, 0, length)

	for len(out) < length {
		b, err := stream.ReadByte()
		if err != nil {
			if !errors.Is(err, passwordDomain.ErrInsufficientEntropy) {
				passwordDomain.ZeroRunes(out)
				return nil, err
			}
			if extendErr := stream.Extend(); extendErr != nil {
				passwordDomain.ZeroRunes(out)
				return nil, extendErr
			}
			continue
		}

		v := int(b)
		if v >= limit {
			continue
		}
		out = append(out, alphabet.At(v%n))
	}

	return out, nil
}
