package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"
	"io"

	"github.com/allisson/fibrohash/internal/errors"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

// BlockSize is the size of one expansion block (HMAC-SHA256 output).
const BlockSize = sha256.Size

type hmacExpander struct {
	random io.Reader
}

// NewHMACExpander creates an EntropyExpander that chains HMAC-SHA256 blocks and mixes
// fresh bytes from random into every block. A nil random uses crypto/rand.Reader.
func NewHMACExpander(random io.Reader) EntropyExpander {
	if random == nil {
		random = rand.Reader
	}
	return &hmacExpander{random: random}
}

// Expand returns a stream keyed by seed. The stream starts with one batch of rounds
// blocks and can be extended until maxBatches batches have been granted.
func (e *hmacExpander) Expand(seed []byte, rounds, maxBatches int) (EntropyStream, error) {
	if len(seed) < passwordDomain.MinKeyLength {
		return nil, errors.Wrapf(
			passwordDomain.ErrInvalidExpansion,
			"seed must be at least %d bytes",
			passwordDomain.MinKeyLength,
		)
	}
	if rounds < 1 || maxBatches < 1 {
		return nil, errors.Wrap(passwordDomain.ErrInvalidExpansion, "rounds and batches must be positive")
	}

	key := make([]byte, len(seed))
	copy(key, seed)

	initial := sha256.Sum256(seed)
	acc := make([]byte, BlockSize)
	copy(acc, initial[:])

	return &hmacStream{
		key:        key,
		mac:        hmac.New(sha256.New, key),
		random:     e.random,
		acc:        acc,
		fresh:      make([]byte, BlockSize),
		msg:        make([]byte, BlockSize+8),
		out:        make([]byte, BlockSize),
		rounds:     rounds,
		maxBatches: maxBatches,
		batches:    1,
	}, nil
}

// hmacStream produces block_i = HMAC(seed, (acc XOR fresh_i) || counter_i) and feeds
// each block back as the next accumulator.
type hmacStream struct {
	key    []byte
	mac    hash.Hash
	random io.Reader

	acc   []byte
	fresh []byte
	msg   []byte
	out   []byte
	buf   []byte

	counter    uint64
	produced   int
	rounds     int
	batches    int
	maxBatches int
	closed     bool
}

// ReadByte returns the next byte of the stream.
func (s *hmacStream) ReadByte() (byte, error) {
	if s.closed {
		return 0, errors.Wrap(passwordDomain.ErrInsufficientEntropy, "stream closed")
	}
	if len(s.buf) == 0 {
		if s.produced >= s.rounds*s.batches {
			return 0, errors.Wrapf(
				passwordDomain.ErrInsufficientEntropy,
				"%d of %d blocks consumed",
				s.produced, s.rounds*s.batches,
			)
		}
		if err := s.nextBlock(); err != nil {
			return 0, err
		}
	}

	b := s.buf[0]
	s.buf = s.buf[1:]
	return b, nil
}

// Extend grants one more batch of rounds blocks.
func (s *hmacStream) Extend() error {
	if s.closed || s.batches >= s.maxBatches {
		return errors.Wrapf(
			passwordDomain.ErrInsufficientEntropy,
			"expansion ceiling of %d batches reached",
			s.maxBatches,
		)
	}
	s.batches++
	return nil
}

// Close zeroes the key copy, accumulator and any unread bytes.
func (s *hmacStream) Close() {
	if s.closed {
		return
	}
	passwordDomain.Zero(s.key)
	passwordDomain.Zero(s.acc)
	passwordDomain.Zero(s.fresh)
	passwordDomain.Zero(s.msg)
	passwordDomain.Zero(s.out)
	s.mac.Reset()
	s.buf = nil
	s.closed = true
}

func (s *hmacStream) nextBlock() error {
	if _, err := io.ReadFull(s.random, s.fresh); err != nil {
		return fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i := range s.acc {
		s.msg[i] = s.acc[i] ^ s.fresh[i]
	}
	binary.BigEndian.PutUint64(s.msg[BlockSize:], s.counter)

	s.mac.Reset()
	s.mac.Write(s.msg)
	block := s.mac.Sum(s.acc[:0])

	// acc now holds block_i; readers get a copy so they never alias it.
	s.acc = block
	copy(s.out, block)
	s.buf = s.out

	s.counter++
	s.produced++
	return nil
}
