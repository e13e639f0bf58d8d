package service

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

// zeroReader yields an endless stream of zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// readAll drains the stream until it reports exhaustion.
func readAll(t *testing.T, stream EntropyStream) []byte {
	t.Helper()
	var out []byte
	for {
		b, err := stream.ReadByte()
		if err != nil {
			require.ErrorIs(t, err, passwordDomain.ErrInsufficientEntropy)
			return out
		}
		out = append(out, b)
	}
}

func testSeed() []byte {
	return bytes.Repeat([]byte{0x07}, 32)
}

func TestHMACExpander_Expand(t *testing.T) {
	t.Run("Success_ChainedBlocks", func(t *testing.T) {
		seed := testSeed()
		stream, err := NewHMACExpander(zeroReader{}).Expand(seed, 2, 1)
		require.NoError(t, err)
		defer stream.Close()

		got := readAll(t, stream)

		// With all-zero fresh bytes each block is HMAC(seed, prev || counter).
		acc := sha256.Sum256(seed)
		prev := acc[:]
		var expected []byte
		for counter := uint64(0); counter < 2; counter++ {
			mac := hmac.New(sha256.New, seed)
			mac.Write(prev)
			var ctr [8]byte
			binary.BigEndian.PutUint64(ctr[:], counter)
			mac.Write(ctr[:])
			prev = mac.Sum(nil)
			expected = append(expected, prev...)
		}

		assert.Equal(t, expected, got)
	})

	t.Run("Success_FreshRandomnessChangesOutput", func(t *testing.T) {
		expander := NewHMACExpander(nil)

		first, err := expander.Expand(testSeed(), 1, 1)
		require.NoError(t, err)
		defer first.Close()
		second, err := expander.Expand(testSeed(), 1, 1)
		require.NoError(t, err)
		defer second.Close()

		assert.NotEqual(t, readAll(t, first), readAll(t, second))
	})

	t.Run("Success_ExtendGrantsAnotherBatch", func(t *testing.T) {
		stream, err := NewHMACExpander(zeroReader{}).Expand(testSeed(), 3, 2)
		require.NoError(t, err)
		defer stream.Close()

		assert.Len(t, readAll(t, stream), 3*BlockSize)
		require.NoError(t, stream.Extend())
		assert.Len(t, readAll(t, stream), 3*BlockSize)

		err = stream.Extend()
		assert.ErrorIs(t, err, passwordDomain.ErrInsufficientEntropy)
	})

	t.Run("Success_DoesNotRetainCallerSeed", func(t *testing.T) {
		seed := testSeed()
		stream, err := NewHMACExpander(zeroReader{}).Expand(seed, 1, 1)
		require.NoError(t, err)
		defer stream.Close()

		seed[0] ^= 0xff
		reference, err := NewHMACExpander(zeroReader{}).Expand(testSeed(), 1, 1)
		require.NoError(t, err)
		defer reference.Close()

		assert.Equal(t, readAll(t, reference), readAll(t, stream))
	})

	t.Run("Success_CloseStopsStream", func(t *testing.T) {
		stream, err := NewHMACExpander(zeroReader{}).Expand(testSeed(), 1, 2)
		require.NoError(t, err)

		stream.Close()
		stream.Close()

		_, err = stream.ReadByte()
		assert.ErrorIs(t, err, passwordDomain.ErrInsufficientEntropy)
		assert.ErrorIs(t, stream.Extend(), passwordDomain.ErrInsufficientEntropy)
	})

	t.Run("Error_RandomSourceFails", func(t *testing.T) {
		stream, err := NewHMACExpander(iotest.ErrReader(assert.AnError)).Expand(testSeed(), 1, 1)
		require.NoError(t, err)
		defer stream.Close()

		_, err = stream.ReadByte()
		assert.ErrorIs(t, err, assert.AnError)
	})

	tests := []struct {
		name       string
		seed       []byte
		rounds     int
		maxBatches int
	}{
		{name: "Error_ShortSeed", seed: []byte("short"), rounds: 1, maxBatches: 1},
		{name: "Error_ZeroRounds", seed: testSeed(), rounds: 0, maxBatches: 1},
		{name: "Error_ZeroBatches", seed: testSeed(), rounds: 1, maxBatches: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := NewHMACExpander(nil).Expand(tt.seed, tt.rounds, tt.maxBatches)

			assert.Nil(t, stream)
			assert.ErrorIs(t, err, passwordDomain.ErrInvalidExpansion)
		})
	}
}
