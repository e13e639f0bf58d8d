// Package usecase implements password generation and analysis business logic.
//
// Generation runs fresh salt -> PBKDF2 -> HMAC entropy expansion -> rejection-sampled
// encoding -> diversity check. Salt, derived key and the entropy stream are owned by a
// single call and wiped before it returns.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/fibrohash/internal/errors"
	"github.com/allisson/fibrohash/internal/metrics"
	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
	passwordService "github.com/allisson/fibrohash/internal/password/service"
)

// bytesPerCharBudget is the expansion budget per requested character per attempt.
// Rejection sampling over 90 characters accepts ~70% of bytes, so 4 leaves ample headroom.
const bytesPerCharBudget = 4

// generatorUseCase implements GeneratorUseCase.
type generatorUseCase struct {
	settings  *passwordDomain.Settings
	sanitizer passwordService.PhraseSanitizer
	deriver   passwordService.KeyDeriver
	expander  passwordService.EntropyExpander
	encoder   passwordService.CharacterEncoder
	random    io.Reader
	logger    *slog.Logger
	metrics   metrics.BusinessMetrics
}

// countingStream counts the extra batches an encoder requests.
type countingStream struct {
	passwordService.EntropyStream
	extensions int
}

func (s *countingStream) Extend() error {
	if err := s.EntropyStream.Extend(); err != nil {
		return err
	}
	s.extensions++
	return nil
}

// Generate validates the input, derives a key from the sanitized phrase and a fresh salt,
// and encodes the expanded entropy into a password. Candidates missing a character class
// are redrawn from the same stream up to MaxDiversityAttempts times.
func (g *generatorUseCase) Generate(ctx context.Context, input passwordDomain.GenerateInput) (string, error) {
	length := input.Length
	if length == 0 {
		length = g.settings.DefaultLength
	}
	level := input.Level
	if level == "" {
		level = g.settings.DefaultLevel
	}

	if length < g.settings.MinLength || length > g.settings.MaxLength {
		return "", errors.Wrapf(
			passwordDomain.ErrInvalidLength,
			"got %d, want [%d, %d]",
			length, g.settings.MinLength, g.settings.MaxLength,
		)
	}
	params, err := g.settings.Params(level)
	if err != nil {
		return "", err
	}
	phrase, err := g.sanitizer.Sanitize(input.Phrase)
	if err != nil {
		return "", err
	}
	defer passwordDomain.Zero(phrase)

	salt := make([]byte, g.settings.SaltSize)
	defer passwordDomain.Zero(salt)
	if _, err := io.ReadFull(g.random, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := g.deriver.Derive(phrase, salt, params.Iterations, params.KeyLength)
	if err != nil {
		return "", err
	}
	defer passwordDomain.Zero(key)

	expanded, err := g.expander.Expand(
		key,
		params.Rounds,
		expansionCeiling(length, params.Rounds, g.settings.MaxDiversityAttempts),
	)
	if err != nil {
		return "", err
	}
	defer expanded.Close()

	stream := &countingStream{EntropyStream: expanded}
	stats := metrics.GenerationStats{Level: level.String(), Length: length, Status: "error"}
	defer func() {
		stats.Extensions = stream.extensions
		g.metrics.RecordGeneration(ctx, stats)
	}()

	alphabet := g.settings.Alphabet
	for attempt := 1; attempt <= g.settings.MaxDiversityAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := g.encoder.Encode(stream, alphabet, length)
		if err != nil {
			return "", err
		}

		if !g.settings.EnforceDiversity ||
			length < passwordDomain.DiversityMinLength ||
			alphabet.HasAllClasses(candidate) {
			password := string(candidate)
			passwordDomain.ZeroRunes(candidate)
			stats.Status = "success"
			return password, nil
		}

		passwordDomain.ZeroRunes(candidate)
		stats.Redraws++
		g.logger.Debug("diversity check failed, redrawing",
			slog.Int("attempt", attempt),
			slog.Int("length", length),
			slog.String("level", level.String()),
		)
	}

	return "", errors.Wrapf(
		passwordDomain.ErrDiversity,
		"after %d attempts",
		g.settings.MaxDiversityAttempts,
	)
}

// expansionCeiling returns how many batches of rounds blocks a stream may grow to so that
// every diversity attempt can be served.
func expansionCeiling(length, rounds, attempts int) int {
	needed := attempts * bytesPerCharBudget * length
	batchBytes := rounds * passwordService.BlockSize
	return (needed+batchBytes-1)/batchBytes + 1
}

// NewGeneratorUseCase creates a new GeneratorUseCase. random supplies salts and must be
// a cryptographically secure source such as crypto/rand.Reader. A nil m records nothing.
func NewGeneratorUseCase(
	settings *passwordDomain.Settings,
	sanitizer passwordService.PhraseSanitizer,
	deriver passwordService.KeyDeriver,
	expander passwordService.EntropyExpander,
	encoder passwordService.CharacterEncoder,
	random io.Reader,
	logger *slog.Logger,
	m metrics.BusinessMetrics,
) GeneratorUseCase {
	if m == nil {
		m = metrics.NewNoOpBusinessMetrics()
	}
	return &generatorUseCase{
		settings:  settings,
		sanitizer: sanitizer,
		deriver:   deriver,
		expander:  expander,
		encoder:   encoder,
		random:    random,
		logger:    logger,
		metrics:   m,
	}
}
