package commands

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/jellydator/validation"
	"golang.org/x/sync/errgroup"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
	passwordUseCase "github.com/allisson/fibrohash/internal/password/usecase"
	customValidation "github.com/allisson/fibrohash/internal/validation"
)

// MaxGenerateCount is the largest number of passwords one generate call may produce.
const MaxGenerateCount = 100

// GenerateOptions holds the flags of the generate command.
type GenerateOptions struct {
	Phrase         string
	Length         int
	Level          string
	Count          int
	MaxConcurrency int
	Format         string
}

// Validate checks the command flags. Length and level are checked by the generator.
func (o *GenerateOptions) Validate() error {
	err := validation.ValidateStruct(o,
		validation.Field(&o.Count, validation.Required, validation.Min(1), validation.Max(MaxGenerateCount)),
		validation.Field(&o.MaxConcurrency, validation.Min(0)),
		validation.Field(&o.Format, validation.Required, validation.In("text", "json")),
	)
	return customValidation.WrapValidationError(err)
}

// generateOutput is the JSON document printed by the generate command.
type generateOutput struct {
	Passwords []string `json:"passwords"`
	Count     int      `json:"count"`
	Length    int      `json:"length,omitempty"`
	Level     string   `json:"level,omitempty"`
}

// RunGenerate derives Count passwords from one phrase. The phrase is read from the
// reader when not supplied, without echo on a terminal. Passwords are generated
// concurrently, bounded by MaxConcurrency, and printed in request order.
func RunGenerate(
	ctx context.Context,
	generatorUseCase passwordUseCase.GeneratorUseCase,
	logger *slog.Logger,
	io IOTuple,
	opts GenerateOptions,
) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.MaxConcurrency < 1 {
		opts.MaxConcurrency = 1
	}

	phrase := opts.Phrase
	if phrase == "" {
		var err error
		phrase, err = readSecret(io, "Enter a phrase: ")
		if err != nil {
			return err
		}
	}

	input := passwordDomain.GenerateInput{
		Phrase: phrase,
		Length: opts.Length,
		Level:  passwordDomain.SecurityLevel(opts.Level),
	}

	logger.Info("generating passwords",
		slog.Int("count", opts.Count),
		slog.Int("length", opts.Length),
		slog.String("level", opts.Level),
	)

	passwords := make([]string, opts.Count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxConcurrency)
	for i := range passwords {
		g.Go(func() error {
			password, err := generatorUseCase.Generate(gctx, input)
			if err != nil {
				return err
			}
			passwords[i] = password
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	if opts.Format == "json" {
		if err := writeJSON(io.Writer, generateOutput{
			Passwords: passwords,
			Count:     len(passwords),
			Length:    opts.Length,
			Level:     opts.Level,
		}); err != nil {
			return err
		}
	} else {
		outputPasswordsText(io, passwords)
	}

	logger.Info("passwords generated", slog.Int("count", len(passwords)))

	return nil
}

// outputPasswordsText prints one password per line.
func outputPasswordsText(io IOTuple, passwords []string) {
	if len(passwords) == 1 {
		_, _ = fmt.Fprintf(io.Writer, "Generated Password: %s\n", passwords[0])
		return
	}
	for i, password := range passwords {
		_, _ = fmt.Fprintf(io.Writer, "%d: %s\n", i+1, password)
	}
}
