package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/fibrohash/cmd/app/commands"
	"github.com/allisson/fibrohash/internal/app"
	"github.com/allisson/fibrohash/internal/config"
)

func getPasswordCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate passwords from a phrase",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "phrase",
					Aliases: []string{"p"},
					Usage:   "Input phrase (omit to read it from stdin)",
				},
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   0,
					Usage:   "Password length (0 uses the configured default)",
				},
				&cli.StringFlag{
					Name:  "level",
					Value: "",
					Usage: "Security level: standard, high or maximum (empty uses the configured default)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "Number of passwords to generate",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				generatorUseCase, err := container.GeneratorUseCase()
				if err != nil {
					return commands.ExitError(err)
				}

				return commands.ExitError(commands.RunGenerate(
					ctx,
					generatorUseCase,
					container.Logger(),
					commands.DefaultIO(),
					commands.GenerateOptions{
						Phrase:         cmd.String("phrase"),
						Length:         int(cmd.Int("length")),
						Level:          cmd.String("level"),
						Count:          int(cmd.Int("count")),
						MaxConcurrency: cfg.MaxConcurrentGenerations,
						Format:         cmd.String("format"),
					},
				))
			},
		},
		{
			Name:  "audit",
			Usage: "Print a security report for a password",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Password to audit",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Also save the JSON report to this file",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				reportUseCase, err := container.ReportUseCase()
				if err != nil {
					return commands.ExitError(err)
				}

				return commands.ExitError(commands.RunAudit(
					ctx,
					reportUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("password"),
					cmd.String("format"),
					cmd.String("output"),
				))
			},
		},
		{
			Name:  "validate",
			Usage: "Validate a password against the configured policy",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Password to validate",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				reportUseCase, err := container.ReportUseCase()
				if err != nil {
					return commands.ExitError(err)
				}

				return commands.ExitError(commands.RunValidate(
					ctx,
					reportUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("password"),
					cmd.String("format"),
				))
			},
		},
	}
}
