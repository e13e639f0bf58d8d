package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/fibrohash/cmd/app/commands"
	"github.com/allisson/fibrohash/internal/app"
	"github.com/allisson/fibrohash/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "init-config",
			Usage: "Write the default security settings file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "path",
					Value: "",
					Usage: "Settings file path (defaults to FIBROHASH_CONFIG_FILE)",
				},
				&cli.BoolFlag{
					Name:  "force",
					Value: false,
					Usage: "Overwrite an existing settings file",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				path := cmd.String("path")
				if path == "" {
					path = cfg.SettingsFile
				}

				return commands.ExitError(commands.RunInitConfig(
					container.Logger(),
					commands.DefaultIO().Writer,
					path,
					cmd.Bool("force"),
				))
			},
		},
		{
			Name:  "show-config",
			Usage: "Print the effective security settings",
			Flags: []cli.Flag{
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

				settings, err := container.Settings()
				if err != nil {
					return commands.ExitError(err)
				}

				return commands.ExitError(commands.RunShowConfig(
					commands.DefaultIO().Writer,
					settings,
					cfg.SettingsFile,
					cmd.String("format"),
				))
			},
		},
		{
			Name:  "version",
			Usage: "Print the application version",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunVersion(commands.DefaultIO().Writer, version)
			},
		},
	}
}
