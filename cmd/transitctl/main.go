// Package main provides transitctl, a command line client for the Alexandria
// transit assistant. It runs the same pipeline as the API in-process.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Version is set at compile time via ldflags.
var Version = "dev"

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.WarnLevel).
		With().
		Timestamp().
		Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(&log).RunContext(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newApp(log *zerolog.Logger) *cli.App {
	return &cli.App{
		Name:    "transitctl",
		Usage:   "ask for trips around Alexandria in Arabic or English",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Value:   ".env",
				Usage:   "dotenv file read before the environment",
				EnvVars: []string{"TRANSITCTL_ENV_FILE"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log at debug level",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				*log = log.Level(zerolog.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			queryCommand(log),
			batchCommand(log),
			stopsCommand(log),
			statusCommand(log),
			warmCommand(log),
		},
	}
}
