package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// analyzer is the batch companion to the HTTP server: it runs a hub
// schedule CSV through the estimation engine and prints the per-row time
// table, the timeline intervals, and the hourly workload histogram.
func main() {
	if os.Getenv("LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Logger = log.Logger.Level(zerolog.InfoLevel)

	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment from .env")
	}

	app := &cli.App{
		Name:        "analyzer",
		Description: "Loading/unloading time analysis over hub schedule exports",

		Commands: []*cli.Command{
			hubsCommand(),
			scheduleCommand(),
			estimateCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
