package main

import (
	"os"

	"github.com/deepnoodle-ai/cstring/errors"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging points the global logger at stderr. Only warnings are shown
// unless debug is set.
func setupLogging(debug, noColor bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: noColor || !color.ShouldColorize(os.Stderr),
	}).With().Timestamp().Logger()
}

func withLogging(handler func(*cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		setupLogging(ctx.Bool("debug"), ctx.Bool("no-color"))
		log.Debug().Strs("args", ctx.Args()).Bool("hex", ctx.Bool("hex")).Msg("running command")
		err := handler(ctx)
		if err != nil {
			log.Debug().Err(err).Str("kind", errors.KindOf(err).String()).Msg("command failed")
		}
		return err
	}
}
