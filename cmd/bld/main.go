package main

import (
	"context"
	"os"

	"github.com/aidarkhanov/nanoid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/ngld/bld/pkg/buildsys"
	"github.com/ngld/bld/pkg/cmd"
	"github.com/ngld/bld/pkg/config"
)

func main() {
	cfg, loader := config.Loader()
	if err := loader.Load(); err != nil {
		panic(err)
	}

	var logger zerolog.Logger
	if cfg.Log.JSON {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			return eris.ToJSON(err, true)
		}
	} else {
		logger = zerolog.New(cmd.NewConsoleWriter())
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse config")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())
	logger = logger.With().Str("run", nanoid.New()).Logger()

	ctx := buildsys.WithLogger(context.Background(), &logger)
	if err := cmd.Execute(ctx, cfg); err != nil {
		logger.Fatal().Err(err).Msg("Aborting")
	}
}
