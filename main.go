package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/hrko/statusicons/internal/iconset"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Str("component", "icon-gen").Logger()

	if err := run(logger); err != nil {
		logger.Error().Err(err).Msg("icon generation failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger) error {
	g := iconset.NewGenerator(iconset.DefaultDir, os.Stdout)
	g.Logger = logger
	logger.Debug().Str("dir", g.Dir).Msg("generating icons")
	return g.Run()
}
