package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/hrko/statusicons/internal/iconcheck"
	"github.com/hrko/statusicons/internal/iconset"
)

const iconSize = 16

func main() {
	dir := iconset.DefaultDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Str("component", "icon-check").Logger()

	names, err := iconset.NewGenerator(dir, io.Discard).Names()
	if err != nil {
		logger.Fatal().Err(err).Msg("listing icons")
	}

	report, err := iconcheck.Check(dir, names, iconSize)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", dir).Msg("checking icons")
	}
	b, err := report.JSON()
	if err != nil {
		logger.Fatal().Err(err).Msg("encoding report")
	}
	fmt.Print(string(b))

	if !report.OK {
		logger.Error().Str("dir", dir).Msg("icon check failed")
		os.Exit(1)
	}
}
