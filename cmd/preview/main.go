package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/hrko/statusicons/internal/iconset"
	"github.com/hrko/statusicons/internal/preview"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: preview <icon_dir> <output_dir>")
		os.Exit(1)
	}
	iconDir := os.Args[1]
	outDir := os.Args[2]

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Str("component", "preview").Logger()

	icons, err := iconset.NewGenerator(iconDir, io.Discard).Icons()
	if err != nil {
		logger.Fatal().Err(err).Msg("listing icons")
	}

	written, err := preview.DefaultOptions().Write(iconDir, outDir, icons)
	for _, path := range written {
		logger.Info().Str("path", path).Msg("preview written")
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("writing previews")
	}
}
