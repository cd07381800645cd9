package graphics

import (
	"image/color"
	"math"

	"github.com/go-playground/colors"
)

// ParseColor parses a "#rrggbb" or "#rgb" hex string into an opaque color.
func ParseColor(hex string) (color.Color, error) {
	c, err := colors.ParseHEX(hex)
	if err != nil {
		return nil, err
	}
	rgba := c.ToRGBA()
	return color.RGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(math.Round(rgba.A * 0xff))}, nil
}

func mustParseColor(hex string) color.Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
