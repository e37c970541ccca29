package render

import (
	"github.com/lguibr/dxball/game"
	"github.com/lguibr/dxball/utils"
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// Grayscale conversion factors for RGB components (luminosity method)
const (
	RFactor = 0.299
	GFactor = 0.587
	BFactor = 0.114
)

// Gray converts a block color to a grayscale level in [0,255].
func Gray(c game.Color) uint8 {
	gray := RFactor*clamp01(c.R) + GFactor*clamp01(c.G) + BFactor*clamp01(c.B)
	return uint8(gray*255 + 0.5)
}

// Shade maps a color to a glyph from the ramp. Brighter colors get denser glyphs so blocks
// stay visible on a dark terminal; the blank first glyph is never used.
func Shade(c game.Color) rune {
	steps := len(asciiChars) - 1
	index := 1 + int(float64(Gray(c))/255*float64(steps-1)+0.5)
	if index > steps {
		index = steps
	}
	return rune(asciiChars[index])
}

// RGB8 converts a color to 8-bit channels for terminal and image output.
func RGB8(c game.Color) (r, g, b uint8) {
	return uint8(clamp01(c.R)*255 + 0.5), uint8(clamp01(c.G)*255 + 0.5), uint8(clamp01(c.B)*255 + 0.5)
}

func clamp01(v float64) float64 {
	return utils.Clamp(v, 0, 1)
}
