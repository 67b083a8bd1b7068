package canvas

import (
	"fmt"
	"strings"
)

// Mode selects the pattern pair drawn on the two layers.
type Mode int

const (
	// ModeCheckerOnBlack draws the palette color against black cells.
	ModeCheckerOnBlack Mode = iota
	// ModeCheckerOnWhite draws the palette color against white cells.
	ModeCheckerOnWhite
	// ModeSolidOnWhite is a white canvas hiding a flat coat of the
	// palette color, so scratching works like painting.
	ModeSolidOnWhite
	// ModeSolidOnBlack is the same over a dark canvas.
	ModeSolidOnBlack

	numModes = 4
)

// DefaultCellSize is the checkerboard cell side used by the application.
const DefaultCellSize = 20

func (m Mode) String() string {
	switch m {
	case ModeCheckerOnBlack:
		return "checker-black"
	case ModeCheckerOnWhite:
		return "checker-white"
	case ModeSolidOnWhite:
		return "solid-white"
	case ModeSolidOnBlack:
		return "solid-black"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a config or flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checker-black":
		return ModeCheckerOnBlack, nil
	case "checker-white":
		return ModeCheckerOnWhite, nil
	case "solid-white":
		return ModeSolidOnWhite, nil
	case "solid-black":
		return ModeSolidOnBlack, nil
	}
	return 0, fmt.Errorf("unknown canvas mode %q", s)
}

// Next returns the following mode, wrapping around.
func (m Mode) Next() Mode {
	return (m + 1) % numModes
}

func (m Mode) solid() bool {
	return m == ModeSolidOnWhite || m == ModeSolidOnBlack
}

// background returns the gray value of uncolored cells for checker modes.
func (m Mode) background() uint8 {
	if m == ModeCheckerOnBlack {
		return 0
	}
	return 255
}

// PaletteColor is one selectable drawing color.
type PaletteColor struct {
	Name    string
	R, G, B uint8
}

var palette = []PaletteColor{
	{"Royal Blue", 65, 105, 225},
	{"Blue Violet", 138, 43, 226},
	{"Crimson", 220, 20, 60},
	{"Dark Orange", 255, 140, 0},
	{"Gold", 255, 215, 0},
	{"Forest Green", 34, 139, 34},
}

// Palette returns a copy of the selectable colors.
func Palette() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// PaletteLen reports the number of selectable colors.
func PaletteLen() int { return len(palette) }

// PaletteColorAt returns the palette entry at idx, clamped into range.
func PaletteColorAt(idx int) PaletteColor {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}

// GenerateTopLayer fills dst with the visible pattern: the checkerboard in
// its normal orientation, or the plain canvas background in solid modes.
// Every pixel of dst is written.
func GenerateTopLayer(dst *Layer, mode Mode, color PaletteColor, cellSize int) {
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			var r, g, b uint8
			switch {
			case mode == ModeSolidOnWhite:
				r, g, b = 255, 255, 255
			case mode == ModeSolidOnBlack:
				r, g, b = 20, 20, 20
			default:
				r, g, b = checkerAt(x, y, mode, color, cellSize)
			}
			dst.setRGB(x, y, r, g, b)
		}
	}
}

// GenerateRevealedLayer fills dst with the hidden pattern: the same
// checkerboard rotated 90 degrees so it reads differently from the top
// layer, or the flat palette color in solid modes. Every pixel is written.
func GenerateRevealedLayer(dst *Layer, mode Mode, color PaletteColor, cellSize int) {
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			var r, g, b uint8
			if mode.solid() {
				r, g, b = color.R, color.G, color.B
			} else {
				rotX, rotY := y, Width-1-x
				r, g, b = checkerAt(rotX, rotY, mode, color, cellSize)
			}
			dst.setRGB(x, y, r, g, b)
		}
	}
}

// checkerAt evaluates the cell test for logical position (x, y): cells with
// odd cellX+cellY carry the palette color, the rest the mode background.
func checkerAt(x, y int, mode Mode, color PaletteColor, cellSize int) (r, g, b uint8) {
	cellX := x / cellSize
	cellY := y / cellSize
	if (cellX+cellY)%2 == 1 {
		return color.R, color.G, color.B
	}
	bg := mode.background()
	return bg, bg, bg
}
