package confetti

import "fmt"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Color names the confetti palette entries.
type Color uint8

const (
	Red Color = iota
	Pink
	Yellow
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Pink:
		return "pink"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

var Palette = struct {
	Red    RGB
	Pink   RGB
	Yellow RGB
	Green  RGB
	Blue   RGB
	Stroke RGB
}{
	Red:    RGB{R: 0xD7, G: 0x2D, B: 0x35},
	Pink:   RGB{R: 0xF2, G: 0x29, B: 0x8A},
	Yellow: RGB{R: 0xF2, G: 0xC6, B: 0x18},
	Green:  RGB{R: 0x2A, G: 0xCC, B: 0x42},
	Blue:   RGB{R: 0x37, G: 0xCB, B: 0xE8},
	Stroke: RGB{R: 0, G: 0, B: 0},
}

// ColorRGB maps a palette name to its fill value.
func ColorRGB(c Color) RGB {
	switch c {
	case Red:
		return Palette.Red
	case Pink:
		return Palette.Pink
	case Yellow:
		return Palette.Yellow
	case Green:
		return Palette.Green
	case Blue:
		return Palette.Blue
	}
	return Palette.Stroke
}
