package core

import "fmt"

// Color is a cell color: either one of the named palette entries below, which
// map to ANSI codes, or a 24-bit value built with RGB.
type Color uint32

// Predefined colors for terrain and controls.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSky
	ColorSand
	ColorBrown
)

const rgbFlag Color = 1 << 24

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return rgbFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsRGB reports whether c was built with RGB.
func (c Color) IsRGB() bool {
	return c&rgbFlag != 0
}

// Components returns the red, green and blue parts of an RGB color.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns an RGB color as #rrggbb.
func (c Color) Hex() string {
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
