package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
)

// Cell is a single character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Bright reports whether c is one of the bright ANSI variants.
func (c Color) Bright() bool {
	return c >= ColorBrightRed && c <= ColorBrightWhite
}

// Brighten returns the bright variant of a basic ANSI color. Other colors
// are returned unchanged.
func (c Color) Brighten() Color {
	if c >= ColorRed && c <= ColorWhite {
		return c + (ColorBrightRed - ColorRed)
	}
	return c
}
