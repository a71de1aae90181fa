package core

import "github.com/vovakirdan/tui-dots/internal/dots"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined terminal colors.
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

// DotColor returns the terminal color used to draw a dot.
func DotColor(c dots.Color) Color {
	switch c {
	case dots.ColorRed:
		return ColorBrightRed
	case dots.ColorGreen:
		return ColorBrightGreen
	case dots.ColorBlue:
		return ColorBrightBlue
	case dots.ColorYellow:
		return ColorBrightYellow
	case dots.ColorPurple:
		return ColorBrightMagenta
	case dots.ColorOrange:
		return ColorOrange
	case dots.ColorCyan:
		return ColorBrightCyan
	case dots.ColorWhite:
		return ColorBrightWhite
	default:
		return ColorGray
	}
}
