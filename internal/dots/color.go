package dots

import "strings"

// Color is the color of a single dot.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCyan
	ColorWhite
	ColorCount // Sentinel value for iteration
)

// MinPalette and MaxPalette bound the number of colors a game may use.
const (
	MinPalette = 2
	MaxPalette = int(ColorCount)
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Char returns a single letter for the color, used by text boards.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	case ColorCyan:
		return 'C'
	case ColorWhite:
		return 'W'
	default:
		return '?'
	}
}

// Valid reports whether c is one of the defined colors.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a name or single letter to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	case "cyan", "c":
		return ColorCyan, true
	case "white", "w":
		return ColorWhite, true
	default:
		return ColorRed, false
	}
}

// Palette returns the first n colors of the color set.
// n is clamped to [MinPalette, MaxPalette].
func Palette(n int) []Color {
	if n < MinPalette {
		n = MinPalette
	}
	if n > MaxPalette {
		n = MaxPalette
	}
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}
