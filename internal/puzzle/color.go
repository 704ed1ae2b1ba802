package puzzle

import "strings"

// Color represents a pebble color.
type Color uint8

const (
	ColorRed Color = iota
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorGlow // Wildcard: connects with any adjacent pebble during matching
)

// ConcreteColorCount is the number of regular (non-glow) colors.
const ConcreteColorCount = 5

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorGlow:
		return "glow"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorPurple:
		return 'P'
	case ColorGlow:
		return '*'
	default:
		return '?'
	}
}

// Matches reports whether a pebble of this color joins a flood fill seeded
// with the given color. A glow pebble joins any search, and a glow-seeded
// search accepts every color: the test is only selective when the seed is a
// concrete color.
func (c Color) Matches(seed Color) bool {
	return c == seed || c == ColorGlow || seed == ColorGlow
}

// ParseColor converts a string to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "purple", "p":
		return ColorPurple, true
	case "glow", "*":
		return ColorGlow, true
	default:
		return ColorRed, false
	}
}

// ConcreteColors returns all regular colors, excluding glow.
func ConcreteColors() []Color {
	return []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorPurple}
}

// Cell represents a single cell on the board.
type Cell struct {
	Filled bool  // Whether the cell contains a pebble
	Color  Color // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Filled: false}
}

// Pebble returns a filled cell with the given color.
func Pebble(c Color) Cell {
	return Cell{Filled: true, Color: c}
}
