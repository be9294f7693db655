package runner

import "github.com/vovakirdan/chromadash/internal/core"

// Color is the color state shared by the player and floor tiles.
type Color int

const (
	Red Color = iota
	Blue
)

// Other returns the opposite color.
func (c Color) Other() Color {
	if c == Red {
		return Blue
	}
	return Red
}

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// ParseColor parses a config color name.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "red":
		return Red, true
	case "blue":
		return Blue, true
	default:
		return Red, false
	}
}

// tileColor maps a tile color to its screen color.
func tileColor(c Color) core.Color {
	if c == Blue {
		return core.ColorBlue
	}
	return core.ColorRed
}

// playerColor maps the player color to its brighter screen color.
func playerColor(c Color) core.Color {
	if c == Blue {
		return core.ColorBrightBlue
	}
	return core.ColorBrightRed
}
