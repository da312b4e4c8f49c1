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
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Palette colors used by the horse game.
const (
	ColorHorse    = ColorBrightYellow
	ColorObstacle = ColorGreen
	ColorGround   = ColorGray
	ColorScore    = ColorBrightWhite
)

// ansiCodes maps each color to its ANSI 256-color code.
var ansiCodes = map[Color]int{
	ColorRed:          1,
	ColorGreen:        2,
	ColorYellow:       3,
	ColorCyan:         6,
	ColorWhite:        7,
	ColorBrightYellow: 11,
	ColorBrightWhite:  15,
	ColorOrange:       208,
	ColorGray:         245,
}

// ANSI returns the 256-color code for c. The boolean is false for
// ColorDefault and unknown colors, which use the terminal's own foreground.
func (c Color) ANSI() (int, bool) {
	code, ok := ansiCodes[c]
	return code, ok
}
