package core

import "strconv"

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the jumper renderer. ColorDefault leaves the terminal's
// own foreground untouched.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorBrown
	ColorSky
)

var ansiCodes = [...]int{
	ColorDefault: -1,
	ColorRed:     9,
	ColorGreen:   10,
	ColorYellow:  11,
	ColorBlue:    12,
	ColorMagenta: 13,
	ColorCyan:    14,
	ColorWhite:   15,
	ColorOrange:  208,
	ColorGray:    245,
	ColorPink:    218,
	ColorBrown:   130,
	ColorSky:     117,
}

// ANSI returns the 256-color code as a string, or "" for ColorDefault and
// unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) || ansiCodes[c] < 0 {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
