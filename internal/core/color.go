package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the board and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorPink
	ColorCyan
	ColorOrange
	ColorYellow
	ColorBlue
	ColorBrightBlue
	ColorWhite
	ColorGray
	ColorGreen
)
