package core

// Color represents a foreground color for a screen cell.
// Frontends map it to ANSI 256-color codes.
type Color uint8

// Palette used by the scroller renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)
