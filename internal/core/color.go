package core

// Color represents a foreground color for a screen cell.
// Frontends map it to their own palette.
type Color uint8

// Colors used by the arena renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorWhite
	ColorGray
	ColorYellow
)
