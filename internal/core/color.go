package core

// Color is the foreground color of a screen cell and the fill of a board cell.
// Values map onto ANSI 256-color codes in the platform layer.
//
// The zero value, ColorDefault, doubles as "empty" wherever a grid stores
// colors directly (the Tetris well does).
type Color uint8

// Predefined colors.
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

// IsEmpty reports whether c is the zero color.
func (c Color) IsEmpty() bool {
	return c == ColorDefault
}
