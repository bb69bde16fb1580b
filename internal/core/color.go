package core

// Color is a foreground color for a screen cell. The renderer maps it to
// an ANSI palette index; bright variants are also drawn bold.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightWhite
	ColorGray
)

// Bright returns the bright variant of a base color, or c itself.
func (c Color) Bright() Color {
	switch c {
	case ColorRed:
		return ColorBrightRed
	case ColorGreen:
		return ColorBrightGreen
	case ColorYellow:
		return ColorBrightYellow
	case ColorBlue:
		return ColorBrightBlue
	case ColorMagenta:
		return ColorBrightMagenta
	case ColorWhite:
		return ColorBrightWhite
	}
	return c
}
