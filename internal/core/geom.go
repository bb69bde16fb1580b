// Package core provides the platform types shared by every game: the
// screen buffer, input frames and runtime configuration.
// It has no external dependencies, so game logic stays testable without
// a terminal.
package core

// Rect is an axis-aligned screen area in character cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w×h rectangle centered inside an outerW×outerH area.
func CenteredRect(outerW, outerH, w, h int) Rect {
	return Rect{X: (outerW - w) / 2, Y: (outerH - h) / 2, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
