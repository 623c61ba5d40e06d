// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// RectF is a float axis-aligned box in virtual pixels, used by the physics.
// Y grows downward, so Top < Bottom.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// NewRectF builds a box from its top-left corner and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent.
func (r RectF) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r RectF) Height() float64 {
	return r.Bottom - r.Top
}

// OverlapsX reports whether the horizontal spans overlap. Touching edges do not overlap.
func (r RectF) OverlapsX(o RectF) bool {
	return r.Left < o.Right && o.Left < r.Right
}

// OverlapsY reports whether the vertical spans overlap. Touching edges do not overlap.
func (r RectF) OverlapsY(o RectF) bool {
	return r.Top < o.Bottom && o.Top < r.Bottom
}

// Overlaps reports whether the boxes share any area.
func (r RectF) Overlaps(o RectF) bool {
	return r.OverlapsX(o) && r.OverlapsY(o)
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
