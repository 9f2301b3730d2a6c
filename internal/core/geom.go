// Package core provides fundamental types and utilities shared by the game
// logic and its frontends. It has no rendering or input dependencies so the
// game logic stays pure and testable.
package core

// Rect represents an axis-aligned bounding box in playfield units.
// Y grows downwards.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter creates a rectangle of size w x h centred on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// RectFromMidTop creates a rectangle whose top edge midpoint is (cx, top).
func RectFromMidTop(cx, top, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: top, W: w, H: h}
}

// RectFromMidBottom creates a rectangle whose bottom edge midpoint is (cx, bottom).
func RectFromMidBottom(cx, bottom, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: bottom - h, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects reports whether this rectangle overlaps another.
// Touching edges count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The left and top edges are inclusive, the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
