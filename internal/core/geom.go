// Package core provides fundamental types and utilities for the arcade console.
// It contains no terminal dependencies so that engines stay pure and testable.
package core

// Point is an integer coordinate on a game grid or on the display.
type Point struct {
	X, Y int
}

// None is the sentinel for "nothing placed" (no apple, no animal, no piece).
var None = Point{X: -1, Y: -1}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// IsNone reports whether p is the sentinel position.
func (p Point) IsNone() bool {
	return p == None
}

// Wrap maps v into [0, n) treating the axis as a torus.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// WrapPoint wraps both coordinates of p into a w×h torus.
func WrapPoint(p Point, w, h int) Point {
	return Point{X: Wrap(p.X, w), Y: Wrap(p.Y, h)}
}

// Rect represents an axis-aligned box.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlapping part of r and other.
// The result has zero size when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
