// Package core holds the terminal-agnostic building blocks shared by the
// game engine and the platform layer: the cell screen buffer, layout
// rectangles, input frames and runtime settings. It has no Bubble Tea
// dependency so the engine stays testable without a terminal.
package core

// Rect is an axis-aligned area of the screen.
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

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
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

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	out.W = max(out.W, 0)
	out.H = max(out.H, 0)
	return out
}

// SplitLeft cuts a column of width w off the left side and returns it
// together with the remainder. w is clamped to the rectangle width.
func (r Rect) SplitLeft(w int) (left, rest Rect) {
	w = Clamp(w, 0, r.W)
	left = Rect{X: r.X, Y: r.Y, W: w, H: r.H}
	rest = Rect{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
	return left, rest
}

// SplitTop cuts a band of height h off the top and returns it together with
// the remainder. h is clamped to the rectangle height.
func (r Rect) SplitTop(h int) (top, rest Rect) {
	h = Clamp(h, 0, r.H)
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	rest = Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	return top, rest
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

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
