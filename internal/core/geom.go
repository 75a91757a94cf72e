// Package core provides fundamental types and utilities for the eggcatch platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "cmp"

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w by h rectangle centered in a width by height area.
func CenteredRect(w, h, width, height int) Rect {
	return Rect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset shrinks the rectangle by n cells on every side.
// The result never has negative size.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 0),
		H: max(r.H-2*n, 0),
	}
}

// Clamp restricts val to [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return min(max(val, lo), hi)
}

// ScaleToCell maps a coordinate in [0, span] onto one of cells screen cells.
// Values outside the span land on the first or last cell.
func ScaleToCell(v, span float64, cells int) int {
	if cells <= 0 || span <= 0 {
		return 0
	}
	return Clamp(int(v/span*float64(cells)), 0, cells-1)
}
