// Package core provides fundamental types and utilities shared by the game
// engine and its platform adapters. It has no external dependencies so the
// engine stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in field units.
// W and H are never negative for rectangles built with NewRect or RectFromEdges.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a rectangle, normalizing a negative width or height so the
// result always has its top-left corner at (X, Y).
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromEdges builds a rectangle spanning two corner points in any order.
func RectFromEdges(x0, y0, x1, y1 int) Rect {
	return Rect{
		X: Min(x0, x1),
		Y: Min(y0, y1),
		W: Abs(x1 - x0),
		H: Abs(y1 - y0),
	}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Union returns the smallest rectangle covering both r and other.
// An empty operand is ignored; if both are empty r is returned unchanged,
// so a zero-area edge keeps its position.
func (r Rect) Union(other Rect) Rect {
	if other.Empty() {
		return r
	}
	if r.Empty() {
		return other
	}
	return RectFromEdges(
		Min(r.X, other.X), Min(r.Y, other.Y),
		Max(r.Right(), other.Right()), Max(r.Bottom(), other.Bottom()),
	)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CircleIntersectsRect reports whether a circle overlaps r. Touching the
// boundary counts as overlap. A rectangle with zero width or height still
// collides along its degenerate edge.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	nearestX := ClampF(cx, float64(r.X), float64(r.Right()))
	nearestY := ClampF(cy, float64(r.Y), float64(r.Bottom()))
	dx := cx - nearestX
	dy := cy - nearestY
	return dx*dx+dy*dy <= radius*radius
}

// SnapToGrid returns the largest multiple of cell that is <= coord.
// A non-positive cell leaves coord unchanged.
func SnapToGrid(coord, cell int) int {
	if cell <= 0 {
		return coord
	}
	m := coord % cell
	if m < 0 {
		m += cell
	}
	return coord - m
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
	return math.Max(min, math.Min(max, val))
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
