package jezzball

import "github.com/newmanne/jezzball/internal/core"

// Field is the play area. Coordinates run from (0, 0) at the top-left to
// (Width, Height); Cell is the grid pitch used for snapping and growth.
type Field struct {
	Width  int
	Height int
	Cell   int
}

// Center returns the middle of the field.
func (f Field) Center() (float64, float64) {
	return float64(f.Width) / 2, float64(f.Height) / 2
}

// Contains reports whether (x, y) lies within the field bounds, edges included.
func (f Field) Contains(x, y float64) bool {
	return x >= 0 && x <= float64(f.Width) && y >= 0 && y <= float64(f.Height)
}

// SnapOrigin snaps a pointer position to the top-left corner of the grid
// cell under it, clamped so the whole cell lies inside the field.
func (f Field) SnapOrigin(x, y int) Point {
	maxX := core.Max(f.Width-f.Cell, 0)
	maxY := core.Max(f.Height-f.Cell, 0)
	return Point{
		X: core.SnapToGrid(core.Clamp(x, 0, maxX), f.Cell),
		Y: core.SnapToGrid(core.Clamp(y, 0, maxY), f.Cell),
	}
}

// CellRect returns the grid cell whose top-left corner is p.
func (f Field) CellRect(p Point) core.Rect {
	return core.NewRect(p.X, p.Y, f.Cell, f.Cell)
}

// Columns returns the number of whole grid columns in the field.
func (f Field) Columns() int {
	if f.Cell <= 0 {
		return 0
	}
	return f.Width / f.Cell
}

// Rows returns the number of whole grid rows in the field.
func (f Field) Rows() int {
	if f.Cell <= 0 {
		return 0
	}
	return f.Height / f.Cell
}
