// Package jezzball implements the growth-and-collision engine of a JezzBall
// style game: grid-aligned barriers grow in pairs from a placement cell until
// they reach the field boundary, while a bouncing ball destroys any barrier
// it touches before completion.
package jezzball

import (
	"errors"

	"github.com/newmanne/jezzball/internal/core"
)

// Sentinel errors for placement requests.
var (
	ErrInvalidDirection = errors.New("jezzball: invalid barrier direction")
	ErrInvalidAxis      = errors.New("jezzball: invalid placement axis")
)

// Direction is the way a barrier grows from its origin.
// The zero value is not a valid direction.
type Direction int

const (
	DirUp Direction = iota + 1
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four growth directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Invalid"
	}
}

// Delta returns the unit step of growth along x and y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Axis returns the growth axis of the direction.
func (d Direction) Axis() Axis {
	switch d {
	case DirUp, DirDown:
		return AxisVertical
	case DirLeft, DirRight:
		return AxisHorizontal
	}
	return AxisNone
}

// Axis is the orientation of a barrier pair.
type Axis int

const (
	AxisNone Axis = iota
	AxisVertical
	AxisHorizontal
)

// Valid reports whether a is a placement orientation.
func (a Axis) Valid() bool {
	return a == AxisVertical || a == AxisHorizontal
}

// Toggle returns the other orientation.
func (a Axis) Toggle() Axis {
	if a == AxisVertical {
		return AxisHorizontal
	}
	return AxisVertical
}

// Directions returns the lead and trail directions of a pair on this axis.
// The lead ray grows toward 0, the trail ray toward the far boundary.
func (a Axis) Directions() (lead, trail Direction) {
	switch a {
	case AxisVertical:
		return DirUp, DirDown
	case AxisHorizontal:
		return DirLeft, DirRight
	}
	return 0, 0
}

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "Vertical"
	case AxisHorizontal:
		return "Horizontal"
	default:
		return "None"
	}
}

// Point is an integer position in field units.
type Point struct {
	X, Y int
}

// ComputeRect returns the rectangle a barrier occupies after growing extent
// units from origin in direction d. The long axis equals extent and the short
// axis equals thickness. The rectangle always reaches from the origin toward
// d, so for Up and Left the top-left corner is the growing tip.
func ComputeRect(d Direction, origin Point, extent, thickness int) core.Rect {
	if !d.Valid() {
		return core.Rect{}
	}
	extent = core.Max(extent, 0)
	thickness = core.Max(thickness, 0)

	dx, dy := d.Delta()
	// The far corner moves along the growth axis by extent and across it by
	// thickness; RectFromEdges orders the two corners.
	farX := origin.X + dx*extent + core.Abs(dy)*thickness
	farY := origin.Y + dy*extent + core.Abs(dx)*thickness
	return core.RectFromEdges(origin.X, origin.Y, farX, farY)
}

// MaxExtent returns the distance from origin to the field boundary in
// direction d. It is never negative.
func MaxExtent(d Direction, origin Point, f Field) int {
	var dist int
	switch d {
	case DirUp:
		dist = origin.Y
	case DirLeft:
		dist = origin.X
	case DirDown:
		dist = f.Height - origin.Y
	case DirRight:
		dist = f.Width - origin.X
	}
	return core.Max(dist, 0)
}
