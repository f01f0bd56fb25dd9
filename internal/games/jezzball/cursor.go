package jezzball

import "github.com/newmanne/jezzball/internal/core"

// Cursor is the placement pointer: a grid cell plus the orientation of the
// next barrier pair.
type Cursor struct {
	Cell Point // Top-left corner of the selected grid cell
	Axis Axis
}

// MoveTo places the cursor on the cell under (x, y).
func (c *Cursor) MoveTo(x, y int, f Field) {
	c.Cell = f.SnapOrigin(x, y)
}

// Step moves the cursor by whole cells, staying inside the field.
func (c *Cursor) Step(dx, dy int, f Field) {
	c.MoveTo(c.Cell.X+dx*f.Cell, c.Cell.Y+dy*f.Cell, f)
}

// Toggle flips the placement orientation.
func (c *Cursor) Toggle() {
	c.Axis = c.Axis.Toggle()
}

// applyInput updates the cursor from one frame of input. Absolute pointer
// motion is applied before keyboard steps.
func (c *Cursor) applyInput(in core.InputFrame, f Field) {
	if in.Pointer != nil {
		c.MoveTo(in.Pointer.X, in.Pointer.Y, f)
	}
	if in.Has(core.ActionUp) {
		c.Step(0, -1, f)
	}
	if in.Has(core.ActionDown) {
		c.Step(0, 1, f)
	}
	if in.Has(core.ActionLeft) {
		c.Step(-1, 0, f)
	}
	if in.Has(core.ActionRight) {
		c.Step(1, 0, f)
	}
	if in.Has(core.ActionToggleAxis) {
		c.Toggle()
	}
}
