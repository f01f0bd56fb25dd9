package jezzball

import "math"

// EdgeMode controls what happens when the ball reaches the field edge.
type EdgeMode string

const (
	EdgeRecenter EdgeMode = "recenter" // Ball leaving the field reappears at the center
	EdgeBounce   EdgeMode = "bounce"   // Ball reflects off the field edges
)

// Ball is the bouncing hazard. Position is the circle center.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Recenter puts the ball back in the middle of the field, keeping velocity.
func (b *Ball) Recenter(f Field) {
	b.X, b.Y = f.Center()
}

// KeepInField applies the edge mode after a move. It reports whether the
// ball was outside the field.
func (b *Ball) KeepInField(f Field, mode EdgeMode) bool {
	if mode == EdgeBounce {
		return b.bounceOffEdges(f)
	}
	if f.Contains(b.X, b.Y) {
		return false
	}
	b.Recenter(f)
	return true
}

func (b *Ball) bounceOffEdges(f Field) bool {
	hit := false
	w, h := float64(f.Width), float64(f.Height)
	if b.X-b.Radius < 0 {
		b.X = math.Min(b.Radius, w)
		b.VX = math.Abs(b.VX)
		hit = true
	} else if b.X+b.Radius > w {
		b.X = math.Max(w-b.Radius, 0)
		b.VX = -math.Abs(b.VX)
		hit = true
	}
	if b.Y-b.Radius < 0 {
		b.Y = math.Min(b.Radius, h)
		b.VY = math.Abs(b.VY)
		hit = true
	} else if b.Y+b.Radius > h {
		b.Y = math.Max(h-b.Radius, 0)
		b.VY = -math.Abs(b.VY)
		hit = true
	}
	return hit
}
