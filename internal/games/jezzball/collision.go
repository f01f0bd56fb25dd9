package jezzball

import "github.com/newmanne/jezzball/internal/core"

// Collidable is anything the ball can bounce off.
type Collidable interface {
	Bounds() core.Rect
	Axis() Axis
}

// Breakable is a Collidable that may be destroyed by the ball.
// Destroy reports whether the hit actually broke it.
type Breakable interface {
	Collidable
	Destroy() bool
}

// Collision describes the single hit resolved in a tick.
type Collision struct {
	Index     int  // Position of the struck obstacle in the input slice
	Destroyed bool // Whether the obstacle broke
}

// ResolveCollision tests the ball against obstacles in order and handles the
// first overlap only. Horizontal obstacles reflect vertical velocity,
// vertical obstacles reflect horizontal velocity. A Breakable obstacle is
// asked to break; its own state decides whether it does.
func ResolveCollision(ball *Ball, obstacles []Collidable) (Collision, bool) {
	for i, o := range obstacles {
		if !core.CircleIntersectsRect(ball.X, ball.Y, ball.Radius, o.Bounds()) {
			continue
		}

		switch o.Axis() {
		case AxisHorizontal:
			ball.BounceY()
		case AxisVertical:
			ball.BounceX()
		}

		hit := Collision{Index: i}
		if br, ok := o.(Breakable); ok {
			hit.Destroyed = br.Destroy()
		}
		return hit, true
	}
	return Collision{Index: -1}, false
}
