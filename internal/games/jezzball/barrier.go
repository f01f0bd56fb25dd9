package jezzball

import (
	"fmt"

	"github.com/newmanne/jezzball/internal/core"
)

// BarrierState is the lifecycle state of a barrier.
type BarrierState int

const (
	BarrierGrowing BarrierState = iota
	BarrierCompleted
	BarrierDestroyed
)

// String returns a human-readable name for the state.
func (s BarrierState) String() string {
	switch s {
	case BarrierGrowing:
		return "Growing"
	case BarrierCompleted:
		return "Completed"
	case BarrierDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Barrier is a grid-aligned obstacle growing from Origin in Dir.
// Growing barriers break when the ball touches them; completed barriers are
// permanent.
type Barrier struct {
	ID        int
	Origin    Point
	Dir       Direction
	Extent    int // Current length along Dir, never negative
	Thickness int // Width across Dir, one grid cell
	State     BarrierState

	// seed is the placement cell covered by the lead ray of a pair.
	// Empty for trail rays and standalone barriers.
	seed core.Rect
}

// NewBarrier creates a growing barrier with zero extent.
func NewBarrier(id int, origin Point, dir Direction, thickness int) (*Barrier, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	return &Barrier{
		ID:        id,
		Origin:    origin,
		Dir:       dir,
		Thickness: thickness,
		State:     BarrierGrowing,
	}, nil
}

// Grow advances a growing barrier by unit. When the next extent would reach
// or pass the field boundary the extent is clamped to the boundary distance
// and the barrier completes. Returns true only on the tick it completes.
func (b *Barrier) Grow(unit int, f Field) bool {
	if b.State != BarrierGrowing {
		return false
	}
	limit := MaxExtent(b.Dir, b.Origin, f)
	next := b.Extent + unit
	if next >= limit {
		b.Extent = limit
		b.State = BarrierCompleted
		return true
	}
	b.Extent = next
	return false
}

// Destroy breaks a growing barrier. Completed and already destroyed
// barriers are left as they are; the return value reports whether the
// state changed.
func (b *Barrier) Destroy() bool {
	if b.State != BarrierGrowing {
		return false
	}
	b.State = BarrierDestroyed
	return true
}

// Bounds returns the barrier's collision rectangle, including its seed cell.
func (b *Barrier) Bounds() core.Rect {
	r := ComputeRect(b.Dir, b.Origin, b.Extent, b.Thickness)
	if b.seed.Empty() {
		return r
	}
	return r.Union(b.seed)
}

// Axis returns the barrier's growth axis.
func (b *Barrier) Axis() Axis {
	return b.Dir.Axis()
}

// Tip returns the growing end of the barrier.
func (b *Barrier) Tip() Point {
	dx, dy := b.Dir.Delta()
	return Point{X: b.Origin.X + dx*b.Extent, Y: b.Origin.Y + dy*b.Extent}
}

// Live reports whether the barrier is still part of the field.
func (b *Barrier) Live() bool {
	return b.State != BarrierDestroyed
}
