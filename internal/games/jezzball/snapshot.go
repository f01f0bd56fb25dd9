package jezzball

import "math"

// Snapshot contains the simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Completed int
	Destroyed int
	Paused    bool

	// Ball position and velocity as float64 bit patterns
	BallX, BallY   uint64
	BallVX, BallVY uint64

	CursorX, CursorY int
	Axis             int

	// Live barriers (each barrier is 7 ints: ID, OriginX, OriginY, Dir, Extent, Thickness, State)
	BarrierCount int
	BarrierData  []int

	// Pending growth events (each event is 3 values: FireAt, Kind, BarrierID)
	EventData []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	barrierData := make([]int, 0, len(g.barriers)*7)
	for _, b := range g.barriers {
		barrierData = append(barrierData,
			b.ID, b.Origin.X, b.Origin.Y, int(b.Dir), b.Extent, b.Thickness, int(b.State))
	}

	eventData := make([]uint64, 0, len(g.sched.events)*3)
	for _, e := range g.sched.events {
		eventData = append(eventData, e.FireAt, uint64(e.Kind), uint64(e.BarrierID)) //#nosec G115 -- ids are positive
	}

	return Snapshot{
		Tick:         g.tick,
		Completed:    g.completed,
		Destroyed:    g.destroyed,
		Paused:       g.paused,
		BallX:        math.Float64bits(g.ball.X),
		BallY:        math.Float64bits(g.ball.Y),
		BallVX:       math.Float64bits(g.ball.VX),
		BallVY:       math.Float64bits(g.ball.VY),
		CursorX:      g.cursor.Cell.X,
		CursorY:      g.cursor.Cell.Y,
		Axis:         int(g.cursor.Axis),
		BarrierCount: len(g.barriers),
		BarrierData:  barrierData,
		EventData:    eventData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Completed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + snap.BallX
	h = h*31 + snap.BallY
	h = h*31 + snap.BallVX
	h = h*31 + snap.BallVY
	h = h*31 + uint64(snap.CursorX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Axis)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BarrierCount) //#nosec G115 -- hash computation

	for _, v := range snap.BarrierData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EventData {
		h = h*31 + v
	}

	return h
}
