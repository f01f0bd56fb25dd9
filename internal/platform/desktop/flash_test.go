package desktop

import (
	"testing"

	"github.com/newmanne/jezzball/internal/core"
	"github.com/newmanne/jezzball/internal/games/jezzball"
)

type countingObserver struct {
	completed   int
	evaluations int
}

func (c *countingObserver) OnBarrierCompleted(jezzball.Barrier) { c.completed++ }

func (c *countingObserver) EvaluateEnclosure([]jezzball.Barrier) { c.evaluations++ }

func TestFlashFades(t *testing.T) {
	f := newFlash(core.NewRect(0, 0, 20, 20))
	if f.alpha != 1 {
		t.Fatalf("initial alpha = %v, expected 1", f.alpha)
	}

	f.update(flashSeconds / 2)
	if f.done {
		t.Fatal("flash finished halfway through")
	}
	if f.alpha <= 0 || f.alpha >= 1 {
		t.Errorf("alpha halfway = %v, expected between 0 and 1", f.alpha)
	}

	f.update(flashSeconds)
	if !f.done {
		t.Error("flash should be done after its duration")
	}
	if f.alpha != 0 {
		t.Errorf("final alpha = %v, expected 0", f.alpha)
	}
}

func TestFlashesForwardAndExpire(t *testing.T) {
	next := &countingObserver{}
	fl := newFlashes(next)

	b, err := jezzball.NewBarrier(1, jezzball.Point{X: 400, Y: 280}, jezzball.DirUp, 20)
	if err != nil {
		t.Fatalf("NewBarrier() failed: %v", err)
	}
	fl.OnBarrierCompleted(*b)
	fl.EvaluateEnclosure([]jezzball.Barrier{*b})

	if next.completed != 1 || next.evaluations != 1 {
		t.Errorf("forwarded = (%d, %d), expected (1, 1)", next.completed, next.evaluations)
	}
	if len(fl.active) != 1 {
		t.Fatalf("active flashes = %d, expected 1", len(fl.active))
	}
	if fl.active[0].bounds != b.Bounds() {
		t.Errorf("flash bounds = %v, expected %v", fl.active[0].bounds, b.Bounds())
	}

	fl.update(flashSeconds * 2)
	if len(fl.active) != 0 {
		t.Errorf("active flashes after expiry = %d, expected 0", len(fl.active))
	}
}

func TestFlashesNilNext(t *testing.T) {
	fl := newFlashes(nil)
	fl.EvaluateEnclosure(nil)
	fl.OnBarrierCompleted(jezzball.Barrier{})
	if len(fl.active) != 1 {
		t.Errorf("active flashes = %d, expected 1", len(fl.active))
	}
}
