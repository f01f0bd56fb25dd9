package desktop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/newmanne/jezzball/internal/core"
	"github.com/newmanne/jezzball/internal/games/jezzball"
)

// flashSeconds is how long a completed barrier stays highlighted.
const flashSeconds = 0.5

// flash fades a highlight over a barrier that just completed.
type flash struct {
	bounds core.Rect
	tween  *gween.Tween
	alpha  float32
	done   bool
}

func newFlash(bounds core.Rect) *flash {
	return &flash{
		bounds: bounds,
		tween:  gween.New(1, 0, flashSeconds, ease.OutQuad),
		alpha:  1,
	}
}

// update advances the fade by dt seconds.
func (f *flash) update(dt float32) {
	if f.done {
		return
	}
	f.alpha, f.done = f.tween.Update(dt)
}

// flashes collects completion highlights and forwards every notification
// to the next observer.
type flashes struct {
	next   jezzball.Observer
	active []*flash
}

var _ jezzball.Observer = (*flashes)(nil)

func newFlashes(next jezzball.Observer) *flashes {
	if next == nil {
		next = jezzball.NopObserver{}
	}
	return &flashes{next: next}
}

func (f *flashes) OnBarrierCompleted(b jezzball.Barrier) {
	f.active = append(f.active, newFlash(b.Bounds()))
	f.next.OnBarrierCompleted(b)
}

func (f *flashes) EvaluateEnclosure(completed []jezzball.Barrier) {
	f.next.EvaluateEnclosure(completed)
}

// update advances all highlights and drops finished ones.
func (f *flashes) update(dt float32) {
	kept := f.active[:0]
	for _, fl := range f.active {
		fl.update(dt)
		if !fl.done {
			kept = append(kept, fl)
		}
	}
	f.active = kept
}

// reset drops all highlights.
func (f *flashes) reset() {
	f.active = f.active[:0]
}
