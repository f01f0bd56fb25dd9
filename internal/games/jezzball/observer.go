package jezzball

// Observer receives engine notifications. Calls happen on the loop goroutine
// inside Step and must not retain the slices passed in.
type Observer interface {
	// OnBarrierCompleted is called once when a barrier reaches the boundary.
	OnBarrierCompleted(b Barrier)

	// EvaluateEnclosure is called every running tick, after collisions, with
	// the completed barriers. Region detection hooks in here.
	EvaluateEnclosure(completed []Barrier)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) OnBarrierCompleted(Barrier) {}

func (NopObserver) EvaluateEnclosure([]Barrier) {}
