package jezzball

import "sort"

// EventKind identifies what a scheduled event does when it fires.
type EventKind int

const (
	EventGrow EventKind = iota + 1 // Advance a barrier by one growth unit
)

// Event is a pending timer entry. Events fire in (FireAt, Seq) order.
type Event struct {
	FireAt    uint64
	Seq       uint64
	Kind      EventKind
	BarrierID int
}

// Scheduler is an ordered list of pending events driven by the tick counter.
// It holds no clock of its own.
type Scheduler struct {
	events []Event
	seq    uint64
}

// Schedule adds an event firing at tick at.
func (s *Scheduler) Schedule(at uint64, kind EventKind, barrierID int) {
	s.seq++
	ev := Event{FireAt: at, Seq: s.seq, Kind: kind, BarrierID: barrierID}

	i := sort.Search(len(s.events), func(i int) bool {
		e := s.events[i]
		return e.FireAt > ev.FireAt || (e.FireAt == ev.FireAt && e.Seq > ev.Seq)
	})
	s.events = append(s.events, Event{})
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = ev
}

// PopDue removes and returns every event with FireAt <= now, in order.
func (s *Scheduler) PopDue(now uint64) []Event {
	n := sort.Search(len(s.events), func(i int) bool {
		return s.events[i].FireAt > now
	})
	if n == 0 {
		return nil
	}
	due := make([]Event, n)
	copy(due, s.events[:n])
	s.events = append(s.events[:0], s.events[n:]...)
	return due
}

// Cancel drops all pending events for a barrier and returns how many were
// removed. Cancelling a barrier with nothing pending is a no-op.
func (s *Scheduler) Cancel(barrierID int) int {
	kept := s.events[:0]
	removed := 0
	for _, e := range s.events {
		if e.BarrierID == barrierID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	return removed
}

// Len returns the number of pending events.
func (s *Scheduler) Len() int {
	return len(s.events)
}

// Reset drops every pending event.
func (s *Scheduler) Reset() {
	s.events = s.events[:0]
	s.seq = 0
}
