package jezzball

import "testing"

// hasPending reports whether barrierID has any scheduled event.
func hasPending(s *Scheduler, barrierID int) bool {
	for _, e := range s.events {
		if e.BarrierID == barrierID {
			return true
		}
	}
	return false
}

func TestSchedulerOrder(t *testing.T) {
	var s Scheduler
	s.Schedule(10, EventGrow, 3)
	s.Schedule(5, EventGrow, 1)
	s.Schedule(10, EventGrow, 2)
	s.Schedule(7, EventGrow, 4)

	due := s.PopDue(10)
	want := []int{1, 4, 3, 2}
	if len(due) != len(want) {
		t.Fatalf("PopDue(10) returned %d events, expected %d", len(due), len(want))
	}
	for i, id := range want {
		if due[i].BarrierID != id {
			t.Errorf("event %d = barrier %d, expected %d", i, due[i].BarrierID, id)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestSchedulerPopDueLeavesFuture(t *testing.T) {
	var s Scheduler
	s.Schedule(3, EventGrow, 1)
	s.Schedule(9, EventGrow, 2)

	if due := s.PopDue(2); len(due) != 0 {
		t.Errorf("PopDue(2) = %v, expected nothing", due)
	}
	if due := s.PopDue(3); len(due) != 1 || due[0].BarrierID != 1 {
		t.Errorf("PopDue(3) = %v, expected barrier 1", due)
	}
	if !hasPending(&s, 2) {
		t.Error("barrier 2 has no pending event, expected one")
	}
	if hasPending(&s, 1) {
		t.Error("barrier 1 still pending after firing")
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s Scheduler
	s.Schedule(4, EventGrow, 1)
	s.Schedule(4, EventGrow, 2)
	s.Schedule(8, EventGrow, 1)

	if n := s.Cancel(1); n != 2 {
		t.Errorf("Cancel(1) = %d, expected 2", n)
	}
	if n := s.Cancel(1); n != 0 {
		t.Errorf("second Cancel(1) = %d, expected 0", n)
	}
	due := s.PopDue(100)
	if len(due) != 1 || due[0].BarrierID != 2 {
		t.Errorf("PopDue(100) = %v, expected only barrier 2", due)
	}
}

func TestSchedulerReset(t *testing.T) {
	var s Scheduler
	s.Schedule(1, EventGrow, 1)
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", s.Len())
	}
	if due := s.PopDue(10); len(due) != 0 {
		t.Errorf("PopDue after Reset = %v", due)
	}
}
