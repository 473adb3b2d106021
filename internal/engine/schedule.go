package engine

// Scheduler holds at most one deferred transition. The frame loop ticks it; a
// transition scheduled while another is pending is refused, so an advance and
// a reset can never both fire.
type Scheduler[K comparable] struct {
	kind    K
	timer   Countdown
	pending bool
}

// Schedule arms kind to fire after delay frames. It returns false and changes
// nothing when a transition is already pending. A delay below one frame fires
// on the next Tick.
func (s *Scheduler[K]) Schedule(kind K, delay int) bool {
	if s.pending {
		return false
	}
	if delay < 1 {
		delay = 1
	}
	s.kind = kind
	s.timer.Start(delay)
	s.pending = true
	return true
}

// Tick advances one frame and returns the transition that fires on it.
func (s *Scheduler[K]) Tick() (K, bool) {
	var zero K
	if !s.pending {
		return zero, false
	}
	if !s.timer.Tick() {
		return zero, false
	}
	kind := s.kind
	s.Cancel()
	return kind, true
}

// Pending returns the armed transition, if any.
func (s *Scheduler[K]) Pending() (K, bool) {
	return s.kind, s.pending
}

// Cancel drops the pending transition.
func (s *Scheduler[K]) Cancel() {
	var zero K
	s.kind = zero
	s.timer.Stop()
	s.pending = false
}
