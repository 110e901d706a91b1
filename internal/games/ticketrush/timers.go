package ticketrush

import "sort"

// penaltyTimer is the wrong-block countdown. At most one may be armed at a
// time: a second wrong drop while one is pending does not arm another.
type penaltyTimer struct {
	block     *Block  // The flagged block that armed the timer
	expiresAt float64 // Absolute time on the session clock
}

// scheduled is a deferred one-shot action with an absolute fire time.
// Used for delayed ticket re-spawn and notification dismissal.
type scheduled struct {
	fireAt float64
	seq    uint64 // Tie-breaker preserving schedule order
	fn     func(*Game)
}

// scheduler owns the session's pending one-shot actions. Entries are
// drained each tick in fire-time order and cleared en masse on session
// termination or restart, so a callback scheduled in a previous session
// can never fire into a new one.
type scheduler struct {
	pending []scheduled
	nextSeq uint64
}

// schedule queues fn to run once the session clock reaches fireAt.
func (s *scheduler) schedule(fireAt float64, fn func(*Game)) {
	s.pending = append(s.pending, scheduled{
		fireAt: fireAt,
		seq:    s.nextSeq,
		fn:     fn,
	})
	s.nextSeq++
}

// drainDue removes and returns all actions due at or before now, in
// fire-time order (schedule order for equal times).
func (s *scheduler) drainDue(now float64) []scheduled {
	var due []scheduled
	remaining := s.pending[:0]
	for _, e := range s.pending {
		if e.fireAt <= now {
			due = append(due, e)
		} else {
			remaining = append(remaining, e)
		}
	}
	s.pending = remaining

	sort.Slice(due, func(i, j int) bool {
		if due[i].fireAt != due[j].fireAt {
			return due[i].fireAt < due[j].fireAt
		}
		return due[i].seq < due[j].seq
	})
	return due
}

// clear cancels all pending actions atomically.
func (s *scheduler) clear() {
	s.pending = s.pending[:0]
}

// len returns the number of pending actions.
func (s *scheduler) len() int {
	return len(s.pending)
}
