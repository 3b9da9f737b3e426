package form

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window for keystroke-triggered checks.
const DefaultDebounce = 500 * time.Millisecond

// scheduler debounces per-field work and enforces last-request-wins: every
// schedule bumps the field's sequence, and a resolution may only be
// committed when its sequence still matches. In-flight work is never
// interrupted, only discarded on arrival.
type scheduler struct {
	mu     sync.Mutex
	delay  time.Duration
	seqs   map[string]uint64
	timers map[string]*time.Timer
}

func newScheduler(delay time.Duration) *scheduler {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &scheduler{
		delay:  delay,
		seqs:   make(map[string]uint64),
		timers: make(map[string]*time.Timer),
	}
}

// invalidate supersedes any pending or in-flight work for the field and
// returns the new current sequence.
func (s *scheduler) invalidate(field string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bumpLocked(field)
}

// schedule queues fn behind the debounce window, or fires it right away
// for blur-style triggers. fn receives the sequence it must present when
// committing its result.
func (s *scheduler) schedule(field string, immediate bool, fn func(seq uint64)) {
	s.mu.Lock()
	seq := s.bumpLocked(field)
	if immediate {
		s.mu.Unlock()
		go fn(seq)
		return
	}
	s.timers[field] = time.AfterFunc(s.delay, func() {
		fn(seq)
	})
	s.mu.Unlock()
}

// current returns the sequence a resolution must match to be committed.
func (s *scheduler) current(field string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seqs[field]
}

// stop cancels all pending timers.
func (s *scheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for field, timer := range s.timers {
		timer.Stop()
		delete(s.timers, field)
	}
}

func (s *scheduler) bumpLocked(field string) uint64 {
	if timer, ok := s.timers[field]; ok {
		timer.Stop()
		delete(s.timers, field)
	}
	s.seqs[field]++
	return s.seqs[field]
}
