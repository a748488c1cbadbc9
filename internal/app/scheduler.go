package app

import (
	"sync"
	"time"
)

// FireFunc is invoked when a session's decision window expires.
type FireFunc func(code string)

// Scheduler keeps at most one pending timer per session code. Arming a code
// cancels its previous timer, so the last-armed deadline wins. The fire
// callback re-reads the session and checks the stored deadline itself, which
// makes a stale fire a harmless no-op.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	fire   FireFunc
}

// NewScheduler creates a scheduler that invokes fire on expiry.
func NewScheduler(fire FireFunc) *Scheduler {
	return &Scheduler{
		timers: make(map[string]*time.Timer),
		fire:   fire,
	}
}

// Arm schedules (or reschedules) the timer for a session code.
func (s *Scheduler) Arm(code string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[code]; ok {
		t.Stop()
	}
	s.timers[code] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, code)
		s.mu.Unlock()
		s.fire(code)
	})
}

// Cancel drops the pending timer for a session code, if any.
func (s *Scheduler) Cancel(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[code]; ok {
		t.Stop()
		delete(s.timers, code)
	}
}

// Shutdown cancels every pending timer.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for code, t := range s.timers {
		t.Stop()
		delete(s.timers, code)
	}
}

// Pending reports whether a timer is armed for a session code.
func (s *Scheduler) Pending(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[code]
	return ok
}
