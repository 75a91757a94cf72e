// Package schedule provides fixed-interval callbacks on a virtual clock.
// The clock only moves when its owner calls Advance, so every callback runs on
// the caller's goroutine, between simulation ticks, in due-time order.
package schedule

import (
	"fmt"
	"time"
)

// Timer identifies a registered callback. The zero Timer is never registered.
type Timer struct {
	id uint64
}

// Valid reports whether the timer was returned by Every.
func (t Timer) Valid() bool {
	return t.id != 0
}

type entry struct {
	id       uint64
	interval time.Duration
	next     time.Duration
	fn       func()
}

// Scheduler runs registered callbacks as its virtual clock advances.
// It is not safe for concurrent use; one event loop owns it.
type Scheduler struct {
	now     time.Duration
	nextID  uint64
	entries []*entry
}

// New creates a scheduler with its clock at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every registers fn to run each time interval elapses, starting one interval from now.
// Panics if interval is not positive.
func (s *Scheduler) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		panic(fmt.Sprintf("schedule: non-positive interval %v", interval))
	}
	s.nextID++
	s.entries = append(s.entries, &entry{
		id:       s.nextID,
		interval: interval,
		next:     s.now + interval,
		fn:       fn,
	})
	return Timer{id: s.nextID}
}

// Cancel unregisters a timer. It reports whether the timer was still registered.
// Cancelling from inside a callback is allowed, including a timer cancelling itself.
func (s *Scheduler) Cancel(t Timer) bool {
	for i, e := range s.entries {
		if e.id == t.id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll unregisters every timer.
func (s *Scheduler) CancelAll() {
	s.entries = s.entries[:0]
}

// Pending returns the number of registered timers.
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

// Advance moves the clock forward by dt, running every callback that falls due.
// Callbacks due at the same instant run in registration order. A timer that is
// cancelled by an earlier callback does not run.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	for {
		e := s.due(target)
		if e == nil {
			break
		}
		s.now = e.next
		e.next += e.interval
		e.fn()
	}
	s.now = target
}

// due returns the earliest entry scheduled at or before target, or nil.
func (s *Scheduler) due(target time.Duration) *entry {
	var found *entry
	for _, e := range s.entries {
		if e.next > target {
			continue
		}
		if found == nil || e.next < found.next {
			found = e
		}
	}
	return found
}
