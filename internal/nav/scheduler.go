package nav

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs a one-shot callback after a delay. Implementations decide on
// which goroutine fn runs; the TUI delivers it through its own event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, fn func())

func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) { f(d, fn) }

// TimerScheduler fires callbacks from runtime timers.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// ManualScheduler is a deterministic scheduler driven by Advance.
// The zero value is ready to use.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []pendingCall
}

type pendingCall struct {
	at  time.Duration
	seq int
	fn  func()
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.pending = append(s.pending, pendingCall{at: s.now + d, seq: s.seq, fn: fn})
}

// Advance moves the clock forward by d and runs every callback that has come
// due, in deadline order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	now := s.now

	var due, rest []pendingCall
	for _, c := range s.pending {
		if c.at <= now {
			due = append(due, c)
		} else {
			rest = append(rest, c)
		}
	}
	s.pending = rest
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, c := range due {
		c.fn()
	}
}

// Pending returns the number of callbacks not yet run.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
