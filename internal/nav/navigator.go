// Package nav sequences the yearbook's full-screen sections.
//
// A Navigator owns the current section index. Wheel input is throttled: an
// accepted step locks the navigator for a cooldown so one physical gesture
// moves at most one section. Manual jumps are never throttled.
package nav

import (
	"errors"
	"math"
	"sync"
	"time"
)

const (
	// DefaultThreshold is the minimal |deltaY| treated as an intentional gesture.
	DefaultThreshold = 50.0
	// DefaultCooldown is how long wheel input stays locked after a step.
	DefaultCooldown = time.Second
)

// ErrNoSections is returned when a navigator is built over an empty section list.
var ErrNoSections = errors.New("nav: at least one section is required")

// Direction is the outcome of an accepted wheel event.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithThreshold overrides the wheel noise threshold.
func WithThreshold(t float64) Option {
	return func(n *Navigator) {
		if t >= 0 && !math.IsNaN(t) {
			n.threshold = t
		}
	}
}

// WithCooldown overrides the lock duration after an accepted wheel step.
func WithCooldown(d time.Duration) Option {
	return func(n *Navigator) {
		if d >= 0 {
			n.cooldown = d
		}
	}
}

// Navigator is the section state machine: {Idle, Cooling} x [0, total).
type Navigator struct {
	mu sync.Mutex

	total   int
	current int
	locked  bool
	closed  bool

	// gen is captured by every scheduled unlock; Close bumps it so pending
	// unlocks of a torn-down session do nothing.
	gen uint64

	threshold float64
	cooldown  time.Duration
	sched     Scheduler
}

// New creates a navigator over total sections, positioned at section 0 and idle.
func New(total int, sched Scheduler, opts ...Option) (*Navigator, error) {
	if total < 1 {
		return nil, ErrNoSections
	}
	if sched == nil {
		sched = TimerScheduler{}
	}
	n := &Navigator{
		total:     total,
		threshold: DefaultThreshold,
		cooldown:  DefaultCooldown,
		sched:     sched,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// HandleWheel interprets one raw wheel event. Positive deltaY advances,
// negative retreats. Events during the cooldown, events weaker than the
// threshold (NaN included) and outward steps at either end are ignored.
// It reports the direction of the accepted step, or None.
func (n *Navigator) HandleWheel(deltaY float64) Direction {
	n.mu.Lock()
	if n.closed || n.locked || !(math.Abs(deltaY) >= n.threshold) {
		n.mu.Unlock()
		return None
	}

	dir := None
	switch {
	case deltaY > 0 && n.current < n.total-1:
		n.current++
		dir = Forward
	case deltaY < 0 && n.current > 0:
		n.current--
		dir = Backward
	}
	if dir == None {
		n.mu.Unlock()
		return None
	}

	n.locked = true
	n.gen++
	gen := n.gen
	cooldown := n.cooldown
	n.mu.Unlock()

	// Scheduled outside the lock: a scheduler may fire synchronously.
	n.sched.AfterFunc(cooldown, func() { n.unlock(gen) })
	return dir
}

func (n *Navigator) unlock(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || gen != n.gen {
		return
	}
	n.locked = false
}

// JumpTo moves directly to index, ignoring and leaving untouched the wheel
// lock. Out-of-range indexes are clamped to the first or last section.
// It returns the index actually selected.
func (n *Navigator) JumpTo(index int) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return n.current
	}
	n.current = max(0, min(index, n.total-1))
	return n.current
}

// Close ends the session. Pending unlocks become no-ops and further input is
// ignored; reads keep returning the last state.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.gen++
}

// Current returns the visible section index.
func (n *Navigator) Current() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Total returns the number of sections.
func (n *Navigator) Total() int {
	return n.total
}

// Locked reports whether wheel input is in its cooldown.
func (n *Navigator) Locked() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.locked
}

// Progress returns (current+1)/total, in (0, 1].
func (n *Navigator) Progress() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return float64(n.current+1) / float64(n.total)
}
