// Package timer provides a pausable countdown used to fire the scrobble
// callback once the computed delay has been played.
package timer

import (
	"sync"
	"time"
)

// Timer counts down a number of seconds of playback, surviving pause and
// resume, and invokes its callback exactly once when the target elapses.
// Safe for concurrent use.
type Timer struct {
	mu        sync.Mutex
	onTrigger func()

	t         *time.Timer
	target    time.Duration
	spent     time.Duration
	resumedAt time.Time
	running   bool
	fired     bool
	// gen invalidates callbacks of stopped timers that were already in
	// flight when the countdown was re-armed.
	gen int
}

// New creates a timer that calls onTrigger when the countdown elapses.
func New(onTrigger func()) *Timer {
	return &Timer{onTrigger: onTrigger}
}

// Start arms the timer for the given number of seconds, discarding any
// previous countdown.
func (t *Timer) Start(seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.target = time.Duration(seconds) * time.Second
	t.spent = 0
	t.fired = false
	t.armLocked(t.target)
}

// Pause suspends the countdown, banking the time spent so far.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	t.spent += time.Since(t.resumedAt)
	t.stopLocked()
}

// Resume continues a paused countdown with the remaining time.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running || t.fired || t.target == 0 {
		return
	}
	t.armLocked(t.target - t.spent)
}

// Update changes the countdown target, keeping time already spent. A
// target at or below the spent time fires immediately.
func (t *Timer) Update(seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.fired {
		return
	}
	wasRunning := t.running
	if wasRunning {
		t.spent += time.Since(t.resumedAt)
	}
	t.stopLocked()
	t.target = time.Duration(seconds) * time.Second
	if wasRunning {
		t.armLocked(t.target - t.spent)
	}
}

// Reset disarms the timer; the callback will not fire.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		t.spent += time.Since(t.resumedAt)
	}
	t.stopLocked()
	t.fired = true
}

// SpentSeconds returns how many seconds of countdown have elapsed.
func (t *Timer) SpentSeconds() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	spent := t.spent
	if t.running {
		spent += time.Since(t.resumedAt)
	}
	return spent.Seconds()
}

func (t *Timer) armLocked(remaining time.Duration) {
	if remaining < 0 {
		remaining = 0
	}
	t.resumedAt = time.Now()
	t.running = true
	t.gen++
	gen := t.gen
	t.t = time.AfterFunc(remaining, func() { t.fire(gen) })
}

func (t *Timer) stopLocked() {
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
	t.running = false
}

func (t *Timer) fire(gen int) {
	t.mu.Lock()
	if gen != t.gen || t.fired || !t.running {
		t.mu.Unlock()
		return
	}
	t.spent += time.Since(t.resumedAt)
	t.stopLocked()
	t.fired = true
	t.mu.Unlock()

	if t.onTrigger != nil {
		t.onTrigger()
	}
}
