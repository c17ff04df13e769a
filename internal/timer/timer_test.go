package timer_test

import (
	"testing"
	"time"

	"github.com/tiagoad/web-scrobbler/internal/timer"
)

func waitFired(t *testing.T, fired chan struct{}, want bool) {
	t.Helper()
	select {
	case <-fired:
		if !want {
			t.Fatal("timer fired unexpectedly")
		}
	case <-time.After(500 * time.Millisecond):
		if want {
			t.Fatal("timer did not fire")
		}
	}
}

func TestTimerFires(t *testing.T) {
	fired := make(chan struct{})
	tm := timer.New(func() { close(fired) })

	tm.Start(0)
	waitFired(t, fired, true)
}

func TestTimerResetPreventsFiring(t *testing.T) {
	fired := make(chan struct{})
	tm := timer.New(func() { close(fired) })

	tm.Start(1)
	tm.Reset()
	waitFired(t, fired, false)
}

func TestTimerPauseHoldsCountdown(t *testing.T) {
	fired := make(chan struct{})
	tm := timer.New(func() { close(fired) })

	tm.Start(1)
	tm.Pause()
	// Paused: a one second countdown must not elapse while suspended.
	waitFired(t, fired, false)

	tm.Resume()
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire after resume")
	}
}

func TestTimerUpdateToElapsedTargetFires(t *testing.T) {
	fired := make(chan struct{})
	tm := timer.New(func() { close(fired) })

	tm.Start(60)
	// Shrinking the target to zero makes the countdown already elapsed.
	tm.Update(0)
	waitFired(t, fired, true)
}

func TestTimerSpentSeconds(t *testing.T) {
	tm := timer.New(nil)

	tm.Start(60)
	time.Sleep(50 * time.Millisecond)
	tm.Pause()

	spent := tm.SpentSeconds()
	if spent <= 0 {
		t.Fatalf("spent = %v, want > 0", spent)
	}

	// Spent time is frozen while paused.
	time.Sleep(50 * time.Millisecond)
	if got := tm.SpentSeconds(); got != spent {
		t.Errorf("spent changed while paused: %v -> %v", spent, got)
	}
}

func TestTimerResumeWithoutStart(t *testing.T) {
	fired := make(chan struct{})
	tm := timer.New(func() { close(fired) })

	tm.Resume()
	waitFired(t, fired, false)
}
