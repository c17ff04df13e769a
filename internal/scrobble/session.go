package scrobble

import (
	"sync"
	"time"
)

// Session tracks playback of a single track and decides when enough of it
// has been played to scrobble. Safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	calc       Calculator
	nowPlaying *Track
	played     time.Duration
}

// NewSession creates a session using the given calculator. The zero-value
// calculator applies the default policy.
func NewSession(calc Calculator) *Session {
	return &Session{calc: calc}
}

// NowPlaying starts tracking a new track, resetting accumulated play time.
func (s *Session) NowPlaying(track Track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowPlaying = &track
	s.played = 0
}

// UpdatePosition records the current playback position. Positions reported
// while paused are ignored.
func (s *Session) UpdatePosition(position time.Duration, paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nowPlaying == nil {
		return
	}
	if !paused {
		s.played = position
	}
}

// Current returns the track being tracked, if any.
func (s *Session) Current() (Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nowPlaying == nil {
		return Track{}, false
	}
	return *s.nowPlaying, true
}

// ShouldScrobble reports whether enough of the current track has been
// played. Tracks the calculator rejects are never scrobbled.
func (s *Session) ShouldScrobble() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nowPlaying == nil {
		return false
	}

	secs := s.calc.SecondsToScrobble(s.nowPlaying.Duration)
	if secs == NeverScrobble {
		return false
	}
	return s.played >= time.Duration(secs)*time.Second
}

// Reset stops tracking the current track.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowPlaying = nil
	s.played = 0
}
