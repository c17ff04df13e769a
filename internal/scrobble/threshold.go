package scrobble

import "math"

// Scrobble timing policy. A track is scrobbled once half of it has been
// played, capped at four minutes; tracks shorter than thirty seconds are
// never scrobbled, and tracks of unknown length get a fixed delay.
const (
	// DefaultScrobbleTime is the delay in seconds applied when the track
	// duration is unknown.
	DefaultScrobbleTime = 30

	// MinTrackDuration is the shortest track duration in seconds that is
	// still eligible for scrobbling.
	MinTrackDuration = 30

	// MaxScrobbleTime caps the computed delay in seconds.
	MaxScrobbleTime = 240

	// ScrobblePercent is the share of the track that must play before a
	// scrobble is due.
	ScrobblePercent = 50

	// NeverScrobble is returned for tracks that must not be scrobbled.
	NeverScrobble = -1
)

// SecondsToScrobble returns the number of seconds of playback after which
// a track of the given duration (in seconds) should be scrobbled.
//
// An unknown duration (zero, negative or NaN) yields DefaultScrobbleTime. A
// duration below MinTrackDuration yields NeverScrobble. Otherwise the
// result is ScrobblePercent of the duration, rounded half away from zero
// and capped at MaxScrobbleTime.
func SecondsToScrobble(duration float64) int {
	return Calculator{}.SecondsToScrobble(duration)
}

// Calculator computes scrobble delays with a configurable percentage.
// The zero value uses ScrobblePercent.
type Calculator struct {
	// Percent overrides ScrobblePercent when non-zero.
	Percent int
}

// SecondsToScrobble computes the scrobble delay for a track duration in
// seconds. See the package-level SecondsToScrobble for the policy.
func (c Calculator) SecondsToScrobble(duration float64) int {
	if duration <= 0 || math.IsNaN(duration) {
		return DefaultScrobbleTime
	}
	if duration < MinTrackDuration {
		return NeverScrobble
	}

	percent := c.Percent
	if percent == 0 {
		percent = ScrobblePercent
	}

	secs := int(math.Round(duration * float64(percent) / 100))
	if secs > MaxScrobbleTime {
		return MaxScrobbleTime
	}
	return secs
}
