package scrobble

import "time"

// Track represents a track for scrobble timing decisions.
type Track struct {
	Title  string
	Artist string
	Album  string
	// Duration is the track length in seconds. Zero means unknown.
	Duration  float64
	StartedAt time.Time
	// ConnectorID identifies the connector that recognized the track.
	ConnectorID string
}
