// Package connector describes the media sources the scrobbler recognizes
// and resolves page URLs against them.
package connector

import (
	"net/url"
	"path"
	"strings"
)

// Connector describes one supported media source.
type Connector struct {
	// ID is a stable identifier, unique within a registry.
	ID string
	// Label is the human-readable name shown to users.
	Label string
	// Matches holds host patterns, e.g. "music.example.com" or
	// "*.example.com". A pattern may carry a path prefix after the host,
	// e.g. "example.com/listen".
	Matches []string
}

// Registry is an ordered collection of connectors. The zero value is empty.
type Registry struct {
	connectors []Connector
}

// NewRegistry creates a registry over the given connectors. The slice is
// copied; later mutation of the argument does not affect the registry.
func NewRegistry(connectors []Connector) *Registry {
	cs := make([]Connector, len(connectors))
	copy(cs, connectors)
	return &Registry{connectors: cs}
}

// Connectors returns the registry contents in registration order.
func (r *Registry) Connectors() []Connector {
	cs := make([]Connector, len(r.connectors))
	copy(cs, r.connectors)
	return cs
}

// Resolve returns the first connector matching the given URL.
func (r *Registry) Resolve(rawURL string) (Connector, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Connector{}, false
	}
	for _, c := range r.connectors {
		for _, pattern := range c.Matches {
			if matchPattern(pattern, u) {
				return c, true
			}
		}
	}
	return Connector{}, false
}

func matchPattern(pattern string, u *url.URL) bool {
	hostPattern := pattern
	pathPrefix := ""
	if i := strings.IndexByte(pattern, '/'); i >= 0 {
		hostPattern, pathPrefix = pattern[:i], pattern[i:]
	}

	ok, err := path.Match(hostPattern, u.Hostname())
	if err != nil || !ok {
		return false
	}
	return pathPrefix == "" || strings.HasPrefix(u.Path, pathPrefix)
}
