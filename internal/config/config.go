package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/tiagoad/web-scrobbler/internal/connector"
	"github.com/tiagoad/web-scrobbler/internal/logging"
	"github.com/tiagoad/web-scrobbler/internal/scrobble"
)

// Config holds scrobbler runtime configuration loaded from TOML.
type Config struct {
	ConfigVersion int              `toml:"config_version"`
	Scrobble      ScrobbleConfig   `toml:"scrobble"`
	Logging       LoggingConfig    `toml:"logging"`
	Connectors    []ConnectorEntry `toml:"connectors"`
}

// ScrobbleConfig holds scrobble timing settings.
type ScrobbleConfig struct {
	// Percent of a track that must play before scrobbling, 10-100.
	Percent int `toml:"percent"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// ConnectorEntry defines one connector in the registry.
type ConnectorEntry struct {
	ID      string   `toml:"id"`
	Label   string   `toml:"label"`
	Matches []string `toml:"matches"`
	Enabled bool     `toml:"enabled"`
}

// Load reads configuration from disk. If path is empty, a default
// OS-specific location is used.
func Load(path string) (*Config, string, error) {
	cfgPath := path
	if cfgPath == "" {
		var err error
		cfgPath, err = defaultPath()
		if err != nil {
			return nil, "", fmt.Errorf("resolve config path: %w", err)
		}
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, cfgPath, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, cfgPath, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(cfg); err != nil {
		return nil, cfgPath, err
	}

	return &cfg, cfgPath, nil
}

func defaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(dir, "web-scrobbler")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(base, "config.toml"), nil
}

func applyDefaults(cfg *Config) {
	if cfg.Scrobble.Percent == 0 {
		cfg.Scrobble.Percent = scrobble.ScrobblePercent
	}
}

// Validate performs semantic validation of config.
func Validate(cfg Config) error {
	if cfg.Scrobble.Percent < 10 || cfg.Scrobble.Percent > 100 {
		return fmt.Errorf("scrobble.percent must be 10-100, got %d", cfg.Scrobble.Percent)
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Connectors))
	for i, c := range cfg.Connectors {
		if c.ID == "" {
			return fmt.Errorf("connectors[%d]: id is required", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate connector id %q", c.ID)
		}
		seen[c.ID] = true
		if c.Label == "" {
			return fmt.Errorf("connector %q: label is required", c.ID)
		}
		if len(c.Matches) == 0 {
			return fmt.Errorf("connector %q: matches is required", c.ID)
		}
		for _, m := range c.Matches {
			if m == "" {
				return errors.New("connector " + c.ID + ": matches contains empty pattern")
			}
		}
	}
	return nil
}

// Calculator returns the threshold calculator configured by this config.
func (c Config) Calculator() scrobble.Calculator {
	return scrobble.Calculator{Percent: c.Scrobble.Percent}
}

// Registry builds the connector registry from the enabled entries, in
// declaration order.
func (c Config) Registry() *connector.Registry {
	var cs []connector.Connector
	for _, e := range c.Connectors {
		if !e.Enabled {
			continue
		}
		cs = append(cs, connector.Connector{
			ID:      e.ID,
			Label:   e.Label,
			Matches: e.Matches,
		})
	}
	return connector.NewRegistry(cs)
}
