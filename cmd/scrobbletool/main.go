package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/tiagoad/web-scrobbler/internal/async"
	"github.com/tiagoad/web-scrobbler/internal/config"
	"github.com/tiagoad/web-scrobbler/internal/connector"
	"github.com/tiagoad/web-scrobbler/internal/logging"
	"github.com/tiagoad/web-scrobbler/internal/scrobble"
)

var version = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `scrobbletool - scrobble timing diagnostics

Usage: scrobbletool [options]

Options:
  -config string
        Path to config file (default: ~/.config/web-scrobbler/config.toml)
  -version
        Print version and exit

Diagnostics:
  -duration float
        Print the scrobble delay for a track duration in seconds
  -connectors
        List configured connectors sorted by label
  -resolve string
        Resolve a URL against the connector registry

Examples:
  scrobbletool -duration 271.5            # When would this track scrobble?
  scrobbletool -connectors                # Show the registry
  scrobbletool -resolve https://music.youtube.com/watch?v=x

`)
	}

	cfgPath := flag.String("config", "", "")
	showVersion := flag.Bool("version", false, "")
	duration := flag.Float64("duration", -1, "")
	listConnectors := flag.Bool("connectors", false, "")
	resolveURL := flag.String("resolve", "", "")
	flag.Parse()

	if *showVersion {
		fmt.Println("scrobbletool", version)
		return
	}

	cfg := loadConfig(*cfgPath, *listConnectors || *resolveURL != "")

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, logFile, err := logging.Setup(level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logFile.Close()

	switch {
	case *duration >= 0:
		printDelay(logger, cfg.Calculator(), *duration)
	case *listConnectors:
		printConnectors(cfg)
	case *resolveURL != "":
		resolve(cfg, *resolveURL)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// loadConfig loads the config file, falling back to built-in defaults when
// no file exists and none was asked for explicitly. Commands that read the
// connector registry require a config file.
func loadConfig(path string, required bool) *config.Config {
	cfg, cfgPath, err := config.Load(path)
	if err != nil {
		if path == "" && !required && errors.Is(err, os.ErrNotExist) {
			return &config.Config{Scrobble: config.ScrobbleConfig{Percent: scrobble.ScrobblePercent}}
		}
		log.Fatalf("config %s: %v", cfgPath, err)
	}
	return cfg
}

func printDelay(logger *slog.Logger, calc scrobble.Calculator, duration float64) {
	secs, err := async.WithTimeout(context.Background(), time.Second,
		func(ctx context.Context) (int, error) {
			return calc.SecondsToScrobble(duration), nil
		})
	if err != nil {
		log.Fatalf("compute delay: %v", err)
	}

	logger.Debug("computed scrobble delay", "duration", duration, "seconds", secs)
	if secs == scrobble.NeverScrobble {
		fmt.Printf("a %.1fs track is too short to ever scrobble\n", duration)
		return
	}
	fmt.Printf("a %.1fs track scrobbles after %ds of playback\n", duration, secs)
}

func printConnectors(cfg *config.Config) {
	sorted := connector.SortByLabel(cfg.Registry().Connectors())
	for _, c := range sorted {
		fmt.Printf("%-20s %s\n", c.Label, c.ID)
	}
}

func resolve(cfg *config.Config, rawURL string) {
	c, ok := cfg.Registry().Resolve(rawURL)
	if !ok {
		fmt.Println("no connector matches", rawURL)
		os.Exit(1)
	}
	fmt.Printf("%s (%s)\n", c.Label, c.ID)
}
