package logging

import (
	"fmt"
	"log/slog"
)

// Dispatch routes a message to the logger method named by level. "log" is
// an alias for "info". An unrecognized level name is a programmer error
// and panics rather than being silently downgraded.
func Dispatch(logger *slog.Logger, level, msg string, args ...any) {
	switch level {
	case "debug":
		logger.Debug(msg, args...)
	case "log", "info":
		logger.Info(msg, args...)
	case "warn":
		logger.Warn(msg, args...)
	case "error":
		logger.Error(msg, args...)
	default:
		panic(fmt.Sprintf("logging: unknown log level %q", level))
	}
}

// ParseLevel maps a config level name to a slog.Level, defaulting to info
// for an empty name.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
