package logger

import (
	"log/slog"
	"os"
	"strings"
)

// GetLogger returns a text logger writing to stderr. The level is taken
// from the SPLITFILE_LOG_LEVEL environment variable (debug, info, warn,
// error), defaulting to info.
func GetLogger() *slog.Logger {
	loggerOpts := slog.HandlerOptions{Level: levelFromEnv()}
	return slog.New(slog.NewTextHandler(os.Stderr, &loggerOpts))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("SPLITFILE_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
