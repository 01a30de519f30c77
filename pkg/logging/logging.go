// Package logging configures the process-wide structured logger for the
// item tracker service: colored slog output on stderr via tint, with
// source locations attached.
//
// The level comes from LOG_LEVEL (debug, info, warn, error); unset or
// unrecognized values mean info.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default logger. Call once, before anything logs.
func Setup() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      levelFromEnv(),
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
