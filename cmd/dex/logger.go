package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var logOutput io.Writer = os.Stderr

// configureLogging installs the default slog logger. flagLevel wins over
// configLevel; both empty means info.
func configureLogging(flagLevel, configLevel string) error {
	name := flagLevel
	if name == "" {
		name = configLevel
	}
	level, err := parseLogLevel(name)
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(logOutput, level))
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", name)
	}
}
