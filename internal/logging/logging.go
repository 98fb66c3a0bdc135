// Package logging builds the application logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a slog logger writing to w and installs it as the default.
// Format is "text" (tinted, for a terminal) or "json".
func New(w io.Writer, level, format string) *slog.Logger {
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      parseLevel(level),
			TimeFormat: time.Kitchen,
		})
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
