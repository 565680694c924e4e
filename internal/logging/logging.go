// Package logging holds the process-wide zerolog logger.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is used by every package. It discards output until Setup runs, so
// components stay silent in tests.
var Logger = zerolog.Nop()

// SessionID tags every line written during one run of the game.
var SessionID string

// ParseLevel maps a config string onto a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// Setup points Logger at w with human-readable console formatting.
func Setup(level string, w io.Writer) zerolog.Logger {
	SessionID = uuid.NewString()

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	Logger = zerolog.New(console).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("session", SessionID[:8]).
		Logger()
	return Logger
}
