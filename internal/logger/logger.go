// Package logger builds the diagnostic logger. User-facing output goes through the pterm
// printers directly; this logger is for tracing what the app does.
package logger

import (
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// New returns a pterm logger writing to w at the given level. Unknown levels disable logging.
func New(level string, w io.Writer) *pterm.Logger {
	lvl := ParseLevel(level)
	if lvl == pterm.LogLevelDisabled {
		w = io.Discard
	}
	return pterm.DefaultLogger.
		WithLevel(lvl).
		WithWriter(w).
		WithTime(false)
}

func ParseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelDisabled
	}
}

// Discard is a logger that drops everything.
func Discard() *pterm.Logger {
	return New("disabled", io.Discard)
}
