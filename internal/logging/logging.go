// Package logging builds the structured stderr logger used by the CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level. quiet raises the
// level to error regardless of level.
func New(w io.Writer, level string, quiet bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "gfa2fa",
		ReportTimestamp: false,
	})
	logger.SetLevel(ParseLevel(level))
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}

// ParseLevel maps a config level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
