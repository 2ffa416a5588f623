// Package ui renders the hook's stderr output.
package ui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Prefix is printed before every log line
const Prefix = "prepare-commit-msg"

// NewLogger returns a logger writing to w. Only warnings and errors are shown unless
// verbose is set. NO_COLOR and non-terminal writers get plain text.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
	logger.SetStyles(LogStyles())
	logger.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())

	return logger
}
