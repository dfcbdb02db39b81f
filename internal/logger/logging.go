// Package logger hands out prefixed charmbracelet/log loggers. Everything
// logs to stderr: stdout belongs to results in one-shot mode and to the
// msgpack stream in server mode.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger for one component, inheriting the global level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
