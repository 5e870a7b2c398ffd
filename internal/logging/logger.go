// Package logging wraps charmbracelet/log with a process-wide default
// logger and context helpers.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Process-wide default logger.
var defaultLogger atomic.Pointer[log.Logger]

func init() {
	defaultLogger.Store(New("info"))
}

// New returns a stderr logger at level ("debug", "info", "warn", "error").
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a logger writing to w at level. Timestamps and
// caller info are off.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name to a log.Level. Unknown names mean info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
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

func Default() *log.Logger {
	return defaultLogger.Load()
}

func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}
