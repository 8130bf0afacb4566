// Package renderlog defines the logging seam the renderer writes
// progress and diagnostics through, so callers embedding the engine
// (a CLI, a GUI status bar, a headless batch job) can redirect or
// silence it without the renderer importing any of their machinery.
package renderlog

import (
	"log"
	"os"
)

// Logger receives printf-style progress and diagnostic messages from
// the renderer. Render correctness never depends on it; it exists
// purely for operator visibility.
type Logger interface {
	Printf(format string, args ...interface{})
}

// StdLogger writes to stdout via the standard log package, with a
// timestamp prefix.
type StdLogger struct {
	log *log.Logger
}

// NewStdLogger creates a Logger writing to stdout.
func NewStdLogger() *StdLogger {
	return &StdLogger{log: log.New(os.Stdout, "", log.LstdFlags)}
}

// Printf implements Logger.
func (l *StdLogger) Printf(format string, args ...interface{}) {
	l.log.Printf(format, args...)
}

// Discard is a Logger that drops every message, used where no
// progress output is wanted (library callers, most tests).
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

// Discard is the shared no-op Logger instance.
var Discard Logger = discardLogger{}

// compile-time assertions that both implementations satisfy Logger.
var (
	_ Logger = (*StdLogger)(nil)
	_ Logger = discardLogger{}
)
