package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger writes progress and diagnostics to stderr so that stdout stays
// reserved for the comparison report.
type Logger struct {
	quiet bool
	out   io.Writer
}

// NewLogger creates a new logger
func NewLogger(quiet bool) *Logger {
	return &Logger{quiet: quiet, out: os.Stderr}
}

// NewLoggerWithWriter creates a logger that writes to w instead of
// stderr.
func NewLoggerWithWriter(quiet bool, w io.Writer) *Logger {
	return &Logger{quiet: quiet, out: w}
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(l.out, format+"\n", args...)
	}
}

// Warn logs a warning message. Warnings are shown even in quiet mode.
func (l *Logger) Warn(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "WARNING: "+format+"\n", args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "ERROR: "+format+"\n", args...)
}

// Debug logs a debug message (currently same as info)
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(l.out, "DEBUG: "+format+"\n", args...)
	}
}
