// Package logger is the diagnostics sink for file operations. Soft failures
// are reported here instead of being printed straight to stderr, so callers
// can redirect or silence them.
package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type StdLogger struct {
	internalLogger *slog.Logger
}

// New returns a Logger writing text records to stderr.
func New() Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns a Logger writing text records to w.
func NewWithWriter(w io.Writer) Logger {
	l := slog.New(slog.NewTextHandler(w, nil))
	return &StdLogger{internalLogger: l}
}

// NewDiscard returns a Logger that drops everything.
func NewDiscard() Logger {
	return NewWithWriter(io.Discard)
}

func (l *StdLogger) Info(msg string, args ...interface{}) {
	l.internalLogger.Info(msg, args...)
}

func (l *StdLogger) Debug(msg string, args ...interface{}) {
	l.internalLogger.Debug(msg, args...)
}

func (l *StdLogger) Warn(msg string, args ...interface{}) {
	l.internalLogger.Warn(msg, args...)
}

func (l *StdLogger) Error(msg string, args ...interface{}) {
	l.internalLogger.Error(msg, args...)
}
