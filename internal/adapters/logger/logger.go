// Package logger implements ports.Logger on log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/rehost/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a Logger printing pretty lines to stderr.
func New() ports.Logger {
	return newLogger(os.Stderr)
}

func newLogger(w io.Writer) *Logger {
	l := &Logger{output: w}
	l.rebuild()
	return l
}

// SetOutput changes the destination, keeping the current format.
// A nil writer selects stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// rebuild must be called with mu held for writing.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain and metadata.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", errorAttrs(err)...)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
