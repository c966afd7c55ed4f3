// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger provides a context-aware logger built on [slog].
package logger

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// Logf is a printf-like logging function.
type Logf func(format string, args ...any)

// Write implements [io.Writer] by logging p as a single message.
func (f Logf) Write(p []byte) (int, error) {
	f("%s", p)
	return len(p), nil
}

// fanout sends each record to every attached handler that accepts it.
type fanout struct {
	mu       sync.RWMutex
	handlers []slog.Handler
}

func (h *fanout) snapshot() []slog.Handler {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.handlers
}

func (h *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h.snapshot() {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, hh := range h.snapshot() {
		if !hh.Enabled(ctx, r.Level) {
			continue
		}
		if err := hh.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(hh slog.Handler) slog.Handler { return hh.WithAttrs(attrs) })
}

func (h *fanout) WithGroup(name string) slog.Handler {
	return h.derive(func(hh slog.Handler) slog.Handler { return hh.WithGroup(name) })
}

func (h *fanout) derive(f func(slog.Handler) slog.Handler) *fanout {
	hs := h.snapshot()
	derived := make([]slog.Handler, len(hs))
	for i, hh := range hs {
		derived[i] = f(hh)
	}
	return &fanout{handlers: derived}
}

func (h *fanout) attach(hh slog.Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	// Copy so snapshots taken earlier stay stable.
	h.handlers = append(h.handlers[:len(h.handlers):len(h.handlers)], hh)
}

// Logger is an [slog.Logger] whose handlers can be attached at runtime.
//
// Level is shared with handlers created for it, so changing it affects all
// of them at once.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar

	out *fanout
}

// New returns a Logger without handlers. If level is nil, a new
// [slog.LevelVar] set to [slog.LevelInfo] is used.
func New(level *slog.LevelVar) *Logger {
	if level == nil {
		level = new(slog.LevelVar)
	}
	out := new(fanout)
	return &Logger{
		Logger: slog.New(out),
		Level:  level,
		out:    out,
	}
}

// Attach adds h to the set of handlers receiving records.
func (l *Logger) Attach(h slog.Handler) { l.out.attach(h) }

var defaultLogger = newDefaultLogger()

func newDefaultLogger() *Logger {
	l := New(nil)
	l.Attach(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: l.Level}))
	return l
}

// Put returns a copy of ctx carrying l.
func Put(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get returns the [Logger] carried by ctx, or a default one that discards
// everything.
func Get(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// IsDefault reports whether l is the discarding default [Logger].
func IsDefault(l *Logger) bool { return l == defaultLogger }

// Debug logs a debug message.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs an info message.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs a warning message.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs an error message.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
