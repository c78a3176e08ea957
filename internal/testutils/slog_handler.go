package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is a captured log record: level, message and every attribute,
// including those added with Logger.With.
type LogEntry map[string]any

// TestSlogHandler is a memory-backed slog.Handler.
type TestSlogHandler struct {
	state *handlerState
	attrs []slog.Attr
}

type handlerState struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ slog.Handler = (*TestSlogHandler)(nil)

// NewTestSlogHandler creates a handler that records every level.
func NewTestSlogHandler() *TestSlogHandler {
	return &TestSlogHandler{state: &handlerState{}}
}

// NewTestLogger returns a logger writing to a new TestSlogHandler.
func NewTestLogger() (*slog.Logger, *TestSlogHandler) {
	h := NewTestSlogHandler()
	return slog.New(h), h
}

// Enabled implements slog.Handler.
func (h *TestSlogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (h *TestSlogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, attr := range h.attrs {
		entry[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[attr.Key] = attr.Value.Any()
		return true
	})

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.entries = append(h.state.entries, entry)
	return nil
}

// WithAttrs implements slog.Handler. Derived handlers share the captured entries.
func (h *TestSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &TestSlogHandler{state: h.state, attrs: merged}
}

// WithGroup implements slog.Handler. Groups are flattened.
func (h *TestSlogHandler) WithGroup(string) slog.Handler {
	return h
}

// Entries returns a copy of the captured entries.
func (h *TestSlogHandler) Entries() []LogEntry {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	return append([]LogEntry(nil), h.state.entries...)
}

// EntriesAt returns the captured entries of one level, e.g. "ERROR".
func (h *TestSlogHandler) EntriesAt(level string) []LogEntry {
	var out []LogEntry
	for _, e := range h.Entries() {
		if e["level"] == level {
			out = append(out, e)
		}
	}
	return out
}

// Clear drops the captured entries.
func (h *TestSlogHandler) Clear() {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.entries = nil
}
