package report

import (
	"context"

	"asteroid-sim/internal/history"
)

// HistoryWriter appends records to a history store.
type HistoryWriter struct {
	store history.Store
}

// NewHistoryWriter wraps store.
func NewHistoryWriter(store history.Store) *HistoryWriter {
	return &HistoryWriter{store: store}
}

// Write appends r to the store.
func (w *HistoryWriter) Write(r history.Record) error {
	return w.store.Add(context.Background(), r)
}
