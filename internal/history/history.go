// Package history retains past analyses for later re-display. Records are
// append-only and listed most recent first.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"asteroid-sim/internal/impact"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("history record not found")

// Record is one retained analysis.
type Record struct {
	ID        string                `json:"id"`
	Input     impact.AsteroidInput  `json:"input"`
	Result    impact.AnalysisResult `json:"result"`
	CreatedAt time.Time             `json:"created_at"`
}

// NewRecord wraps an input/result pair with a fresh ID.
func NewRecord(in impact.AsteroidInput, res impact.AnalysisResult) Record {
	created := res.Timestamp
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return Record{ID: uuid.New().String(), Input: in, Result: res, CreatedAt: created}
}

// Store persists records.
type Store interface {
	Add(ctx context.Context, r Record) error
	// List returns up to limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Close() error
}
