package history

import (
	"context"
	"sync"
)

// MemoryStore keeps records in memory, dropping the oldest past capacity.
type MemoryStore struct {
	mu       sync.Mutex
	records  []Record
	capacity int
}

// NewMemoryStore creates a MemoryStore. capacity <= 0 means unbounded.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{capacity: capacity}
}

// Add prepends r.
func (m *MemoryStore) Add(ctx context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append([]Record{r}, m.records...)
	if m.capacity > 0 && len(m.records) > m.capacity {
		m.records = m.records[:m.capacity]
	}
	return nil
}

// List returns a copy of up to limit records, newest first.
func (m *MemoryStore) List(ctx context.Context, limit int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.records)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Record, n)
	copy(out, m.records[:n])
	return out, nil
}

// Get looks a record up by ID.
func (m *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }
