// Package store persists the latest dashboard summary. Two implementations
// exist: a process-local one for development and a Redis-backed one that
// survives restarts.
package store

import (
	"context"
	"sync"

	"smartcaller_backend/internal/dashboard/transport"
)

// SummaryStore holds the most recent summary. Latest reports found=false
// when no summary has been saved yet.
type SummaryStore interface {
	Save(ctx context.Context, summary transport.Summary) error
	Latest(ctx context.Context) (transport.Summary, bool, error)
}

// MemoryStore keeps the summary in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	summary *transport.Summary
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, summary transport.Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = &summary
	return nil
}

func (s *MemoryStore) Latest(_ context.Context) (transport.Summary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.summary == nil {
		return transport.Summary{}, false, nil
	}
	return *s.summary, true, nil
}

var _ SummaryStore = (*MemoryStore)(nil)
