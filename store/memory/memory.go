// Package memory provides an in-memory InvestmentStore for tests and demos.
// Same semantics as the SQLite store, no persistence.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/meridian/commission-engine/engine"
	"github.com/meridian/commission-engine/store"
)

// Store is a thread-safe in-memory investment store.
type Store struct {
	mu          sync.RWMutex
	investments map[string]engine.Investment
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{investments: make(map[string]engine.Investment)}
}

var _ store.InvestmentStore = (*Store)(nil)

func (s *Store) Create(ctx context.Context, inv engine.Investment) (engine.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	s.investments[inv.ID] = inv
	return inv, nil
}

func (s *Store) Get(ctx context.Context, id string) (engine.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.investments[id]
	if !ok {
		return engine.Investment{}, store.ErrNotFound
	}
	return inv, nil
}

func (s *Store) List(ctx context.Context) ([]engine.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]engine.Investment, 0, len(s.investments))
	for _, inv := range s.investments {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
