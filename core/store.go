// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Holder of the current Graph snapshot with atomic wholesale reload.
// Concurrency:
//   - mu guards the snapshot pointer only; Build runs outside the lock.
//   - Readers keep using the snapshot they obtained even after a reload.

package core

import (
	"iter"
	"sync"
)

// Store owns the currently loaded Graph. The zero value is not usable; use NewStore.
type Store struct {
	mu         sync.RWMutex
	graph      *Graph
	generation uint64 // successful loads so far
}

// NewStore returns a Store holding an empty Graph.
func NewStore() *Store {
	return &Store{graph: NewGraph()}
}

// Load builds a Graph from seq and, only if Build succeeds, replaces the current
// snapshot. On error the previous snapshot stays in place untouched.
//
// Complexity: O(R) for R records; the write lock is held only for the swap.
func (s *Store) Load(seq iter.Seq2[RouteRecord, error]) (*Graph, error) {
	g, err := Build(seq)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.graph = g
	s.generation++
	s.mu.Unlock()

	return g, nil
}

// Snapshot returns the current Graph (never nil).
func (s *Store) Snapshot() *Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph
}

// Generation returns how many loads have succeeded.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.generation
}
