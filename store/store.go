// SPDX-License-Identifier: MIT
// Package: ccgeom/store
//
// store.go - process-lifetime table of finalized surfaces.
//
// Concurrency:
//   • mu guards the table and the handle counter.
//   • Put takes the write lock, so handle allocation never interleaves
//     with a scan (Handles, Len); Get takes the read lock.
//   • Stored surfaces are immutable; readers share them without copying.

package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ccgeom/ccgeom/mesh"
)

// Handle is the stable identifier of a finalized surface. Valid handles
// start at FirstHandle and increase by one per successful Put.
type Handle int

// FirstHandle is the handle assigned to the first stored surface.
const FirstHandle Handle = 1

var (
	// ErrSurfaceNotFound indicates a handle that was never assigned.
	ErrSurfaceNotFound = errors.New("store: surface not found")

	// ErrStoreFull indicates that the configured surface limit is reached.
	ErrStoreFull = errors.New("store: capacity reached")

	// ErrNilSurface indicates an attempt to store a nil surface.
	ErrNilSurface = errors.New("store: nil surface")
)

// Option configures a Store.
type Option func(*Store)

// WithLimit caps the number of stored surfaces; 0 means unlimited.
// Panics on a negative limit.
func WithLimit(n int) Option {
	if n < 0 {
		panic("store: WithLimit(n<0)")
	}
	return func(s *Store) { s.limit = n }
}

// Store maps handles to finalized surfaces. Entries are never removed.
type Store struct {
	mu       sync.RWMutex
	surfaces map[Handle]*mesh.Surface
	next     Handle
	limit    int
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		surfaces: make(map[Handle]*mesh.Surface),
		next:     FirstHandle,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Put stores surf under the next handle and returns it.
// Complexity: O(1).
func (s *Store) Put(surf *mesh.Surface) (Handle, error) {
	if surf == nil {
		return 0, ErrNilSurface
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limit > 0 && len(s.surfaces) >= s.limit {
		return 0, fmt.Errorf("limit %d: %w", s.limit, ErrStoreFull)
	}
	h := s.next
	s.surfaces[h] = surf
	s.next++

	return h, nil
}

// Get returns the surface stored under h.
func (s *Store) Get(h Handle) (*mesh.Surface, error) {
	s.mu.RLock()
	surf, ok := s.surfaces[h]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("handle %d: %w", h, ErrSurfaceNotFound)
	}

	return surf, nil
}

// Vertex reads back vertex i (1-based) of the surface under h.
func (s *Store) Vertex(h Handle, i int) (mesh.Vertex, error) {
	surf, err := s.Get(h)
	if err != nil {
		return mesh.Vertex{}, err
	}

	return surf.Vertex(i)
}

// Len returns the number of stored surfaces.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.surfaces)
}

// Handles returns all assigned handles in ascending order.
// Complexity: O(n log n).
func (s *Store) Handles() []Handle {
	s.mu.RLock()
	hs := make([]Handle, 0, len(s.surfaces))
	for h := range s.surfaces {
		hs = append(hs, h)
	}
	s.mu.RUnlock()

	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })

	return hs
}
