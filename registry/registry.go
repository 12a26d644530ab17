// SPDX-License-Identifier: MIT
// Package: ccgeom/registry
//
// registry.go - classification and bounded per-template coordinate storage.
//
// Contract:
//   • Classify is a closed lookup over the catalog; no Euler reasoning for
//     unknown triples.
//   • WriteVertex is a bounds-checked array write: 0 ≤ index < V(id) succeeds
//     whether or not id was ever returned by Classify.
//   • Each entry owns a fixed-length buffer allocated once in New; nothing
//     grows.
//   • Promote is the only path from a template into the surface store.
//
// Concurrency:
//   • mu guards all buffers; reads take RLock.

package registry

import (
	"fmt"
	"sync"

	"github.com/ccgeom/ccgeom/mesh"
	"github.com/ccgeom/ccgeom/store"
)

// Entry describes one catalog row.
type Entry struct {
	ID     TemplateID
	Name   string
	Counts mesh.Counts
}

// Sink receives finalized surfaces; *store.Store implements it.
type Sink interface {
	Put(*mesh.Surface) (store.Handle, error)
}

// buffer is the fixed coordinate array of one template.
type buffer struct {
	coords  []mesh.Vertex
	written []bool
}

// Registry holds one coordinate buffer per catalog entry.
type Registry struct {
	mu      sync.RWMutex
	buffers [NumTemplates]buffer
}

// New allocates a Registry with empty buffers of length V for every entry.
// Complexity: O(Σ V) = O(50).
func New() *Registry {
	r := &Registry{}
	for id := range r.buffers {
		n := catalog[id].v
		r.buffers[id] = buffer{coords: make([]mesh.Vertex, n), written: make([]bool, n)}
	}

	return r
}

// Classify returns the catalog id whose (V,E,F) equals the given triple.
// Complexity: O(NumTemplates).
func Classify(nVertices, nEdges, nFaces int) (TemplateID, error) {
	for id, s := range catalog {
		if s.v == nVertices && s.e == nEdges && s.f == nFaces {
			return TemplateID(id), nil
		}
	}

	return 0, fmt.Errorf("%s: (%d,%d,%d): %w", MethodClassify, nVertices, nEdges, nFaces, ErrUnknownTopology)
}

// Lookup returns the catalog row for id.
func Lookup(id TemplateID) (Entry, error) {
	if !id.Valid() {
		return Entry{}, fmt.Errorf("%s: id %d: %w", MethodLookup, int(id), ErrUnknownTopology)
	}
	s := catalog[id]

	return Entry{ID: id, Name: id.String(), Counts: mesh.Counts{Vertices: s.v, Edges: s.e, Faces: s.f}}, nil
}

// Catalog returns all rows in id order.
func Catalog() []Entry {
	out := make([]Entry, 0, NumTemplates)
	for id := TemplateID(0); id < NumTemplates; id++ {
		e, _ := Lookup(id)
		out = append(out, e)
	}

	return out
}

// Canonical returns reference coordinates for id, in slot order, matching
// the outward winding of the catalog faces.
func Canonical(id TemplateID) ([]mesh.Vertex, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%s: id %d: %w", MethodLookup, int(id), ErrUnknownTopology)
	}
	src := catalog[id].coords
	out := make([]mesh.Vertex, len(src))
	for i, c := range src {
		out[i] = mesh.Vertex{X: c[0], Y: c[1], Z: c[2]}
	}

	return out, nil
}

// Faces returns the catalog faces of id as 1-based mesh faces.
func Faces(id TemplateID) ([]mesh.Face, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%s: id %d: %w", MethodLookup, int(id), ErrUnknownTopology)
	}
	src := catalog[id].faces
	out := make([]mesh.Face, len(src))
	for i, f := range src {
		vs := make([]int, len(f))
		for k, v := range f {
			vs[k] = v + 1
		}
		out[i] = mesh.Face{Vertices: vs}
	}

	return out, nil
}

// WriteVertex stores (x,y,z) in slot index of template id. Overwriting a
// written slot is allowed; writes past V(id) are rejected and change nothing.
// Complexity: O(1).
func (r *Registry) WriteVertex(id TemplateID, index int, x, y, z float64) error {
	if !id.Valid() {
		return fmt.Errorf("%s: id %d: %w", MethodWriteVertex, int(id), ErrUnknownTopology)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b := &r.buffers[id]
	if index < 0 || index >= len(b.coords) {
		return fmt.Errorf("%s: %s index %d not in [0,%d): %w", MethodWriteVertex, id, index, len(b.coords), ErrIndexOutOfBounds)
	}
	b.coords[index] = mesh.Vertex{X: x, Y: y, Z: z}
	b.written[index] = true

	return nil
}

// Vertex reads slot index of template id and reports whether it was written.
func (r *Registry) Vertex(id TemplateID, index int) (mesh.Vertex, bool, error) {
	if !id.Valid() {
		return mesh.Vertex{}, false, fmt.Errorf("%s: id %d: %w", MethodVertex, int(id), ErrUnknownTopology)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b := &r.buffers[id]
	if index < 0 || index >= len(b.coords) {
		return mesh.Vertex{}, false, fmt.Errorf("%s: %s index %d not in [0,%d): %w", MethodVertex, id, index, len(b.coords), ErrIndexOutOfBounds)
	}

	return b.coords[index], b.written[index], nil
}

// Written returns how many slots of id have been written.
func (r *Registry) Written(id TemplateID) int {
	if !id.Valid() {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, w := range r.buffers[id].written {
		if w {
			n++
		}
	}

	return n
}

// Complete reports whether every slot of id has been written.
func (r *Registry) Complete(id TemplateID) bool {
	return id.Valid() && r.Written(id) == catalog[id].v
}

// Reset clears the buffer of id.
func (r *Registry) Reset(id TemplateID) error {
	if !id.Valid() {
		return fmt.Errorf("%s: id %d: %w", MethodLookup, int(id), ErrUnknownTopology)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b := &r.buffers[id]
	for i := range b.coords {
		b.coords[i] = mesh.Vertex{}
		b.written[i] = false
	}

	return nil
}

// Promote finalizes template id into sink: the buffer must be complete and
// finite; edges and half-edges are derived from the catalog faces and the
// surface runs the same validation as a builder commit.
// Complexity: O(V + E + F).
func (r *Registry) Promote(id TemplateID, sink Sink) (store.Handle, error) {
	entry, err := Lookup(id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", MethodPromote, err)
	}

	// Snapshot the buffer under the read lock.
	r.mu.RLock()
	b := r.buffers[id]
	vertices := append([]mesh.Vertex(nil), b.coords...)
	missing := -1
	for i, w := range b.written {
		if !w {
			missing = i
			break
		}
	}
	r.mu.RUnlock()

	if missing >= 0 {
		return 0, fmt.Errorf("%s: %s slot %d unwritten: %w", MethodPromote, id, missing, mesh.ErrIncompleteSurface)
	}

	return promote(entry, vertices, sink)
}

// PromoteCanonical finalizes template id into sink from its Canonical
// coordinates. The caller-visible buffer of id is neither read nor written.
// Complexity: O(V + E + F).
func (r *Registry) PromoteCanonical(id TemplateID, sink Sink) (store.Handle, error) {
	entry, err := Lookup(id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", MethodPromote, err)
	}
	vertices, _ := Canonical(id)

	return promote(entry, vertices, sink)
}

// promote validates vertices against the catalog faces of entry and puts the
// sealed surface into sink.
func promote(entry Entry, vertices []mesh.Vertex, sink Sink) (store.Handle, error) {
	id := entry.ID
	for i, v := range vertices {
		if err := mesh.CheckVertex(v); err != nil {
			return 0, fmt.Errorf("%s: %s slot %d %w", MethodPromote, id, i, err)
		}
	}

	// Assemble the draft from the canonical faces.
	faces, _ := Faces(id)
	d := &mesh.Draft{
		Declared:  entry.Counts,
		Vertices:  vertices,
		Faces:     faces,
		Edges:     mesh.DeriveEdges(faces),
		HalfEdges: mesh.DeriveHalfEdges(faces),
	}

	// Same pipeline as a builder commit; polygon cycles of any length.
	if err := mesh.Validate(d); err != nil {
		return 0, fmt.Errorf("%s: %s: %w", MethodPromote, id, err)
	}

	h, err := sink.Put(mesh.Seal(d, mesh.OriginTemplate, entry.Name))
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", MethodPromote, id, err)
	}

	return h, nil
}
