// SPDX-License-Identifier: MIT
// Package: ccgeom/builder
//
// staging.go - the private staging surface and the Build* mutators.
//
// Contract:
//   • Every mutator checks, in order: Active state, declared topology,
//     capacity, then argument validity (see errors.go).
//   • A rejected call leaves the staging surface unchanged and the
//     transaction Active.
//   • Returned indices are 1-based and restart at 1 in every transaction.
//   • Half-edge prev/next links may reference half-edges not yet appended;
//     cycles are checked only at Commit.

package builder

import (
	"github.com/google/uuid"

	"github.com/ccgeom/ccgeom/mesh"
)

// staging is the in-progress surface of one transaction.
type staging struct {
	id       uuid.UUID
	declared bool
	draft    mesh.Draft
}

func newStaging(id uuid.UUID) *staging {
	return &staging{id: id, draft: mesh.Draft{Sides: mesh.TriangleSides}}
}

// active returns the staging surface when a transaction is Active and its
// topology declared. Caller holds mu.
func (m *Manager) active(method string) (*staging, error) {
	if m.state != Active {
		return nil, builderErrorf(method, ErrNoActiveTransaction, "")
	}
	if !m.stage.declared {
		return nil, builderErrorf(method, ErrTopologyNotDeclared, "")
	}

	return m.stage, nil
}

// Staged reports the element counts appended so far in the open
// transaction; zero when Idle.
func (m *Manager) Staged() mesh.Counts {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Active {
		return mesh.Counts{}
	}

	return m.stage.draft.Staged()
}

// Declared reports the capacities given to BuildSurface and whether they
// have been declared in the open transaction.
func (m *Manager) Declared() (mesh.Counts, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Active || !m.stage.declared {
		return mesh.Counts{}, false
	}

	return m.stage.draft.Declared, true
}

// BuildSurface declares the target capacities of the staging surface. It must
// be called exactly once per transaction, before any element is appended.
// The Euler relation is not checked here; Commit does.
//
// Errors:
//   - ErrNoActiveTransaction, ErrTopologyAlreadyDeclared.
//   - mesh.ErrInvalidTopology: a negative count.
func (m *Manager) BuildSurface(nVertices, nEdges, nFaces int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Active {
		return builderErrorf(MethodBuildSurface, ErrNoActiveTransaction, "")
	}
	if m.stage.declared {
		return builderErrorf(MethodBuildSurface, ErrTopologyAlreadyDeclared, "declared %s", m.stage.draft.Declared)
	}

	c := mesh.Counts{Vertices: nVertices, Edges: nEdges, Faces: nFaces}
	if c.Negative() {
		return builderErrorf(MethodBuildSurface, mesh.ErrInvalidTopology, "counts %s", c)
	}

	d := &m.stage.draft
	d.Declared = c
	d.Vertices = make([]mesh.Vertex, 0, min(nVertices, maxPrealloc))
	d.Edges = make([]mesh.Edge, 0, min(nEdges, maxPrealloc))
	d.Faces = make([]mesh.Face, 0, min(nFaces, maxPrealloc))
	m.stage.declared = true

	return nil
}

// BuildVertice appends a vertex and returns its 1-based index.
//
// Errors:
//   - ErrCapacityExceeded: n_vertices vertices already appended.
//   - mesh.ErrInvalidCoordinate: NaN or ±Inf coordinate.
func (m *Manager) BuildVertice(x, y, z float64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.active(MethodBuildVertice)
	if err != nil {
		return 0, err
	}
	d := &st.draft
	if len(d.Vertices) >= d.Declared.Vertices {
		return 0, builderErrorf(MethodBuildVertice, ErrCapacityExceeded, "%d vertices", d.Declared.Vertices)
	}

	v := mesh.Vertex{X: x, Y: y, Z: z}
	if err = mesh.CheckVertex(v); err != nil {
		return 0, builderErrorf(MethodBuildVertice, err, "")
	}
	d.Vertices = append(d.Vertices, v)

	return len(d.Vertices), nil
}

// BuildEdge appends an undirected edge and returns its 1-based index.
// Endpoints are checked against the declared vertex count, so edges may
// reference vertices appended later in the same transaction.
//
// Errors:
//   - ErrCapacityExceeded: n_edges edges already appended.
//   - mesh.ErrVertexOutOfRange, mesh.ErrDegenerateEdge.
func (m *Manager) BuildEdge(source, target int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.active(MethodBuildEdge)
	if err != nil {
		return 0, err
	}
	d := &st.draft
	if len(d.Edges) >= d.Declared.Edges {
		return 0, builderErrorf(MethodBuildEdge, ErrCapacityExceeded, "%d edges", d.Declared.Edges)
	}
	if err = mesh.CheckEdge(d, source, target); err != nil {
		return 0, builderErrorf(MethodBuildEdge, err, "")
	}
	d.Edges = append(d.Edges, mesh.Edge{Source: source, Target: target})

	return len(d.Edges), nil
}

// BuildHalfEdge appends a directed half-edge and returns its 1-based index.
// prev and next are 1-based half-edge indices, or mesh.Unlinked to be set
// by a later call; they are not required to exist yet.
//
// Errors:
//   - ErrCapacityExceeded: 2·n_edges half-edges already appended.
//   - mesh.ErrVertexOutOfRange, mesh.ErrDegenerateEdge.
//   - mesh.ErrHalfEdgeOutOfRange: a link outside [0, 2·n_edges].
func (m *Manager) BuildHalfEdge(source, target, prev, next int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.active(MethodBuildHalfEdge)
	if err != nil {
		return 0, err
	}
	d := &st.draft
	capacity := d.Declared.HalfEdgeCapacity()
	if len(d.HalfEdges) >= capacity {
		return 0, builderErrorf(MethodBuildHalfEdge, ErrCapacityExceeded, "%d half-edges", capacity)
	}
	if err = mesh.CheckEdge(d, source, target); err != nil {
		return 0, builderErrorf(MethodBuildHalfEdge, err, "")
	}
	if err = mesh.CheckLinks(capacity, prev, next); err != nil {
		return 0, builderErrorf(MethodBuildHalfEdge, err, "")
	}
	d.HalfEdges = append(d.HalfEdges, mesh.HalfEdge{Source: source, Target: target, Prev: prev, Next: next})

	return len(d.HalfEdges), nil
}

// BuildFace3 appends a triangular face and returns its 1-based index. The
// winding v1→v2→v3 is kept as given.
//
// Errors:
//   - ErrCapacityExceeded: n_faces faces already appended.
//   - mesh.ErrVertexOutOfRange, mesh.ErrDegenerateFace.
func (m *Manager) BuildFace3(v1, v2, v3 int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.active(MethodBuildFace3)
	if err != nil {
		return 0, err
	}
	d := &st.draft
	if len(d.Faces) >= d.Declared.Faces {
		return 0, builderErrorf(MethodBuildFace3, ErrCapacityExceeded, "%d faces", d.Declared.Faces)
	}
	if err = mesh.CheckFace(d, v1, v2, v3); err != nil {
		return 0, builderErrorf(MethodBuildFace3, err, "")
	}
	d.Faces = append(d.Faces, mesh.Face3(v1, v2, v3))

	return len(d.Faces), nil
}
