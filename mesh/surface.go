// SPDX-License-Identifier: MIT
// Package: ccgeom/mesh
//
// surface.go - the immutable, finalized surface.

package mesh

import "fmt"

// Origin names the subsystem that produced a Surface.
type Origin string

const (
	// OriginBuilder marks surfaces committed by the transactional builder.
	OriginBuilder Origin = "builder"
	// OriginTemplate marks surfaces promoted from the template catalog.
	OriginTemplate Origin = "template"
)

// Surface is a finalized, read-only mesh. All getters are 1-based and safe
// for concurrent use since nothing mutates a Surface after Seal.
type Surface struct {
	origin    Origin
	label     string
	declared  Counts
	vertices  []Vertex
	edges     []Edge
	halfEdges []HalfEdge
	faces     []Face
}

// Seal freezes d into a Surface. The draft is deep-copied, so later
// mutation of d cannot reach the Surface. Seal does not validate; run
// Validate first.
// Complexity: O(V + E + H + Σ sides).
func Seal(d *Draft, origin Origin, label string) *Surface {
	s := &Surface{
		origin:    origin,
		label:     label,
		declared:  d.Declared,
		vertices:  append([]Vertex(nil), d.Vertices...),
		edges:     append([]Edge(nil), d.Edges...),
		halfEdges: append([]HalfEdge(nil), d.HalfEdges...),
		faces:     make([]Face, len(d.Faces)),
	}
	for i, f := range d.Faces {
		s.faces[i] = Face{Vertices: append([]int(nil), f.Vertices...)}
	}

	return s
}

// Origin returns the producing subsystem.
func (s *Surface) Origin() Origin { return s.origin }

// Label returns a free-form description (template name, transaction id).
func (s *Surface) Label() string { return s.label }

// Counts returns the (V, E, F) triple.
func (s *Surface) Counts() Counts { return s.declared }

// NumHalfEdges returns the number of stored half-edges.
func (s *Surface) NumHalfEdges() int { return len(s.halfEdges) }

// EulerCharacteristic returns V - E + F; always 2 for a sealed, validated surface.
func (s *Surface) EulerCharacteristic() int { return s.declared.Euler() }

// Vertex returns vertex i (1-based).
func (s *Surface) Vertex(i int) (Vertex, error) {
	if i < 1 || i > len(s.vertices) {
		return Vertex{}, fmt.Errorf("vertex %d not in [1,%d]: %w", i, len(s.vertices), ErrVertexOutOfRange)
	}
	return s.vertices[i-1], nil
}

// Edge returns edge i (1-based) and whether it exists.
func (s *Surface) Edge(i int) (Edge, bool) {
	if i < 1 || i > len(s.edges) {
		return Edge{}, false
	}
	return s.edges[i-1], true
}

// HalfEdge returns half-edge i (1-based) and whether it exists.
func (s *Surface) HalfEdge(i int) (HalfEdge, bool) {
	if i < 1 || i > len(s.halfEdges) {
		return HalfEdge{}, false
	}
	return s.halfEdges[i-1], true
}

// Face returns a copy of face i (1-based) and whether it exists.
func (s *Surface) Face(i int) (Face, bool) {
	if i < 1 || i > len(s.faces) {
		return Face{}, false
	}
	return Face{Vertices: append([]int(nil), s.faces[i-1].Vertices...)}, true
}

// Vertices returns a copy of all vertices in index order.
func (s *Surface) Vertices() []Vertex {
	return append([]Vertex(nil), s.vertices...)
}

// Oriented reports whether the faces are coherently oriented.
func (s *Surface) Oriented() bool {
	return ConsistentlyOriented(s.faces)
}
