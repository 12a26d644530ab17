// SPDX-License-Identifier: MIT
// Package: ccgeom/mesh
//
// types.go - element types, declared counts and the staging Draft.
//
// Indexing:
//   • Every reference (vertex, half-edge) is 1-based within its surface.
//   • 0 is reserved: Unlinked for half-edge links, "no element" elsewhere.

package mesh

import (
	"fmt"
	"math"
)

// Unlinked marks a half-edge prev/next link that has not been resolved yet.
// It is legal while staging and rejected at validation time.
const Unlinked = 0

// EulerClosedGenus0 is the Euler characteristic of a closed genus-0 surface.
const EulerClosedGenus0 = 2

// TriangleSides is the number of sides of every builder face.
const TriangleSides = 3

// Vertex is a 3-D coordinate.
type Vertex struct {
	X, Y, Z float64
}

// Finite reports whether all three coordinates are finite numbers.
// Complexity: O(1).
func (v Vertex) Finite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Sub returns v - w.
func (v Vertex) Sub(w Vertex) Vertex {
	return Vertex{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Cross returns the cross product v × w.
func (v Vertex) Cross(w Vertex) Vertex {
	return Vertex{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Dot returns the scalar product v · w.
func (v Vertex) Dot(w Vertex) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Norm returns the Euclidean length of v.
func (v Vertex) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Edge is an undirected pair of 1-based vertex ids.
type Edge struct {
	Source int
	Target int
}

// Key returns the canonical undirected key (smaller id first).
func (e Edge) Key() EdgeKey {
	if e.Source < e.Target {
		return EdgeKey{U: e.Source, V: e.Target}
	}
	return EdgeKey{U: e.Target, V: e.Source}
}

// EdgeKey identifies an undirected edge; U < V for canonical keys.
type EdgeKey struct{ U, V int }

// HalfEdge is a directed edge with links to its cyclic predecessor and
// successor around a face. Prev/Next are 1-based half-edge ids or Unlinked.
type HalfEdge struct {
	Source int
	Target int
	Prev   int
	Next   int
}

// Face references its vertices in winding order.
type Face struct {
	Vertices []int
}

// Sides returns the number of vertices (and sides) of f.
func (f Face) Sides() int { return len(f.Vertices) }

// Face3 is a convenience constructor for a triangular face.
func Face3(a, b, c int) Face {
	return Face{Vertices: []int{a, b, c}}
}

// Counts holds the (V, E, F) triple of a surface.
type Counts struct {
	Vertices int
	Edges    int
	Faces    int
}

// Euler returns V - E + F.
func (c Counts) Euler() int {
	return c.Vertices - c.Edges + c.Faces
}

// Negative reports whether any count is below zero.
func (c Counts) Negative() bool {
	return c.Vertices < 0 || c.Edges < 0 || c.Faces < 0
}

// HalfEdgeCapacity is the number of half-edges a closed surface with these
// counts owns: two per undirected edge, saturating at math.MaxInt.
func (c Counts) HalfEdgeCapacity() int {
	if c.Edges > math.MaxInt/2 {
		return math.MaxInt
	}

	return 2 * c.Edges
}

// String renders the triple as "(V,E,F)".
func (c Counts) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Vertices, c.Edges, c.Faces)
}

// Draft is the mutable aggregate that validation runs against. Producers
// fill it; Validate checks it; Seal freezes it into a Surface.
type Draft struct {
	// Declared holds the target capacities.
	Declared Counts
	// Sides is the required cycle length for half-edges; 0 accepts any
	// simple cycle of length ≥ 3 (polygonal template faces).
	Sides int

	Vertices  []Vertex
	Edges     []Edge
	HalfEdges []HalfEdge
	Faces     []Face
}

// Staged returns the counts of elements appended so far.
func (d *Draft) Staged() Counts {
	return Counts{Vertices: len(d.Vertices), Edges: len(d.Edges), Faces: len(d.Faces)}
}

// InVertexRange reports whether id is a valid 1-based vertex reference for
// the declared vertex count.
func (d *Draft) InVertexRange(id int) bool {
	return id >= 1 && id <= d.Declared.Vertices
}
