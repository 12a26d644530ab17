// SPDX-License-Identifier: MIT
// Package: ccgeom/mesh
//
// derive.go - edge and half-edge sets implied by a face list.
//
// Determinism:
//   • Edges are emitted in first-appearance order while walking faces in
//     order and each face in winding order.
//   • Half-edges of face k occupy a contiguous id block, in winding order.

package mesh

// DeriveEdges returns the unique undirected edges of faces, in
// first-appearance order. Edge endpoints keep the orientation of the first
// face side that introduced them.
// Complexity: O(Σ sides) time, O(E) space.
func DeriveEdges(faces []Face) []Edge {
	seen := make(map[EdgeKey]struct{}, len(faces)*2)
	edges := make([]Edge, 0, len(faces)*2)
	for _, f := range faces {
		n := f.Sides()
		for i := 0; i < n; i++ {
			e := Edge{Source: f.Vertices[i], Target: f.Vertices[(i+1)%n]}
			k := e.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			edges = append(edges, e)
		}
	}

	return edges
}

// DeriveHalfEdges returns one half-edge per face side, linked into one
// cycle per face. Ids are 1-based and assigned face by face.
// Complexity: O(Σ sides) time and space.
func DeriveHalfEdges(faces []Face) []HalfEdge {
	total := 0
	for _, f := range faces {
		total += f.Sides()
	}

	hs := make([]HalfEdge, 0, total)
	for _, f := range faces {
		n := f.Sides()
		base := len(hs) // ids of this face are base+1 .. base+n
		for i := 0; i < n; i++ {
			hs = append(hs, HalfEdge{
				Source: f.Vertices[i],
				Target: f.Vertices[(i+1)%n],
				Prev:   base + 1 + (i+n-1)%n,
				Next:   base + 1 + (i+1)%n,
			})
		}
	}

	return hs
}

// ConsistentlyOriented reports whether faces form a closed, coherently
// oriented polyhedral surface: every directed side occurs exactly once and
// its reverse occurs too.
// Complexity: O(Σ sides).
func ConsistentlyOriented(faces []Face) bool {
	directed := make(map[[2]int]int, len(faces)*3)
	for _, f := range faces {
		n := f.Sides()
		for i := 0; i < n; i++ {
			directed[[2]int{f.Vertices[i], f.Vertices[(i+1)%n]}]++
		}
	}
	for side, count := range directed {
		if count != 1 {
			return false
		}
		if directed[[2]int{side[1], side[0]}] != 1 {
			return false
		}
	}

	return true
}
