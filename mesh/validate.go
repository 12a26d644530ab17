// SPDX-License-Identifier: MIT
// Package: ccgeom/mesh
//
// validate.go - element admission checks and the whole-surface validation
// pipeline run at finalization time.
//
// Pipeline order (first violation wins, no repair):
//   1) counts        → ErrIncompleteSurface
//   2) Euler         → ErrInvalidTopology
//   3) half-edges    → ErrInconsistentHalfEdgeLinks
//   4) vertex degree → ErrDanglingVertex

package mesh

import "fmt"

// CheckVertex admits a coordinate triple.
func CheckVertex(v Vertex) error {
	if !v.Finite() {
		return fmt.Errorf("(%g,%g,%g): %w", v.X, v.Y, v.Z, ErrInvalidCoordinate)
	}

	return nil
}

// CheckEdge admits an edge or half-edge endpoint pair against d's declared
// vertex count. Range is checked before degeneracy.
func CheckEdge(d *Draft, source, target int) error {
	if !d.InVertexRange(source) || !d.InVertexRange(target) {
		return fmt.Errorf("(%d,%d) not in [1,%d]: %w", source, target, d.Declared.Vertices, ErrVertexOutOfRange)
	}
	if source == target {
		return fmt.Errorf("(%d,%d): %w", source, target, ErrDegenerateEdge)
	}

	return nil
}

// CheckLinks admits prev/next half-edge links. Unlinked is accepted;
// anything else must lie in [1, capacity]. Forward references are legal.
func CheckLinks(capacity, prev, next int) error {
	for _, link := range [2]int{prev, next} {
		if link < Unlinked || link > capacity {
			return fmt.Errorf("link %d not in [0,%d]: %w", link, capacity, ErrHalfEdgeOutOfRange)
		}
	}

	return nil
}

// CheckFace admits a face against d's declared vertex count: every vertex in
// range, all distinct.
func CheckFace(d *Draft, vertices ...int) error {
	for _, v := range vertices {
		if !d.InVertexRange(v) {
			return fmt.Errorf("face %v: vertex %d not in [1,%d]: %w", vertices, v, d.Declared.Vertices, ErrVertexOutOfRange)
		}
	}
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if vertices[i] == vertices[j] {
				return fmt.Errorf("face %v: %w", vertices, ErrDegenerateFace)
			}
		}
	}

	return nil
}

// Validate runs the finalization pipeline against d.
// Complexity: O(V + E + H + Σ sides).
func Validate(d *Draft) error {
	if err := CheckCounts(d); err != nil {
		return err
	}
	if err := CheckEuler(d.Declared); err != nil {
		return err
	}
	if err := CheckHalfEdgeLinks(d.HalfEdges, d.Sides); err != nil {
		return err
	}

	return CheckDegrees(d)
}

// CheckCounts compares staged element counts with the declared ones.
func CheckCounts(d *Draft) error {
	staged := d.Staged()
	switch {
	case staged.Vertices != d.Declared.Vertices:
		return fmt.Errorf("vertices %d of %d: %w", staged.Vertices, d.Declared.Vertices, ErrIncompleteSurface)
	case staged.Edges != d.Declared.Edges:
		return fmt.Errorf("edges %d of %d: %w", staged.Edges, d.Declared.Edges, ErrIncompleteSurface)
	case staged.Faces != d.Declared.Faces:
		return fmt.Errorf("faces %d of %d: %w", staged.Faces, d.Declared.Faces, ErrIncompleteSurface)
	}

	return nil
}

// CheckEuler enforces V - E + F = 2 for a closed genus-0 surface.
func CheckEuler(c Counts) error {
	if c.Negative() {
		return fmt.Errorf("negative counts %s: %w", c, ErrInvalidTopology)
	}
	if chi := c.Euler(); chi != EulerClosedGenus0 {
		return fmt.Errorf("%s has V-E+F=%d, want %d: %w", c, chi, EulerClosedGenus0, ErrInvalidTopology)
	}

	return nil
}

// CheckHalfEdgeLinks verifies that hs decomposes into simple next-cycles:
//   - every link is resolved and in range;
//   - prev(next(h)) == h and target(h) == source(next(h));
//   - every cycle has exactly sides members (sides == 0: at least three).
//
// Complexity: O(H) time, O(H) space.
func CheckHalfEdgeLinks(hs []HalfEdge, sides int) error {
	n := len(hs)
	for i, h := range hs {
		id := i + 1
		if h.Prev == Unlinked || h.Next == Unlinked {
			return fmt.Errorf("half-edge %d is unlinked: %w", id, ErrInconsistentHalfEdgeLinks)
		}
		if h.Prev < 1 || h.Prev > n || h.Next < 1 || h.Next > n {
			return fmt.Errorf("half-edge %d links (%d,%d) not in [1,%d]: %w", id, h.Prev, h.Next, n, ErrInconsistentHalfEdgeLinks)
		}
	}
	for i, h := range hs {
		id := i + 1
		next := hs[h.Next-1]
		if next.Prev != id {
			return fmt.Errorf("prev(next(%d)) = %d: %w", id, next.Prev, ErrInconsistentHalfEdgeLinks)
		}
		if next.Source != h.Target {
			return fmt.Errorf("half-edge %d ends at %d but next %d starts at %d: %w",
				id, h.Target, h.Next, next.Source, ErrInconsistentHalfEdgeLinks)
		}
	}

	visited := make([]bool, n+1)
	for start := 1; start <= n; start++ {
		if visited[start] {
			continue
		}
		length := 0
		for cur := start; ; {
			if visited[cur] {
				return fmt.Errorf("cycle from %d revisits %d: %w", start, cur, ErrInconsistentHalfEdgeLinks)
			}
			visited[cur] = true
			length++
			cur = hs[cur-1].Next
			if cur == start {
				break
			}
		}
		if sides > 0 && length != sides {
			return fmt.Errorf("cycle from %d has %d sides, want %d: %w", start, length, sides, ErrInconsistentHalfEdgeLinks)
		}
		if sides <= 0 && length < TriangleSides {
			return fmt.Errorf("cycle from %d has %d sides: %w", start, length, ErrInconsistentHalfEdgeLinks)
		}
	}

	return nil
}

// CheckDegrees rejects vertices referenced by no edge and no face.
func CheckDegrees(d *Draft) error {
	referenced := make([]bool, len(d.Vertices)+1)
	mark := func(v int) {
		if v >= 1 && v < len(referenced) {
			referenced[v] = true
		}
	}
	for _, e := range d.Edges {
		mark(e.Source)
		mark(e.Target)
	}
	for _, f := range d.Faces {
		for _, v := range f.Vertices {
			mark(v)
		}
	}
	for v := 1; v < len(referenced); v++ {
		if !referenced[v] {
			return fmt.Errorf("vertex %d: %w", v, ErrDanglingVertex)
		}
	}

	return nil
}
