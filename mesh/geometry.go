// SPDX-License-Identifier: MIT
// Package: ccgeom/mesh
//
// geometry.go - small numeric helpers over vertices and faces.

package mesh

// FaceNormal returns the (unnormalised) Newell normal of face f, whose
// vertex ids are 1-based indices into vs. Out-of-range ids contribute nothing.
// Complexity: O(sides).
func FaceNormal(vs []Vertex, f Face) Vertex {
	var n Vertex
	k := f.Sides()
	for i := 0; i < k; i++ {
		a, okA := at(vs, f.Vertices[i])
		b, okB := at(vs, f.Vertices[(i+1)%k])
		if !okA || !okB {
			continue
		}
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}

	return n
}

// SignedVolume returns the volume enclosed by faces, positive when the
// winding is outward (counter-clockwise seen from outside). Polygons are
// fanned from their first vertex.
// Complexity: O(Σ sides).
func SignedVolume(vs []Vertex, faces []Face) float64 {
	var vol float64
	for _, f := range faces {
		a, ok := at(vs, f.Vertices[0])
		if !ok {
			continue
		}
		for i := 1; i+1 < f.Sides(); i++ {
			b, okB := at(vs, f.Vertices[i])
			c, okC := at(vs, f.Vertices[i+1])
			if !okB || !okC {
				continue
			}
			vol += a.Dot(b.Cross(c))
		}
	}

	return vol / 6
}

// SignedVolume of a finalized surface; see the package-level function.
func (s *Surface) SignedVolume() float64 {
	return SignedVolume(s.vertices, s.faces)
}

func at(vs []Vertex, id int) (Vertex, bool) {
	if id < 1 || id > len(vs) {
		return Vertex{}, false
	}
	return vs[id-1], true
}
