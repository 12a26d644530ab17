// SPDX-License-Identifier: MIT
// Package: ccgeom/registry
//
// catalog.go - canonical data for the five Platonic solids.
//
// Design:
//   • Single source of truth for (V,E,F), polygon faces and reference
//     coordinates of every catalog entry.
//   • Faces are 0-based (legacy template indexing) and wound
//     counter-clockwise seen from outside; every directed side appears
//     exactly once, so each undirected edge has its twin in the adjacent face.
//   • Tables are built once at init() and never mutated afterwards.
//
// Labelling:
//   • Cube:         bottom square 0-1-2-3, top square 4-5-6-7, verticals i-(i+4).
//   • Octahedron:   poles 0 (+z) and 1 (-z), equator 2(+x) 4(+y) 3(-x) 5(-y).
//   • Dodecahedron: top pentagon 0..4, bottom pentagon 5..9, middle ring 10..19;
//     top i joins ring 10+2i, bottom j joins ring 11+2j.
//   • Icosahedron:  pole 0, top ring 1..5, bottom ring 6..10, pole 11;
//     top k joins bottom k+5 and k+6 (mod ring).

package registry

import "math"

// TemplateID enumerates the catalog entries. Values are part of the
// external contract and never change.
type TemplateID int

// Catalog ids (stable ordering).
const (
	Tetrahedron  TemplateID = iota // V=4,  E=6,  F=4
	Cube                           // V=8,  E=12, F=6
	Octahedron                     // V=6,  E=12, F=8
	Dodecahedron                   // V=20, E=30, F=12
	Icosahedron                    // V=12, E=30, F=20
)

// NumTemplates is the catalog size.
const NumTemplates = 5

// String provides a readable identifier for logs and errors.
func (id TemplateID) String() string {
	switch id {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Valid reports whether id names a catalog entry.
func (id TemplateID) Valid() bool {
	return id >= Tetrahedron && id < NumTemplates
}

// solid is one immutable catalog row.
type solid struct {
	v, e, f int
	faces   [][]int      // 0-based, outward winding
	coords  [][3]float64 // unit circumsphere
}

// catalog is indexed by TemplateID.
var catalog [NumTemplates]solid

func init() {
	catalog[Tetrahedron] = solid{v: 4, e: 6, f: 4, faces: tetrahedronFaces(), coords: tetrahedronCoords()}
	catalog[Cube] = solid{v: 8, e: 12, f: 6, faces: cubeFaces(), coords: cubeCoords()}
	catalog[Octahedron] = solid{v: 6, e: 12, f: 8, faces: octahedronFaces(), coords: octahedronCoords()}
	catalog[Dodecahedron] = solid{v: 20, e: 30, f: 12, faces: dodecahedronFaces(), coords: dodecahedronCoords()}
	catalog[Icosahedron] = solid{v: 12, e: 30, f: 20, faces: icosahedronFaces(), coords: icosahedronCoords()}
}

// -----------------------------------------------------------------------------
// Faces
// -----------------------------------------------------------------------------

func tetrahedronFaces() [][]int {
	return [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}}
}

func cubeFaces() [][]int {
	return [][]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // -y
		{1, 2, 6, 5}, // +x
		{2, 3, 7, 6}, // +y
		{3, 0, 4, 7}, // -x
	}
}

func octahedronFaces() [][]int {
	return [][]int{
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
	}
}

func dodecahedronFaces() [][]int {
	top := func(i int) int { return i % 5 }
	bottom := func(j int) int { return 5 + j%5 }
	ring := func(k int) int { return 10 + k%10 }

	faces := make([][]int, 0, 12)
	faces = append(faces, []int{0, 1, 2, 3, 4}, []int{5, 9, 8, 7, 6})
	for i := 0; i < 5; i++ {
		faces = append(faces, []int{top(i), ring(2 * i), ring(2*i + 1), ring(2*i + 2), top(i + 1)})
	}
	for j := 0; j < 5; j++ {
		faces = append(faces, []int{bottom(j + 1), ring(2*j + 3), ring(2*j + 2), ring(2*j + 1), bottom(j)})
	}

	return faces
}

func icosahedronFaces() [][]int {
	top := func(k int) int { return 1 + (k-1)%5 }    // k in 1..6 wraps to 1..5
	bottom := func(k int) int { return 6 + (k-6)%5 } // k in 6..11 wraps to 6..10

	faces := make([][]int, 0, 20)
	for k := 1; k <= 5; k++ {
		faces = append(faces, []int{0, top(k), top(k + 1)})
	}
	for k := 1; k <= 5; k++ {
		faces = append(faces, []int{top(k), bottom(k + 6), top(k + 1)})
	}
	for m := 6; m <= 10; m++ {
		faces = append(faces, []int{bottom(m), bottom(m + 1), m - 5})
	}
	for m := 6; m <= 10; m++ {
		faces = append(faces, []int{11, bottom(m + 1), bottom(m)})
	}

	return faces
}

// -----------------------------------------------------------------------------
// Reference coordinates (unit circumradius)
// -----------------------------------------------------------------------------

func tetrahedronCoords() [][3]float64 {
	s := 1 / math.Sqrt(3)
	return [][3]float64{{s, s, s}, {s, -s, -s}, {-s, s, -s}, {-s, -s, s}}
}

func cubeCoords() [][3]float64 {
	s := 1 / math.Sqrt(3)
	out := make([][3]float64, 0, 8)
	for _, z := range []float64{-s, s} {
		out = append(out, [3]float64{-s, -s, z}, [3]float64{s, -s, z}, [3]float64{s, s, z}, [3]float64{-s, s, z})
	}
	return out
}

func octahedronCoords() [][3]float64 {
	return [][3]float64{{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}
}

func dodecahedronCoords() [][3]float64 {
	zTop := math.Sqrt((5 + 2*math.Sqrt(5)) / 15)
	zMid := math.Sqrt((5 - 2*math.Sqrt(5)) / 15)

	out := make([][3]float64, 20)
	for i := 0; i < 5; i++ {
		out[i] = polar(72*float64(i), zTop)
		out[5+i] = polar(72*float64(i)+36, -zTop)
		out[10+2*i] = polar(72*float64(i), zMid)
		out[11+2*i] = polar(72*float64(i)+36, -zMid)
	}
	return out
}

func icosahedronCoords() [][3]float64 {
	z := 1 / math.Sqrt(5)

	out := make([][3]float64, 12)
	out[0] = [3]float64{0, 0, 1}
	out[11] = [3]float64{0, 0, -1}
	for k := 0; k < 5; k++ {
		out[1+k] = polar(72*float64(k), z)
		out[6+k] = polar(72*float64(k)-36, -z)
	}
	return out
}

// polar places a point on the unit sphere at azimuth deg (degrees) and height z.
func polar(deg, z float64) [3]float64 {
	r := math.Sqrt(1 - z*z)
	rad := deg * math.Pi / 180
	return [3]float64{r * math.Cos(rad), r * math.Sin(rad), z}
}
