// Package mesh_test covers admission checks, derivation and the
// finalization pipeline.
package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ccgeom/ccgeom/mesh"
)

// tetraFaces is a coherently oriented tetrahedron on vertices 1..4.
var tetraFaces = []mesh.Face{
	mesh.Face3(1, 2, 3),
	mesh.Face3(1, 3, 4),
	mesh.Face3(1, 4, 2),
	mesh.Face3(2, 4, 3),
}

// tetraDraft returns a complete, valid tetrahedron draft.
func tetraDraft() *mesh.Draft {
	d := &mesh.Draft{
		Declared: mesh.Counts{Vertices: 4, Edges: 6, Faces: 4},
		Sides:    mesh.TriangleSides,
		Vertices: []mesh.Vertex{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}},
		Faces:    make([]mesh.Face, len(tetraFaces)),
	}
	for i, f := range tetraFaces {
		d.Faces[i] = mesh.Face{Vertices: append([]int(nil), f.Vertices...)}
	}
	d.Edges = mesh.DeriveEdges(d.Faces)
	d.HalfEdges = mesh.DeriveHalfEdges(d.Faces)
	return d
}

func TestDeriveEdges_Tetrahedron(t *testing.T) {
	t.Parallel()

	edges := mesh.DeriveEdges(tetraFaces)
	require.Len(t, edges, 6)

	keys := make(map[mesh.EdgeKey]bool)
	for _, e := range edges {
		keys[e.Key()] = true
	}
	require.Len(t, keys, 6, "derived edges must be unique")
	require.Equal(t, mesh.Edge{Source: 1, Target: 2}, edges[0], "first side of first face comes first")
}

func TestDeriveHalfEdges_LinksCycles(t *testing.T) {
	t.Parallel()

	hs := mesh.DeriveHalfEdges(tetraFaces)
	require.Len(t, hs, 12)
	require.Equal(t, mesh.HalfEdge{Source: 1, Target: 2, Prev: 3, Next: 2}, hs[0])
	require.Equal(t, mesh.HalfEdge{Source: 3, Target: 1, Prev: 2, Next: 1}, hs[2])
	require.NoError(t, mesh.CheckHalfEdgeLinks(hs, mesh.TriangleSides))
}

func TestConsistentlyOriented(t *testing.T) {
	t.Parallel()

	require.True(t, mesh.ConsistentlyOriented(tetraFaces))

	// Repeating the directed side 2→3 breaks coherence.
	mixed := []mesh.Face{mesh.Face3(1, 2, 3), mesh.Face3(1, 3, 4), mesh.Face3(1, 4, 2), mesh.Face3(2, 3, 4)}
	require.False(t, mesh.ConsistentlyOriented(mixed))

	// An open fan has sides without twins.
	require.False(t, mesh.ConsistentlyOriented(tetraFaces[:3]))
}

func TestCheckHalfEdgeLinks_Violations(t *testing.T) {
	t.Parallel()

	tri := func() []mesh.HalfEdge {
		return []mesh.HalfEdge{
			{Source: 1, Target: 2, Prev: 3, Next: 2},
			{Source: 2, Target: 3, Prev: 1, Next: 3},
			{Source: 3, Target: 1, Prev: 2, Next: 1},
		}
	}

	tests := []struct {
		name   string
		mutate func(hs []mesh.HalfEdge) []mesh.HalfEdge
		sides  int
	}{
		{"unlinked next", func(hs []mesh.HalfEdge) []mesh.HalfEdge { hs[0].Next = mesh.Unlinked; return hs }, 3},
		{"unlinked prev", func(hs []mesh.HalfEdge) []mesh.HalfEdge { hs[1].Prev = mesh.Unlinked; return hs }, 3},
		{"link past end", func(hs []mesh.HalfEdge) []mesh.HalfEdge { hs[2].Next = 9; return hs }, 3},
		{"prev of next mismatch", func(hs []mesh.HalfEdge) []mesh.HalfEdge { hs[1].Prev = 3; return hs }, 3},
		{"endpoint chain broken", func(hs []mesh.HalfEdge) []mesh.HalfEdge { hs[1].Source = 4; return hs }, 3},
		{"wrong cycle length", func(hs []mesh.HalfEdge) []mesh.HalfEdge { return hs }, 4},
		{"two-cycle", func([]mesh.HalfEdge) []mesh.HalfEdge {
			return []mesh.HalfEdge{
				{Source: 1, Target: 2, Prev: 2, Next: 2},
				{Source: 2, Target: 1, Prev: 1, Next: 1},
			}
		}, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := mesh.CheckHalfEdgeLinks(tc.mutate(tri()), tc.sides)
			require.ErrorIs(t, err, mesh.ErrInconsistentHalfEdgeLinks)
		})
	}

	require.NoError(t, mesh.CheckHalfEdgeLinks(tri(), 3))
	require.NoError(t, mesh.CheckHalfEdgeLinks(tri(), 0))
	require.NoError(t, mesh.CheckHalfEdgeLinks(nil, 3), "an empty set is vacuously consistent")
}

func TestValidate_Pipeline(t *testing.T) {
	t.Parallel()

	require.NoError(t, mesh.Validate(tetraDraft()))

	tests := []struct {
		name    string
		mutate  func(d *mesh.Draft)
		wantErr error
	}{
		{
			name:    "missing vertex",
			mutate:  func(d *mesh.Draft) { d.Vertices = d.Vertices[:3] },
			wantErr: mesh.ErrIncompleteSurface,
		},
		{
			name:    "missing edge",
			mutate:  func(d *mesh.Draft) { d.Edges = d.Edges[:5] },
			wantErr: mesh.ErrIncompleteSurface,
		},
		{
			name: "euler violated",
			mutate: func(d *mesh.Draft) {
				d.Declared.Edges = 7
				d.Edges = append(d.Edges, mesh.Edge{Source: 1, Target: 2})
			},
			wantErr: mesh.ErrInvalidTopology,
		},
		{
			name:    "broken half-edge",
			mutate:  func(d *mesh.Draft) { d.HalfEdges[4].Next = mesh.Unlinked },
			wantErr: mesh.ErrInconsistentHalfEdgeLinks,
		},
		{
			name: "counts checked before links",
			mutate: func(d *mesh.Draft) {
				d.HalfEdges[4].Next = mesh.Unlinked
				d.Faces = d.Faces[:3]
			},
			wantErr: mesh.ErrIncompleteSurface,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := tetraDraft()
			tc.mutate(d)
			require.ErrorIs(t, mesh.Validate(d), tc.wantErr)
		})
	}
}

func TestCheckDegrees_Dangling(t *testing.T) {
	t.Parallel()

	// V=5, E=9, F=6 is Euler-valid but vertex 5 is never referenced.
	d := &mesh.Draft{
		Declared: mesh.Counts{Vertices: 5, Edges: 9, Faces: 6},
		Vertices: make([]mesh.Vertex, 5),
		Edges:    make([]mesh.Edge, 9),
		Faces: []mesh.Face{
			mesh.Face3(1, 2, 3), mesh.Face3(1, 3, 4), mesh.Face3(1, 4, 2),
			mesh.Face3(2, 4, 3), mesh.Face3(1, 2, 3), mesh.Face3(1, 3, 4),
		},
	}
	for i := range d.Edges {
		d.Edges[i] = mesh.Edge{Source: 1, Target: 2}
	}

	err := mesh.Validate(d)
	require.ErrorIs(t, err, mesh.ErrDanglingVertex)
	require.Contains(t, err.Error(), "vertex 5")
}

func TestAdmissionChecks(t *testing.T) {
	t.Parallel()

	d := &mesh.Draft{Declared: mesh.Counts{Vertices: 4, Edges: 6, Faces: 4}}

	require.NoError(t, mesh.CheckVertex(mesh.Vertex{X: 1, Y: -2, Z: 3}))
	require.ErrorIs(t, mesh.CheckVertex(mesh.Vertex{X: math.NaN()}), mesh.ErrInvalidCoordinate)
	require.ErrorIs(t, mesh.CheckVertex(mesh.Vertex{Z: math.Inf(-1)}), mesh.ErrInvalidCoordinate)

	require.NoError(t, mesh.CheckEdge(d, 1, 4))
	require.ErrorIs(t, mesh.CheckEdge(d, 0, 2), mesh.ErrVertexOutOfRange)
	require.ErrorIs(t, mesh.CheckEdge(d, 1, 5), mesh.ErrVertexOutOfRange)
	require.ErrorIs(t, mesh.CheckEdge(d, 3, 3), mesh.ErrDegenerateEdge)
	require.ErrorIs(t, mesh.CheckEdge(d, 9, 9), mesh.ErrVertexOutOfRange, "range is checked before degeneracy")

	require.NoError(t, mesh.CheckLinks(12, mesh.Unlinked, 12))
	require.ErrorIs(t, mesh.CheckLinks(12, 13, 1), mesh.ErrHalfEdgeOutOfRange)
	require.ErrorIs(t, mesh.CheckLinks(12, 1, -1), mesh.ErrHalfEdgeOutOfRange)

	require.NoError(t, mesh.CheckFace(d, 1, 2, 3))
	require.ErrorIs(t, mesh.CheckFace(d, 1, 2, 5), mesh.ErrVertexOutOfRange)
	require.ErrorIs(t, mesh.CheckFace(d, 1, 2, 1), mesh.ErrDegenerateFace)
}

func TestCheckEuler(t *testing.T) {
	t.Parallel()

	for _, c := range []mesh.Counts{{4, 6, 4}, {8, 12, 6}, {6, 12, 8}, {20, 30, 12}, {12, 30, 20}} {
		require.NoError(t, mesh.CheckEuler(c), c.String())
	}
	require.ErrorIs(t, mesh.CheckEuler(mesh.Counts{Vertices: 4, Edges: 5, Faces: 4}), mesh.ErrInvalidTopology)
	require.ErrorIs(t, mesh.CheckEuler(mesh.Counts{Vertices: -1, Edges: -3, Faces: 0}), mesh.ErrInvalidTopology)
}

func TestHalfEdgeCapacity_Saturates(t *testing.T) {
	t.Parallel()

	require.Equal(t, 12, mesh.Counts{Edges: 6}.HalfEdgeCapacity())
	require.Equal(t, math.MaxInt-1, mesh.Counts{Edges: math.MaxInt / 2}.HalfEdgeCapacity())
	require.Equal(t, math.MaxInt, mesh.Counts{Edges: math.MaxInt/2 + 1}.HalfEdgeCapacity())
	require.Equal(t, math.MaxInt, mesh.Counts{Edges: math.MaxInt}.HalfEdgeCapacity())
	require.NoError(t, mesh.CheckLinks(mesh.Counts{Edges: math.MaxInt}.HalfEdgeCapacity(), 1, 2))
}
