package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ccgeom/ccgeom/mesh"
)

func TestComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		edges []mesh.Edge
		want  int
	}{
		{"empty", 0, nil, 0},
		{"isolated", 3, nil, 3},
		{"path", 3, []mesh.Edge{{Source: 1, Target: 2}, {Source: 2, Target: 3}}, 1},
		{"two pieces", 4, []mesh.Edge{{Source: 1, Target: 2}, {Source: 3, Target: 4}}, 2},
		{"out of range ignored", 2, []mesh.Edge{{Source: 1, Target: 9}}, 2},
		{"tetrahedron", 4, mesh.DeriveEdges(tetraFaces), 1},
	}
	for _, tc := range tests {
		labels, got := mesh.Components(tc.n, tc.edges)
		require.Equal(t, tc.want, got, tc.name)
		for v := 1; v <= tc.n; v++ {
			require.GreaterOrEqual(t, labels[v], 1, tc.name)
			require.LessOrEqual(t, labels[v], got, tc.name)
		}
	}
}

func TestDistances(t *testing.T) {
	t.Parallel()

	path := []mesh.Edge{{Source: 1, Target: 2}, {Source: 2, Target: 3}}
	require.Equal(t, []int{-1, 0, 1, 2, -1}, mesh.Distances(4, path, 1))
	require.Equal(t, []int{-1, 1, 0, 1, -1}, mesh.Distances(4, path, 2))
	require.Nil(t, mesh.Distances(4, path, 5))
}

func TestSurface_ComponentsAndDiameter(t *testing.T) {
	t.Parallel()

	d := tetraDraft()
	s := mesh.Seal(d, mesh.OriginBuilder, "tetra")
	require.Equal(t, 1, s.Components())
	require.Equal(t, 1, s.Diameter(), "every tetrahedron vertex pair is adjacent")
}
