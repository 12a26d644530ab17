package ccgeom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ccgeom/ccgeom"
	"github.com/ccgeom/ccgeom/builder"
	"github.com/ccgeom/ccgeom/config"
	"github.com/ccgeom/ccgeom/mesh"
	"github.com/ccgeom/ccgeom/registry"
	"github.com/ccgeom/ccgeom/store"
)

func newEngine(t *testing.T) *ccgeom.Engine {
	t.Helper()
	e, err := ccgeom.New(config.Default())
	require.NoError(t, err)
	return e
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Store.MaxSurfaces = -2
	_, err := ccgeom.New(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDefault_IsSingleton(t *testing.T) {
	t.Parallel()

	require.Same(t, ccgeom.Default(), ccgeom.Default())
}

func TestEngine_FunctionTable(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	id, err := e.Classify(4, 6, 4)
	require.NoError(t, err)
	require.Equal(t, registry.Tetrahedron, id)
	_, err = e.Classify(4, 6, 5)
	require.ErrorIs(t, err, registry.ErrUnknownTopology)

	require.NoError(t, e.WriteVertex(registry.Tetrahedron, 3, 1, 2, 3))
	require.ErrorIs(t, e.WriteVertex(registry.Tetrahedron, 4, 1, 2, 3), registry.ErrIndexOutOfBounds)

	require.NoError(t, e.Begin())
	require.ErrorIs(t, e.Begin(), builder.ErrTransactionAlreadyActive)
	require.NoError(t, e.BuildSurface(4, 6, 4))
	coords := [][3]float64{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	for _, c := range coords {
		_, err = e.BuildVertice(c[0], c[1], c[2])
		require.NoError(t, err)
	}
	for _, ed := range [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 1}, {4, 2}} {
		_, err = e.BuildEdge(ed[0], ed[1])
		require.NoError(t, err)
	}
	for _, f := range [][3]int{{1, 2, 3}, {1, 3, 4}, {1, 4, 2}, {2, 3, 4}} {
		_, err = e.BuildFace3(f[0], f[1], f[2])
		require.NoError(t, err)
	}
	h, err := e.Commit()
	require.NoError(t, err)
	require.Equal(t, store.FirstHandle, h)
	require.Equal(t, builder.Idle, e.State())

	for i, c := range coords {
		v, err := e.Vertex(h, i+1)
		require.NoError(t, err)
		require.Equal(t, mesh.Vertex{X: c[0], Y: c[1], Z: c[2]}, v)
	}

	require.ErrorIs(t, e.Rollback(), builder.ErrNoActiveTransaction)
	require.NoError(t, e.Begin())
	_, err = e.BuildHalfEdge(1, 2, 0, 0)
	require.ErrorIs(t, err, builder.ErrTopologyNotDeclared)
	require.NoError(t, e.Rollback())
}

func TestEngine_SharedHandles(t *testing.T) {
	t.Parallel()

	e := newEngine(t)

	// Builder, registry and builder again draw from one handle sequence.
	h1, err := e.BuildSolid(registry.Octahedron)
	require.NoError(t, err)
	h2, err := e.BuildSolid(registry.Cube)
	require.NoError(t, err)
	h3, err := e.BuildSolid(registry.Icosahedron)
	require.NoError(t, err)

	require.Equal(t, []store.Handle{1, 2, 3}, []store.Handle{h1, h2, h3})
	require.Equal(t, []store.Handle{1, 2, 3}, e.Handles())

	cube, err := e.Surface(h2)
	require.NoError(t, err)
	require.Equal(t, mesh.OriginTemplate, cube.Origin())
	ico, err := e.Surface(h3)
	require.NoError(t, err)
	require.Equal(t, mesh.OriginBuilder, ico.Origin())
	require.True(t, ico.Oriented())
}

func TestBuildSolid_AllTemplates(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	for id := registry.TemplateID(0); id < registry.NumTemplates; id++ {
		h, err := e.BuildSolid(id)
		require.NoError(t, err, id.String())

		surf, err := e.Surface(h)
		require.NoError(t, err)
		entry, _ := registry.Lookup(id)
		require.Equal(t, entry.Counts, surf.Counts())
		require.Greater(t, surf.SignedVolume(), 0.0, "%s is outward", id)
	}
	require.Len(t, e.Handles(), int(registry.NumTemplates))
}

func TestBuildSolid_WithoutDerivation(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Builder.DeriveEdges = false
	cfg.Builder.DeriveHalfEdges = false
	e, err := ccgeom.New(cfg)
	require.NoError(t, err)

	for id := registry.TemplateID(0); id < registry.NumTemplates; id++ {
		h, err := e.BuildSolid(id)
		require.NoError(t, err, id.String())

		surf, err := e.Surface(h)
		require.NoError(t, err)
		entry, _ := registry.Lookup(id)
		_, ok := surf.Edge(entry.Counts.Edges)
		require.True(t, ok, id.String())
		_, ok = surf.Edge(entry.Counts.Edges + 1)
		require.False(t, ok, id.String())
		require.Equal(t, entry.Counts.HalfEdgeCapacity(), surf.NumHalfEdges(), id.String())
		require.True(t, surf.Oriented(), id.String())
	}
	require.Equal(t, builder.Idle, e.State())
}

func TestBuildSolid_KeepsTemplateBuffer(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	require.NoError(t, e.WriteVertex(registry.Cube, 0, 9, 9, 9))

	_, err := e.BuildSolid(registry.Cube)
	require.NoError(t, err)

	// The caller's partial buffer survives: promoting it still reports the
	// first unwritten slot, not a complete canonical cube.
	_, err = e.PromoteTemplate(registry.Cube)
	require.ErrorIs(t, err, mesh.ErrIncompleteSurface)
	require.ErrorContains(t, err, "slot 1 unwritten")
	require.Len(t, e.Handles(), 1)
}

func TestBuildSolid_RollsBackOnFailure(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Store.MaxSurfaces = 1
	e, err := ccgeom.New(cfg)
	require.NoError(t, err)

	_, err = e.BuildSolid(registry.Tetrahedron)
	require.NoError(t, err)

	// A rejected commit leaves no open transaction behind.
	_, err = e.BuildSolid(registry.Octahedron)
	require.ErrorIs(t, err, store.ErrStoreFull)
	require.Equal(t, builder.Idle, e.State())
	require.Equal(t, []store.Handle{1}, e.Handles())

	// A transaction held elsewhere is reported, not hijacked.
	require.NoError(t, e.Begin())
	_, err = e.BuildSolid(registry.Icosahedron)
	require.ErrorIs(t, err, builder.ErrTransactionAlreadyActive)
	require.Equal(t, builder.Active, e.State())
}

func TestNew_StoreLimit(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Store.MaxSurfaces = 1
	e, err := ccgeom.New(cfg)
	require.NoError(t, err)

	_, err = e.BuildSolid(registry.Tetrahedron)
	require.NoError(t, err)
	_, err = e.BuildSolid(registry.Dodecahedron)
	require.ErrorIs(t, err, store.ErrStoreFull)
}
