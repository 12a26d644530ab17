// SPDX-License-Identifier: MIT
// Package: ccgeom
//
// engine.go - the flat function table over registry, builder and store.
//
// Wiring:
//
//	Registry ──Promote──┐
//	                    ├──▶ Store (shared, monotonic handles)
//	Manager ──Commit────┘

package ccgeom

import (
	"sync"

	"github.com/ccgeom/ccgeom/builder"
	"github.com/ccgeom/ccgeom/config"
	"github.com/ccgeom/ccgeom/mesh"
	"github.com/ccgeom/ccgeom/registry"
	"github.com/ccgeom/ccgeom/store"
)

// Engine owns one template registry, one transaction manager and the store
// both of them promote into. All methods are safe for concurrent use.
type Engine struct {
	registry *registry.Registry
	store    *store.Store
	manager  *builder.Manager
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the process-wide engine built from config.Default(). Its
// manager is the one transaction of the process.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = newEngine(config.Default())
	})

	return defaultEngine
}

// New validates cfg and returns a fresh engine. opts are applied to the
// transaction manager after the options derived from cfg, so they win.
func New(cfg config.Config, opts ...builder.Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return newEngine(cfg, opts...), nil
}

func newEngine(cfg config.Config, opts ...builder.Option) *Engine {
	s := store.New(store.WithLimit(cfg.Store.MaxSurfaces))
	all := append([]builder.Option{
		builder.WithEdgeDerivation(cfg.Builder.DeriveEdges),
		builder.WithHalfEdgeDerivation(cfg.Builder.DeriveHalfEdges),
	}, opts...)

	return &Engine{
		registry: registry.New(),
		store:    s,
		manager:  builder.NewManager(s, all...),
	}
}

// Classify returns the catalog id of (V,E,F) or registry.ErrUnknownTopology.
func (e *Engine) Classify(nVertices, nEdges, nFaces int) (registry.TemplateID, error) {
	return registry.Classify(nVertices, nEdges, nFaces)
}

// WriteVertex stores a coordinate in slot index (0-based) of template id.
func (e *Engine) WriteVertex(id registry.TemplateID, index int, x, y, z float64) error {
	return e.registry.WriteVertex(id, index, x, y, z)
}

// PromoteTemplate finalizes a fully written template into the store.
func (e *Engine) PromoteTemplate(id registry.TemplateID) (store.Handle, error) {
	return e.registry.Promote(id, e.store)
}

// Begin opens the engine's transaction.
func (e *Engine) Begin() error { return e.manager.Begin() }

// Commit validates and stores the staging surface.
func (e *Engine) Commit() (store.Handle, error) { return e.manager.Commit() }

// Rollback discards the staging surface.
func (e *Engine) Rollback() error { return e.manager.Rollback() }

// BuildSurface declares the staging capacities.
func (e *Engine) BuildSurface(nVertices, nEdges, nFaces int) error {
	return e.manager.BuildSurface(nVertices, nEdges, nFaces)
}

// BuildVertice appends a vertex and returns its 1-based index.
func (e *Engine) BuildVertice(x, y, z float64) (int, error) {
	return e.manager.BuildVertice(x, y, z)
}

// BuildEdge appends an edge and returns its 1-based index.
func (e *Engine) BuildEdge(source, target int) (int, error) {
	return e.manager.BuildEdge(source, target)
}

// BuildHalfEdge appends a half-edge and returns its 1-based index.
func (e *Engine) BuildHalfEdge(source, target, prev, next int) (int, error) {
	return e.manager.BuildHalfEdge(source, target, prev, next)
}

// BuildFace3 appends a triangle and returns its 1-based index.
func (e *Engine) BuildFace3(v1, v2, v3 int) (int, error) {
	return e.manager.BuildFace3(v1, v2, v3)
}

// Surface returns the finalized surface under h.
func (e *Engine) Surface(h store.Handle) (*mesh.Surface, error) {
	return e.store.Get(h)
}

// Vertex reads back vertex i (1-based) of the surface under h.
func (e *Engine) Vertex(h store.Handle, i int) (mesh.Vertex, error) {
	return e.store.Vertex(h, i)
}

// Handles lists every assigned handle in ascending order.
func (e *Engine) Handles() []store.Handle {
	return e.store.Handles()
}

// State reports whether the engine's transaction is open.
func (e *Engine) State() builder.State {
	return e.manager.State()
}
