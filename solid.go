// SPDX-License-Identifier: MIT
// Package: ccgeom
//
// solid.go - canonical Platonic solids materialized through the engine.
//
// Staging is explicit: edges and half-edges are appended alongside vertices
// and faces, so the result does not depend on the builder derivation
// settings.

package ccgeom

import (
	"errors"
	"fmt"

	"github.com/ccgeom/ccgeom/mesh"
	"github.com/ccgeom/ccgeom/registry"
	"github.com/ccgeom/ccgeom/store"
)

// BuildSolid stores the canonical solid id and returns its handle.
// Triangulated solids (tetrahedron, octahedron, icosahedron) run one builder
// transaction; a failure inside it rolls the transaction back. The others
// are promoted from their canonical coordinates without touching the
// template buffer that WriteVertex fills.
func (e *Engine) BuildSolid(id registry.TemplateID) (store.Handle, error) {
	entry, err := registry.Lookup(id)
	if err != nil {
		return 0, err
	}
	faces, _ := registry.Faces(id)
	if faces[0].Sides() != mesh.TriangleSides {
		return e.registry.PromoteCanonical(id, e.store)
	}
	coords, _ := registry.Canonical(id)

	if err = e.Begin(); err != nil {
		return 0, err
	}
	if err = e.stageSolid(entry.Counts, coords, faces); err != nil {
		return 0, errors.Join(fmt.Errorf("%s: %w", entry.Name, err), e.Rollback())
	}

	return e.Commit()
}

func (e *Engine) stageSolid(c mesh.Counts, coords []mesh.Vertex, faces []mesh.Face) error {
	if err := e.BuildSurface(c.Vertices, c.Edges, c.Faces); err != nil {
		return err
	}
	for _, v := range coords {
		if _, err := e.BuildVertice(v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, ed := range mesh.DeriveEdges(faces) {
		if _, err := e.BuildEdge(ed.Source, ed.Target); err != nil {
			return err
		}
	}
	for _, h := range mesh.DeriveHalfEdges(faces) {
		if _, err := e.BuildHalfEdge(h.Source, h.Target, h.Prev, h.Next); err != nil {
			return err
		}
	}
	for _, f := range faces {
		if _, err := e.BuildFace3(f.Vertices[0], f.Vertices[1], f.Vertices[2]); err != nil {
			return err
		}
	}

	return nil
}
