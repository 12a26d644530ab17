// SPDX-License-Identifier: MIT
// Package: ccgeom/builder
//
// commit.go - completion of the staging surface before validation.
//
// Derivation policy:
//   • Edges: when none were appended and derivation is enabled, the unique
//     undirected edges of the faces stand in for them. The derived count is
//     then held to n_edges like an explicit one.
//   • Half-edges: when none were appended and derivation is enabled, each
//     face contributes one 3-cycle in its winding order.
//   • Explicit elements are never merged with derived ones.

package builder

import (
	"fmt"

	"github.com/ccgeom/ccgeom/mesh"
)

// finalize completes st per cfg and runs the mesh validation pipeline.
// The returned draft belongs to the caller; st must not be reused.
func (st *staging) finalize(cfg builderConfig) (*mesh.Draft, error) {
	if !st.declared {
		return nil, ErrTopologyNotDeclared
	}

	d := &st.draft
	derived := false
	if len(d.Edges) == 0 && len(d.Faces) > 0 && cfg.deriveEdges {
		d.Edges = mesh.DeriveEdges(d.Faces)
		derived = true
	}
	if len(d.HalfEdges) == 0 && len(d.Faces) > 0 && cfg.deriveHalfEdges {
		d.HalfEdges = mesh.DeriveHalfEdges(d.Faces)
	}

	if err := mesh.Validate(d); err != nil {
		if derived && len(d.Vertices) == d.Declared.Vertices && len(d.Edges) != d.Declared.Edges {
			return nil, fmt.Errorf("edges derived from %d faces: %w", len(d.Faces), err)
		}
		return nil, err
	}

	return d, nil
}
