// SPDX-License-Identifier: MIT
// Package: ccgeom/mesh
//
// errors.go - sentinel errors shared by every producer of surfaces.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Producers (builder, registry) attach context with %w, never by
//     formatting parameters into the sentinel itself.

package mesh

import "errors"

var (
	// ErrInvalidCoordinate indicates a NaN or ±Inf vertex coordinate.
	ErrInvalidCoordinate = errors.New("mesh: coordinate is not finite")

	// ErrVertexOutOfRange indicates a vertex reference outside [1, n_vertices].
	ErrVertexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrHalfEdgeOutOfRange indicates a prev/next link outside the half-edge capacity.
	ErrHalfEdgeOutOfRange = errors.New("mesh: half-edge index out of range")

	// ErrDegenerateEdge indicates an edge or half-edge whose endpoints coincide.
	ErrDegenerateEdge = errors.New("mesh: degenerate edge")

	// ErrDegenerateFace indicates a face referencing the same vertex twice.
	ErrDegenerateFace = errors.New("mesh: degenerate face")

	// ErrIncompleteSurface indicates that the staged element counts differ
	// from the declared ones.
	ErrIncompleteSurface = errors.New("mesh: incomplete surface")

	// ErrInvalidTopology indicates declared counts that violate V - E + F = 2
	// (or are negative).
	ErrInvalidTopology = errors.New("mesh: invalid topology")

	// ErrInconsistentHalfEdgeLinks indicates broken next/prev cycles.
	ErrInconsistentHalfEdgeLinks = errors.New("mesh: inconsistent half-edge links")

	// ErrDanglingVertex indicates a vertex referenced by no edge and no face.
	ErrDanglingVertex = errors.New("mesh: dangling vertex")
)
