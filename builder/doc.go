// Package builder provides the transactional half-edge mesh builder: a
// Manager that owns one private staging surface at a time, accepts vertices,
// edges, half-edges and triangular faces through Build* calls, and on Commit
// validates the whole surface and promotes it, immutable, into a Sink
// (normally a *store.Store).
//
// The package offers the following key components:
//
//   - Transaction control:
//     – Manager.Begin:     Idle → Active with a fresh staging surface.
//     – Manager.Commit:    validate, promote, return the store handle.
//     – Manager.Rollback:  discard staging, back to Idle.
//   - Staging mutators (1-based indices, restarting every transaction):
//     – BuildSurface:      declare n_vertices, n_edges, n_faces once.
//     – BuildVertice:      append a finite coordinate triple.
//     – BuildEdge:         append an undirected edge.
//     – BuildHalfEdge:     append a half-edge; prev/next may be forward refs.
//     – BuildFace3:        append a triangle.
//   - Configuration via functional options:
//     – WithLogger, WithMeterProvider, WithTracerProvider, WithEdgeDerivation,
//     WithHalfEdgeDerivation, WithIDSource, WithClock.
//
// Guarantees:
//
//   - At most one transaction is Active per Manager; a second Begin fails
//     with ErrTransactionAlreadyActive instead of blocking.
//   - No partial commit: a failed Commit behaves like Rollback and leaves
//     the sink untouched.
//   - A rejected Build* call changes nothing and keeps the transaction open.
//   - Errors wrap sentinels from this package or from package mesh and are
//     matched with errors.Is.
//
// Commit validation runs mesh.Validate with three-sided half-edge cycles,
// after deriving missing edges and half-edges from the faces (see commit.go).
package builder
