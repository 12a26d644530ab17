// Package mesh defines the data model shared by the template registry and
// the transactional builder: vertices, undirected edges, half-edges, faces,
// the mutable Draft they are staged in and the immutable Surface they are
// sealed into.
//
// It also owns the validation rules every finalized surface must satisfy:
//
//   - element counts equal the declared (V, E, F) triple;
//   - V - E + F = 2 (closed, genus 0);
//   - half-edges decompose into simple next/prev cycles;
//   - no dangling vertex.
//
// All references are 1-based; 0 is reserved (see Unlinked).
//
//	  1───2
//	  │ ╲ │     face (1,2,3) → half-edges 1→2, 2→3, 3→1
//	  4───3     next(1→2) = 2→3, prev(1→2) = 3→1
package mesh
