// Package registry holds the closed catalog of the five Platonic solids and
// one fixed-length coordinate buffer per catalog entry.
//
//	id  name          V   E   F
//	0   Tetrahedron   4   6   4
//	1   Cube          8  12   6
//	2   Octahedron    6  12   8
//	3   Dodecahedron 20  30  12
//	4   Icosahedron  12  30  20
//
// Classify maps a (V,E,F) triple to its id and nothing else: Euler-valid
// triples outside the table are ErrUnknownTopology. WriteVertex is a
// bounds-checked store into a template buffer (0-based slots). Promote turns
// a fully written buffer into an immutable mesh.Surface using the catalog's
// outward face winding and hands it to a store. PromoteCanonical does the
// same from the reference coordinates and leaves the buffer alone.
package registry
