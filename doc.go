// Package ccgeom is an in-memory engine for closed polyhedral surfaces: a
// fixed catalog of Platonic templates with bounded coordinate buffers, and a
// transactional half-edge builder that validates whole surfaces before
// handing them to a shared store of immutable, handle-addressed results.
//
// What is in the box?
//
//	• Template registry: classify (V,E,F) triples, write template vertices,
//	  promote a filled template into the store
//	• Mesh builder: begin / build_* / commit / rollback over one private
//	  staging surface at a time
//	• Validation: counts, Euler V-E+F=2, half-edge cycle closure, degrees
//	• Surface store: monotonic handles from 1, concurrent readers
//
// Under the hood, everything is organized in subpackages:
//
//	mesh/      - elements, draft, validation pipeline, immutable Surface
//	registry/  - Platonic catalog and per-template coordinate buffers
//	builder/   - transaction manager and Build* mutators, slog + otel metrics
//	store/     - handle table of finalized surfaces
//	config/    - YAML configuration and logger construction
//	cmd/ccgeom - command-line front end
//
// The Engine type in this package wires the pieces together and exposes the
// flat function table (Classify, WriteVertex, Begin, Commit, ...). Default
// returns the process-wide engine, which owns the one transaction manager
// of the process.
//
// Quick ASCII example:
//
//	        1
//	       /|\
//	      / | \
//	     2--+--3      4 vertices, 6 edges, 4 faces
//	      \ | /       V - E + F = 2
//	       \|/
//	        4
//
//	go get github.com/ccgeom/ccgeom
package ccgeom
