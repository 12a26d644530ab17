// SPDX-License-Identifier: MIT
// Package: ccgeom/registry
//
// errors.go - sentinel errors for the template registry.
//
// Callers branch with errors.Is; context is attached with %w and the
// method tag (MethodClassify, MethodWriteVertex, ...).

package registry

import "errors"

// ErrUnknownTopology indicates a (V,E,F) triple, or a template id, that
// matches no catalog entry.
var ErrUnknownTopology = errors.New("registry: unknown topology")

// ErrIndexOutOfBounds indicates a vertex slot outside [0, V(id)).
var ErrIndexOutOfBounds = errors.New("registry: index out of bounds")

// Method tags used as error prefixes.
const (
	MethodClassify    = "Classify"
	MethodWriteVertex = "WriteVertex"
	MethodVertex      = "Vertex"
	MethodPromote     = "Promote"
	MethodLookup      = "Lookup"
)
