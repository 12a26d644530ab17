// Package builder defines shared constants used by the transaction manager,
// keeping error prefixes, log messages and metric names consistent.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBegin is the canonical name for Manager.Begin.
	MethodBegin = "Begin"
	// MethodCommit is the canonical name for Manager.Commit.
	MethodCommit = "Commit"
	// MethodRollback is the canonical name for Manager.Rollback.
	MethodRollback = "Rollback"
	// MethodBuildSurface is the canonical name for Manager.BuildSurface.
	MethodBuildSurface = "BuildSurface"
	// MethodBuildVertice is the canonical name for Manager.BuildVertice.
	MethodBuildVertice = "BuildVertice"
	// MethodBuildEdge is the canonical name for Manager.BuildEdge.
	MethodBuildEdge = "BuildEdge"
	// MethodBuildHalfEdge is the canonical name for Manager.BuildHalfEdge.
	MethodBuildHalfEdge = "BuildHalfEdge"
	// MethodBuildFace3 is the canonical name for Manager.BuildFace3.
	MethodBuildFace3 = "BuildFace3"
)

//-----------------------------------------------------------------------------
// Staging
//-----------------------------------------------------------------------------

// maxPrealloc bounds the slice capacity reserved by BuildSurface; declared
// counts beyond it grow through append.
const maxPrealloc = 1024

//-----------------------------------------------------------------------------
// Telemetry
//-----------------------------------------------------------------------------

// instrumentationName scopes the meter.
const instrumentationName = "github.com/ccgeom/ccgeom/builder"

// Transaction outcomes recorded on the transactions counter.
const (
	outcomeCommitted  = "committed"
	outcomeRolledBack = "rolled_back"
	outcomeFailed     = "failed"
	outcomeBusy       = "busy"
)

// Element kinds recorded on the elements histogram.
const (
	kindVertices  = "vertices"
	kindEdges     = "edges"
	kindHalfEdges = "half_edges"
	kindFaces     = "faces"
)
