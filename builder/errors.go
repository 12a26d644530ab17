// SPDX-License-Identifier: MIT
// Package: ccgeom/builder
//
// errors.go - sentinel errors for the transaction manager and mesh builder.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics; element
//     validation errors come from package mesh (mesh.ErrVertexOutOfRange, ...).
//   • Sentinels are never formatted at definition site; context is attached
//     with builderErrorf, which keeps the sentinel reachable through %w.
//
// Priority when several checks could fail for one call:
//   • ErrNoActiveTransaction   - state first.
//   • ErrTopologyNotDeclared   - then declaration.
//   • ErrCapacityExceeded      - then capacity.
//   • mesh.Err*                - then argument validity.

package builder

import (
	"errors"
	"fmt"
)

// ErrTransactionAlreadyActive indicates Begin while a transaction is Active.
// The caller is expected to retry after the holder commits or rolls back.
var ErrTransactionAlreadyActive = errors.New("builder: transaction already active")

// ErrNoActiveTransaction indicates a staging operation, Commit or Rollback
// while Idle.
var ErrNoActiveTransaction = errors.New("builder: no active transaction")

// ErrTopologyNotDeclared indicates an element append (or Commit) before
// BuildSurface.
var ErrTopologyNotDeclared = errors.New("builder: topology not declared")

// ErrTopologyAlreadyDeclared indicates a second BuildSurface in one transaction.
var ErrTopologyAlreadyDeclared = errors.New("builder: topology already declared")

// ErrCapacityExceeded indicates an append past the declared capacity.
var ErrCapacityExceeded = errors.New("builder: capacity exceeded")

// builderErrorf prefixes err with the method tag and an optional formatted
// detail, keeping err matchable with errors.Is.
//
// Result shapes:
//
//	"<Method>: <err>"
//	"<Method>: <detail>: <err>"
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
