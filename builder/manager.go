// SPDX-License-Identifier: MIT
// Package: ccgeom/builder
//
// manager.go - the transaction state machine.
//
//	Idle ──Begin──▶ Active ──Commit (ok or failed)──▶ Idle
//	                  └─────Rollback───────────────▶ Idle
//
// Concurrency:
//   • mu serialises every transition and every staging mutation; at most one
//     transaction is Active per Manager.
//   • Begin never blocks waiting for the holder: a concurrent caller gets
//     ErrTransactionAlreadyActive and retries.
//   • Finalized surfaces leave the manager through Sink.Put only.

package builder

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ccgeom/ccgeom/mesh"
	"github.com/ccgeom/ccgeom/store"
)

// State is the transaction state of a Manager.
type State int

const (
	// Idle means no transaction is open.
	Idle State = iota
	// Active means a staging surface is open for mutation.
	Active
)

// String returns "idle" or "active".
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Sink receives committed surfaces; *store.Store implements it.
type Sink interface {
	Put(*mesh.Surface) (store.Handle, error)
}

// Manager coordinates a single staging surface at a time.
type Manager struct {
	mu    sync.Mutex
	state State
	stage *staging

	sink   Sink
	cfg    builderConfig
	ins    instruments
	tracer trace.Tracer
}

// NewManager returns an Idle manager promoting into sink.
// Complexity: O(len(opts)).
func NewManager(sink Sink, opts ...Option) *Manager {
	cfg := newBuilderConfig(opts...)

	return &Manager{
		state:  Idle,
		sink:   sink,
		cfg:    cfg,
		ins:    newInstruments(cfg.meterProvider),
		tracer: cfg.tracerProvider.Tracer(instrumentationName),
	}
}

// State reports the current transaction state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Begin opens a transaction with a fresh, empty staging surface.
//
// Errors:
//   - ErrTransactionAlreadyActive: a transaction is already open.
func (m *Manager) Begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Active {
		m.ins.recordOutcome(context.Background(), outcomeBusy)
		m.cfg.logger.Debug("transaction busy", slog.String("tx", m.stage.id.String()))
		return builderErrorf(MethodBegin, ErrTransactionAlreadyActive, "tx %s", m.stage.id)
	}

	m.stage = newStaging(m.cfg.newID())
	m.state = Active
	m.cfg.logger.Debug("transaction begun", slog.String("tx", m.stage.id.String()))

	return nil
}

// Rollback discards the staging surface unconditionally.
//
// Errors:
//   - ErrNoActiveTransaction: nothing to discard.
func (m *Manager) Rollback() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Active {
		return builderErrorf(MethodRollback, ErrNoActiveTransaction, "")
	}

	st := m.stage
	m.discard()
	m.ins.recordOutcome(context.Background(), outcomeRolledBack)
	m.cfg.logger.Debug("transaction rolled back",
		slog.String("tx", st.id.String()),
		slog.Int("vertices", len(st.draft.Vertices)),
		slog.Int("faces", len(st.draft.Faces)),
	)

	return nil
}

// Commit validates the staging surface and, on success, promotes it into
// the sink and returns its handle. Whatever the outcome, the manager is
// Idle afterwards and the staging surface is gone; a failed commit leaves
// the sink untouched.
//
// Errors:
//   - ErrNoActiveTransaction, ErrTopologyNotDeclared.
//   - mesh.ErrIncompleteSurface, mesh.ErrInvalidTopology,
//     mesh.ErrInconsistentHalfEdgeLinks, mesh.ErrDanglingVertex.
//   - any error returned by the sink (e.g. store.ErrStoreFull).
func (m *Manager) Commit() (store.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Active {
		return 0, builderErrorf(MethodCommit, ErrNoActiveTransaction, "")
	}

	st := m.stage
	m.discard() // from here on every exit path is Idle

	ctx, span := m.tracer.Start(context.Background(), "builder.Commit",
		trace.WithAttributes(attribute.String("tx", st.id.String())))
	defer span.End()
	start := m.cfg.now()

	d, err := st.finalize(m.cfg)
	if err == nil {
		var h store.Handle
		if h, err = m.sink.Put(mesh.Seal(d, mesh.OriginBuilder, st.id.String())); err == nil {
			m.ins.recordCommit(ctx, m.cfg.now().Sub(start), true, map[string]int{
				kindVertices:  len(d.Vertices),
				kindEdges:     len(d.Edges),
				kindHalfEdges: len(d.HalfEdges),
				kindFaces:     len(d.Faces),
			})
			m.ins.recordOutcome(ctx, outcomeCommitted)
			span.SetAttributes(attribute.Int("handle", int(h)))
			m.cfg.logger.Info("transaction committed",
				slog.String("tx", st.id.String()),
				slog.Int("handle", int(h)),
				slog.String("counts", d.Declared.String()),
			)

			return h, nil
		}
	}

	m.ins.recordCommit(ctx, m.cfg.now().Sub(start), false, nil)
	m.ins.recordOutcome(ctx, outcomeFailed)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	m.cfg.logger.Warn("commit rejected",
		slog.String("tx", st.id.String()),
		slog.String("error", err.Error()),
	)

	return 0, builderErrorf(MethodCommit, err, "tx %s", st.id)
}

// discard drops the staging surface and returns to Idle. Caller holds mu.
func (m *Manager) discard() {
	m.stage = nil
	m.state = Idle
}
