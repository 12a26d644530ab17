// SPDX-License-Identifier: MIT
// Package: ccgeom/builder
//
// options.go - functional options for Manager.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on nil inputs; the manager
//     itself never panics.

package builder

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option customizes a Manager before its first transaction.
type Option func(*builderConfig)

// WithLogger sets the structured logger for transaction events.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// WithMeterProvider sets the OpenTelemetry meter provider used for
// transaction metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	if mp == nil {
		panic("builder: WithMeterProvider(nil)")
	}
	return func(c *builderConfig) { c.meterProvider = mp }
}

// WithTracerProvider sets the OpenTelemetry tracer provider; Commit opens
// one span per call.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("builder: WithTracerProvider(nil)")
	}
	return func(c *builderConfig) { c.tracerProvider = tp }
}

// WithEdgeDerivation controls whether Commit derives the undirected edge set
// from the faces when no edge was appended explicitly.
func WithEdgeDerivation(enabled bool) Option {
	return func(c *builderConfig) { c.deriveEdges = enabled }
}

// WithHalfEdgeDerivation controls whether Commit derives one half-edge cycle
// per face when no half-edge was appended explicitly.
func WithHalfEdgeDerivation(enabled bool) Option {
	return func(c *builderConfig) { c.deriveHalfEdges = enabled }
}

// WithIDSource overrides the transaction id generator.
func WithIDSource(fn func() uuid.UUID) Option {
	if fn == nil {
		panic("builder: WithIDSource(nil)")
	}
	return func(c *builderConfig) { c.newID = fn }
}

// WithClock overrides the time source used for commit latency.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("builder: WithClock(nil)")
	}
	return func(c *builderConfig) { c.now = now }
}
