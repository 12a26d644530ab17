// SPDX-License-Identifier: MIT
// Package: ccgeom/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all manager knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • logger          = slog.Default()
//   • meterProvider   = otel.GetMeterProvider()
//   • tracerProvider  = otel.GetTracerProvider()
//   • deriveEdges     = true   (faces alone may satisfy n_edges)
//   • deriveHalfEdges = true   (faces alone may satisfy the half-edge set)
//   • newID           = uuid.New
//   • now             = time.Now

package builder

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// builderConfig aggregates all knobs used by Manager.
// It is held by VALUE inside the manager (immutable after NewManager).
type builderConfig struct {
	logger         *slog.Logger
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider

	// Commit-time derivation policy; see commit.go.
	deriveEdges     bool
	deriveHalfEdges bool

	// Injection points for deterministic tests.
	newID func() uuid.UUID
	now   func() time.Time
}

// newBuilderConfig constructs a config with defaults and applies all options.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		logger:          slog.Default(),
		meterProvider:   otel.GetMeterProvider(),
		tracerProvider:  otel.GetTracerProvider(),
		deriveEdges:     true,
		deriveHalfEdges: true,
		newID:           uuid.New,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
