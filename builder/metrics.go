// SPDX-License-Identifier: MIT
// Package: ccgeom/builder
//
// metrics.go - OpenTelemetry instruments for transaction outcomes.

package builder

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// instruments bundles the meters of one Manager. Instruments that fail to
// register fall back to no-op ones so recording never fails.
type instruments struct {
	transactions  metric.Int64Counter
	commitLatency metric.Float64Histogram
	elements      metric.Int64Histogram
}

func newInstruments(mp metric.MeterProvider) instruments {
	meter := mp.Meter(instrumentationName)
	fallback := noop.NewMeterProvider().Meter(instrumentationName)

	var ins instruments
	var err error

	ins.transactions, err = meter.Int64Counter(
		"ccgeom_transactions_total",
		metric.WithDescription("Transactions by outcome"),
	)
	if err != nil {
		ins.transactions, _ = fallback.Int64Counter("ccgeom_transactions_total")
	}

	ins.commitLatency, err = meter.Float64Histogram(
		"ccgeom_commit_duration_seconds",
		metric.WithDescription("Duration of commit validation and promotion"),
		metric.WithUnit("s"),
	)
	if err != nil {
		ins.commitLatency, _ = fallback.Float64Histogram("ccgeom_commit_duration_seconds")
	}

	ins.elements, err = meter.Int64Histogram(
		"ccgeom_surface_elements",
		metric.WithDescription("Elements per committed surface"),
	)
	if err != nil {
		ins.elements, _ = fallback.Int64Histogram("ccgeom_surface_elements")
	}

	return ins
}

// recordOutcome counts one transaction outcome.
func (ins instruments) recordOutcome(ctx context.Context, outcome string) {
	ins.transactions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// recordCommit records latency for every commit attempt and element counts
// for successful ones.
func (ins instruments) recordCommit(ctx context.Context, d time.Duration, success bool, sizes map[string]int) {
	ins.commitLatency.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.Bool("success", success)))
	if !success {
		return
	}
	for kind, n := range sizes {
		ins.elements.Record(ctx, int64(n), metric.WithAttributes(attribute.String("kind", kind)))
	}
}
