// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for centrality computations.
var (
	tracer = otel.Tracer("lvcurrent.centrality")
	meter  = otel.Meter("lvcurrent.centrality")
)

var (
	callLatency metric.Float64Histogram
	callTotal   metric.Int64Counter
	solveTotal  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		callLatency, err = meter.Float64Histogram(
			"lvcurrent_centrality_duration_seconds",
			metric.WithDescription("Duration of centrality computations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		callTotal, err = meter.Int64Counter(
			"lvcurrent_centrality_total",
			metric.WithDescription("Total number of centrality computations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveTotal, err = meter.Int64Counter(
			"lvcurrent_centrality_solves_total",
			metric.WithDescription("Linear solves and inverse rows consumed"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// recordCallMetrics records one finished computation.
func recordCallMetrics(ctx context.Context, algorithm string, kind string, duration time.Duration, solves int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.Bool("success", success),
	)
	callLatency.Record(ctx, duration.Seconds(), attrs)
	callTotal.Add(ctx, 1, attrs)
	if solves > 0 {
		solveTotal.Add(ctx, int64(solves), metric.WithAttributes(
			attribute.String("algorithm", algorithm),
			attribute.String("solver", kind),
		))
	}
}

// startCallSpan opens the span of a top-level call.
func startCallSpan(ctx context.Context, name string, nodes, edges int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "centrality."+name,
		trace.WithAttributes(
			attribute.Int("graph.node_count", nodes),
			attribute.Int("graph.edge_count", edges),
		),
	)
}

// endCallSpan sets result attributes and ends span.
func endCallSpan(span trace.Span, kind string, solves int, err error) {
	span.SetAttributes(
		attribute.String("centrality.solver", kind),
		attribute.Int("centrality.solves", solves),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
