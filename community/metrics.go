// SPDX-License-Identifier: MIT

package community

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

var (
	tracer = otel.Tracer("lvcurrent.community")
	meter  = otel.Meter("lvcurrent.community")
)

var (
	partitionLatency metric.Float64Histogram
	edgesRemoved     metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		partitionLatency, err = meter.Float64Histogram(
			"lvcurrent_partition_duration_seconds",
			metric.WithDescription("Duration of divisive partition runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		edgesRemoved, err = meter.Int64Counter(
			"lvcurrent_partition_edges_removed_total",
			metric.WithDescription("Edges removed by divisive partitioning"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func recordPartitionMetrics(ctx context.Context, method string, duration time.Duration, removed int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.Bool("success", success),
	)
	partitionLatency.Record(ctx, duration.Seconds(), attrs)
	edgesRemoved.Add(ctx, int64(removed), attrs)
}

func startPartitionSpan(ctx context.Context, method string, nodes, edges, k int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "community."+method,
		trace.WithAttributes(
			attribute.Int("graph.node_count", nodes),
			attribute.Int("graph.edge_count", edges),
			attribute.Int("community.k", k),
		),
	)
}

func endPartitionSpan(span trace.Span, removed, communities int, err error) {
	span.SetAttributes(
		attribute.Int("community.edges_removed", removed),
		attribute.Int("community.count", communities),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
