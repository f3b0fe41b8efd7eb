package builder

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for build operations.
var (
	tracer = otel.Tracer("conelab.builder")
	meter  = otel.Meter("conelab.builder")
)

var (
	buildLatency metric.Float64Histogram
	buildTotal   metric.Int64Counter
	nodesCreated metric.Int64Histogram
	edgesCreated metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"conelab_graph_build_duration_seconds",
			metric.WithDescription("Duration of graph builds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		buildTotal, err = meter.Int64Counter(
			"conelab_graph_builds_total",
			metric.WithDescription("Total number of graph builds"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		nodesCreated, err = meter.Int64Histogram(
			"conelab_graph_nodes_created",
			metric.WithDescription("Number of nodes created per build"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		edgesCreated, err = meter.Int64Histogram(
			"conelab_graph_edges_created",
			metric.WithDescription("Number of edges created per build"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// recordBuild records one finished build. nodes and edges are ignored when
// success is false.
func recordBuild(ctx context.Context, d time.Duration, nodes, edges int, success bool) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	buildLatency.Record(ctx, d.Seconds(), attrs)
	buildTotal.Add(ctx, 1, attrs)
	if success {
		nodesCreated.Record(ctx, int64(nodes))
		edgesCreated.Record(ctx, int64(edges))
	}
}
