package matrix

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("conelab.matrix")

// Cache instruments. Every counter carries a "map" attribute: "power" or
// "reach".
var (
	cacheHits      metric.Int64Counter
	cacheMisses    metric.Int64Counter
	cacheEvictions metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		cacheHits, err = meter.Int64Counter(
			"conelab_matrix_cache_hits_total",
			metric.WithDescription("Matrix cache lookups served from cache"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cacheMisses, err = meter.Int64Counter(
			"conelab_matrix_cache_misses_total",
			metric.WithDescription("Matrix cache lookups that had to compute"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cacheEvictions, err = meter.Int64Counter(
			"conelab_matrix_cache_evictions_total",
			metric.WithDescription("Matrix cache entries evicted by LRU policy"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func recordLookup(ctx context.Context, kind string, hit bool) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("map", kind))
	if hit {
		cacheHits.Add(ctx, 1, attrs)
		return
	}
	cacheMisses.Add(ctx, 1, attrs)
}

func recordEviction(ctx context.Context, kind string) {
	if initMetrics() != nil {
		return
	}
	cacheEvictions.Add(ctx, 1, metric.WithAttributes(attribute.String("map", kind)))
}
