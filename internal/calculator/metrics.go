package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	calcCounter   metric.Int64Counter
	calcHistogram metric.Float64Histogram
	errorCounter  metric.Int64Counter
	cacheCounter  metric.Int64Counter
)

// InitMetrics registers custom OTel metric instruments for the finance domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("finance")

	var err error

	calcCounter, err = meter.Int64Counter("finance.calculations.total",
		metric.WithDescription("Total number of financial calculations served"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("finance.calculation.duration",
		metric.WithDescription("Duration of the calculation kernel in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("finance.errors.total",
		metric.WithDescription("Total number of rejected calculation requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	cacheCounter, err = meter.Int64Counter("finance.cache.lookups.total",
		metric.WithDescription("Response cache lookups by outcome"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return fmt.Errorf("creating cache counter: %w", err)
	}

	return nil
}
