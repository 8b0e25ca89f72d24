package main

import (
	"context"
	"errors"

	"finance-calculator/internal/calculator"
	"finance-calculator/internal/config"
	"finance-calculator/internal/observability"

	"go.uber.org/zap"
)

// initTelemetry starts the OTLP exporters the configuration asks for and
// creates the finance metric instruments. The returned shutdown flushes
// every started provider.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.OTelEnabled {
		traceShutdown, err := observability.InitTracing(ctx, cfg.ServiceName)
		if err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, traceShutdown)

		metricShutdown, err := observability.InitMetrics(ctx, cfg.ServiceName)
		if err != nil {
			return nil, errors.Join(err, shutdown(ctx))
		}
		shutdowns = append(shutdowns, metricShutdown)
	} else {
		observability.Logger.Info("OTLP export disabled")
	}

	if cfg.OTelLogsEnabled {
		logShutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
		if err != nil {
			return nil, errors.Join(err, shutdown(ctx))
		}
		shutdowns = append(shutdowns, logShutdown)
	}

	// Instruments bind to whichever meter provider is global by now.
	if err := calculator.InitMetrics(); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	observability.Logger.Debug("telemetry initialised",
		zap.Bool("otel", cfg.OTelEnabled),
		zap.Bool("otel_logs", cfg.OTelLogsEnabled),
	)
	return shutdown, nil
}
