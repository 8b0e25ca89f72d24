package observability

import (
	"context"
	"net/http"

	"finance-calculator/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordError centralises error handling across all domains: records the error
// on the span, increments the provided error counter, logs with trace context,
// and writes a JSON error HTTP response. Client errors (4xx) are logged at warn
// level, everything else at error level.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName string, status int, resp handlers.ErrorResponse, err error, w http.ResponseWriter) {
	span.RecordError(err)
	span.SetStatus(codes.Error, resp.Message)
	span.SetAttributes(attribute.String("error.code", resp.Error))

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("code", resp.Error),
	))

	fields := []zap.Field{
		zap.String("operation", opName),
		zap.String("code", resp.Error),
		zap.Int("status", status),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	}
	if resp.Field != "" {
		fields = append(fields, zap.String("field", resp.Field))
	}

	if status >= http.StatusInternalServerError {
		logger.Error(resp.Message, fields...)
	} else {
		logger.Warn(resp.Message, fields...)
	}

	handlers.WriteError(w, status, resp)
}
