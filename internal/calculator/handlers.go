package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"finance-calculator/internal/cache"
	"finance-calculator/internal/finance"
	"finance-calculator/internal/handlers"
	"finance-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the finance domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("finance")

const (
	opSimpleInterest   = "simple-interest"
	opCompoundInterest = "compound-interest"
	opLoanPayment      = "loan-payment"
	opSavings          = "savings-future-value"
	opRentSplit        = "rent-split"
)

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// SimpleInterest handles POST /api/calc/simple-interest
func SimpleInterest(store cache.Store) http.HandlerFunc {
	return calculation[SimpleInterestRequest](opSimpleInterest, store, finance.ValidateSimpleInterest, finance.SimpleInterest)
}

// CompoundInterest handles POST /api/calc/compound-interest
func CompoundInterest(store cache.Store) http.HandlerFunc {
	return calculation[CompoundInterestRequest](opCompoundInterest, store, finance.ValidateCompoundInterest, finance.CompoundInterest)
}

// LoanPayment handles POST /api/calc/loan-payment
func LoanPayment(store cache.Store) http.HandlerFunc {
	return calculation[LoanPaymentRequest](opLoanPayment, store, finance.ValidateLoanPayment, finance.LoanPayment)
}

// SavingsFutureValue handles POST /api/calc/savings-future-value
func SavingsFutureValue(store cache.Store) http.HandlerFunc {
	return calculation[SavingsRequest](opSavings, store, finance.ValidateSavings, finance.SavingsFutureValue)
}

// RentSplit handles POST /api/calc/rent-split
func RentSplit(store cache.Store) http.HandlerFunc {
	return calculation[RentSplitRequest](opRentSplit, store, finance.ValidateRentSplit, finance.RentSplit)
}

// validated is a kernel input that passed validation.
type validated[P any] interface {
	Params() P
}

// paramsSource is a decoded request body that can produce kernel parameters.
type paramsSource[P any] interface {
	params() (P, error)
}

// outcome is a kernel result.
type outcome[R any] interface {
	Finite() bool
	Rounded() R
}

// errBody marks a request body that could not be decoded.
type errBody struct{ err error }

func (e errBody) Error() string { return e.err.Error() }
func (e errBody) Unwrap() error { return e.err }

// calculation is the shared implementation of every finance endpoint:
// decode → presence checks → validation → (cache) → kernel → rounding → JSON.
// Store may be nil, in which case every request is computed.
func calculation[Req paramsSource[P], P any, V validated[P], R outcome[R]](
	opName string,
	store cache.Store,
	validate func(P) (V, error),
	compute func(V) R,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := observability.LoggerWithTrace(ctx)
		requestID := observability.RequestIDFromContext(ctx)

		// --- 1. Custom child span ---
		ctx, span := tracer.Start(ctx, fmt.Sprintf("finance.%s", opName),
			trace.WithAttributes(
				attribute.String("finance.operation", opName),
				attribute.String("request.id", requestID),
			),
		)
		defer span.End()

		fail := func(err error) {
			status, resp := errorResponse(err)
			observability.RecordError(ctx, span, logger, errorCounter, opName, status, resp, err, w)
		}

		// --- 2. Decode and validate ---
		var req Req
		if err := decodeBody(r.Body, &req); err != nil {
			fail(errBody{err})
			return
		}

		params, err := req.params()
		if err != nil {
			fail(err)
			return
		}

		valid, err := validate(params)
		if err != nil {
			fail(err)
			return
		}

		// --- 3. Cache lookup ---
		var key string
		if store != nil {
			key, err = cache.Key(opName, valid.Params())
			if err == nil {
				if body, hit := lookup(ctx, logger, store, opName, key); hit {
					calcCounter.Add(ctx, 1, metric.WithAttributes(
						attribute.String("operation", opName),
						attribute.Bool("cached", true),
					))
					span.SetAttributes(attribute.Bool("finance.cached", true))
					span.SetStatus(codes.Ok, "")
					_ = handlers.WriteRawJSON(w, http.StatusOK, body)
					return
				}
			} else {
				logger.Warn("cache key unavailable", zap.String("operation", opName), zap.Error(err))
			}
		}

		// --- 4. Compute (timed for histogram) ---
		start := time.Now()
		result := compute(valid)
		elapsed := float64(time.Since(start).Nanoseconds()) / 1e6 // ms

		if !result.Finite() {
			fail(finance.ErrResultOverflow)
			return
		}

		body, err := json.Marshal(result.Rounded())
		if err != nil {
			fail(err)
			return
		}

		// --- 5. Metrics, span and log ---
		attrs := metric.WithAttributes(
			attribute.String("operation", opName),
			attribute.Bool("cached", false),
		)
		calcCounter.Add(ctx, 1, attrs)
		calcHistogram.Record(ctx, elapsed, metric.WithAttributes(attribute.String("operation", opName)))

		span.AddEvent("computation.complete", trace.WithAttributes(
			attribute.Float64("duration_ms", elapsed),
		))
		span.SetStatus(codes.Ok, "")

		logger.Info("finance calculation completed",
			zap.String("operation", opName),
			zap.Any("params", valid.Params()),
			zap.ByteString("result", body),
			zap.String("request_id", requestID),
			zap.Float64("duration_ms", elapsed),
		)

		// --- 6. Write JSON response ---
		_ = handlers.WriteRawJSON(w, http.StatusOK, body)

		if store != nil && key != "" {
			if err := store.Set(ctx, key, body); err != nil {
				logger.Warn("cache store failed", zap.String("operation", opName), zap.Error(err))
			}
		}
	}
}

// decodeBody decodes exactly one JSON value from body.
func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

func lookup(ctx context.Context, logger *zap.Logger, store cache.Store, opName, key string) ([]byte, bool) {
	body, found, err := store.Get(ctx, key)
	status := "miss"
	switch {
	case err != nil:
		status = "error"
		logger.Warn("cache lookup failed", zap.String("operation", opName), zap.Error(err))
	case found:
		status = "hit"
	}
	cacheCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("outcome", status),
	))
	return body, found && err == nil
}

// errorResponse maps a handler error to its HTTP status and body.
func errorResponse(err error) (int, handlers.ErrorResponse) {
	var verr *finance.ValidationError
	if errors.As(err, &verr) {
		msg := verr.Message
		if verr.Field != "" {
			msg = verr.Field + " " + msg
		}
		return http.StatusUnprocessableEntity, handlers.ErrorResponse{
			Error:   string(verr.Code),
			Message: msg,
			Field:   verr.Field,
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, handlers.ErrorResponse{
			Error:   "RequestTooLarge",
			Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		}
	}

	var bodyErr errBody
	if errors.As(err, &bodyErr) {
		return http.StatusBadRequest, handlers.ErrorResponse{
			Error:   "InvalidRequestBody",
			Message: "invalid request body: " + bodyErr.err.Error(),
		}
	}

	return http.StatusInternalServerError, handlers.ErrorResponse{
		Error:   "Internal",
		Message: "internal server error",
	}
}
