package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"finance-calculator/internal/cache"
	"finance-calculator/internal/calculator"
	"finance-calculator/internal/handlers"
	"finance-calculator/internal/observability"
)

// Dependencies are the collaborators the router wires into its handlers.
// Limiter and Store are optional.
type Dependencies struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
	Limiter        *RateLimiter
	Store          cache.Store
}

func NewRouter(deps Dependencies) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(observability.MetricsMiddleware)
	r.Use(observability.RecoverMiddleware)
	r.Use(CORS(deps.AllowedOrigins))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Group(func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(deps.Limiter.Middleware)
		}
		if deps.MaxBodyBytes > 0 {
			r.Use(middleware.RequestSize(deps.MaxBodyBytes))
		}
		calculator.RegisterRoutes(r, deps.Store)
	})

	return r
}
