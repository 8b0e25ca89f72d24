package calculator

import (
	"finance-calculator/internal/cache"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts all finance endpoints onto the given router under the
// /api/calc prefix. store may be nil to disable response caching.
func RegisterRoutes(r chi.Router, store cache.Store) {
	r.Route("/api/calc", func(r chi.Router) {
		r.Post("/simple-interest", SimpleInterest(store))
		r.Post("/compound-interest", CompoundInterest(store))
		r.Post("/loan-payment", LoanPayment(store))
		r.Post("/savings-future-value", SavingsFutureValue(store))
		r.Post("/rent-split", RentSplit(store))
	})
}
