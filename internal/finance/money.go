package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// cents rounds v half away from zero to two decimal places. The rounding is
// done on the shortest decimal representation of v, so 2.675 becomes 2.68.
func cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// RoundCents rounds a finite amount to two decimal places. Non-finite values
// are returned unchanged.
func RoundCents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return cents(v).InexactFloat64()
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Rounded returns the result with every amount rounded to cents.
func (r SimpleInterestResult) Rounded() SimpleInterestResult {
	return SimpleInterestResult{
		Interest: RoundCents(r.Interest),
		Total:    RoundCents(r.Total),
	}
}

// Finite reports whether every amount is representable.
func (r SimpleInterestResult) Finite() bool { return allFinite(r.Interest, r.Total) }

// Rounded returns the result with every amount rounded to cents.
func (r GrowthResult) Rounded() GrowthResult {
	return GrowthResult{
		FutureValue:        RoundCents(r.FutureValue),
		TotalContributions: RoundCents(r.TotalContributions),
		TotalInterest:      RoundCents(r.TotalInterest),
	}
}

// Finite reports whether every amount is representable.
func (r GrowthResult) Finite() bool {
	return allFinite(r.FutureValue, r.TotalContributions, r.TotalInterest)
}

// Rounded returns the result with every amount rounded to cents.
func (r LoanPaymentResult) Rounded() LoanPaymentResult {
	return LoanPaymentResult{
		Payment:       RoundCents(r.Payment),
		TotalPaid:     RoundCents(r.TotalPaid),
		TotalInterest: RoundCents(r.TotalInterest),
	}
}

// Finite reports whether every amount is representable.
func (r LoanPaymentResult) Finite() bool {
	return allFinite(r.Payment, r.TotalPaid, r.TotalInterest)
}

// Rounded returns r unchanged; rent split amounts are already in cents.
func (r RentSplitResult) Rounded() RentSplitResult { return r }

// Finite reports whether every amount is representable.
func (r RentSplitResult) Finite() bool {
	if !allFinite(r.Total) {
		return false
	}
	for _, s := range r.Roommates {
		if !allFinite(s.Amount) {
			return false
		}
	}
	return true
}
