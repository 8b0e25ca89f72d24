package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// RentSplit allocates rent plus utilities across roommates in proportion to
// their weights. Every share is rounded to cents and the last roommate takes
// the rounding residual, so the shares always add up to the rounded total.
// Should the residual push the last share below zero, the shortfall is
// recovered from the preceding roommates, latest first.
func RentSplit(v ValidRentSplit) RentSplitResult {
	p := v.p
	combined := p.TotalRent + p.TotalUtilities
	total := cents(combined)

	amounts := make([]decimal.Decimal, len(p.Roommates))
	allocated := decimal.Zero
	last := len(p.Roommates) - 1
	for i := 0; i < last; i++ {
		amounts[i] = cents(weightedShare(combined, p.Roommates[i].Weight, v.weightSum))
		allocated = allocated.Add(amounts[i])
	}
	amounts[last] = total.Sub(allocated)

	if amounts[last].IsNegative() {
		deficit := amounts[last].Neg()
		amounts[last] = decimal.Zero
		for i := last - 1; i >= 0 && deficit.IsPositive(); i-- {
			take := decimal.Min(amounts[i], deficit)
			amounts[i] = amounts[i].Sub(take)
			deficit = deficit.Sub(take)
		}
	}

	shares := make([]RoommateShare, len(p.Roommates))
	for i, r := range p.Roommates {
		shares[i] = RoommateShare{Name: r.Name, Amount: amounts[i].InexactFloat64()}
	}

	return RentSplitResult{
		Total:     total.InexactFloat64(),
		Roommates: shares,
	}
}

// weightedShare is combined*weight/sum, multiplied first. The product only
// overflows for amounts near MaxFloat64, where the ratio is taken first.
func weightedShare(combined, weight, sum float64) float64 {
	if product := combined * weight; !math.IsInf(product, 0) {
		return product / sum
	}
	return combined * (weight / sum)
}
