package finance

import "math"

func periodicRate(annualRatePercent, periodsPerYear float64) float64 {
	return annualRatePercent / 100 / periodsPerYear
}

// growth returns (1+r)^n and the annuity factor ((1+r)^n - 1) / r, both
// from the same n*log(1+r) so that factor == 1 + annuity*r holds to rounding.
// Expm1 keeps the annuity digits for small rates.
func growth(r, n float64) (factor, annuity float64) {
	lf := n * math.Log1p(r)
	factor = math.Exp(lf)
	annuity = math.Expm1(lf) / r
	return factor, annuity
}

// futureValue is the shared formula of the compound interest and savings
// calculations. n is not rounded; fractional periods are valid exponents.
func futureValue(start, contribution, annualRatePercent, periodsPerYear, years float64) GrowthResult {
	r := periodicRate(annualRatePercent, periodsPerYear)
	n := periodsPerYear * years

	contributions := contribution * n

	var fv float64
	if r == 0 {
		fv = start + contributions
	} else {
		factor, annuity := growth(r, n)
		fv = start*factor + contribution*annuity
	}

	return GrowthResult{
		FutureValue:        fv,
		TotalContributions: contributions,
		TotalInterest:      fv - start - contributions,
	}
}

// SimpleInterest computes interest accrued linearly over the term.
func SimpleInterest(v ValidSimpleInterest) SimpleInterestResult {
	p := v.p
	// Explicit conversion keeps the product from being fused into the sum.
	interest := float64(p.Principal * p.AnnualRatePercent / 100 * p.Years)
	return SimpleInterestResult{
		Interest: interest,
		Total:    p.Principal + interest,
	}
}

// CompoundInterest computes the future value of a principal compounded
// TimesPerYear times a year with a contribution added every period.
func CompoundInterest(v ValidCompoundInterest) GrowthResult {
	p := v.p
	return futureValue(p.Principal, p.ContributionPerPeriod, p.AnnualRatePercent, p.TimesPerYear, p.Years)
}

// SavingsFutureValue computes the future value of a savings balance with
// periodic contributions.
func SavingsFutureValue(v ValidSavings) GrowthResult {
	p := v.p
	return futureValue(p.PresentValue, p.ContributionPerPeriod, p.AnnualRatePercent, p.TimesPerYear, p.Years)
}

// LoanPeriods is the number of whole payments of a loan: years times
// payments per year rounded to the nearest integer, at least one.
func LoanPeriods(p LoanPaymentParams) float64 {
	return math.Max(1, math.Round(p.PaymentsPerYear*p.Years))
}

// LoanPayment computes the level payment that amortizes the principal.
func LoanPayment(v ValidLoanPayment) LoanPaymentResult {
	p := v.p
	r := periodicRate(p.AnnualRatePercent, p.PaymentsPerYear)
	n := LoanPeriods(p)

	payment := p.Principal / n
	if r != 0 {
		// principal * r * (1+r)^n / ((1+r)^n - 1)
		if factor, annuity := growth(r, n); annuity != 0 {
			payment = p.Principal * factor / annuity
		}
	}

	totalPaid := payment * n
	return LoanPaymentResult{
		Payment:       payment,
		TotalPaid:     totalPaid,
		TotalInterest: totalPaid - p.Principal,
	}
}
