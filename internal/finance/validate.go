package finance

import "math"

// checkGrowthFactor rejects periodic rates at or below -100%, for which
// (1+r)^N is undefined or zero.
func checkGrowthFactor(annualRatePercent, periodsPerYear float64) error {
	if 1+periodicRate(annualRatePercent, periodsPerYear) <= 0 {
		return reject(InvalidNumber, "annual_rate_percent",
			"periodic rate must be greater than -100%%, got %g%% per year over %g periods",
			annualRatePercent, periodsPerYear)
	}
	return nil
}

// ValidateSimpleInterest checks simple interest inputs. A zero-year term is
// accepted and earns no interest. The rate has no lower bound.
func ValidateSimpleInterest(p SimpleInterestParams) (ValidSimpleInterest, error) {
	if err := checkRanges(p); err != nil {
		return ValidSimpleInterest{}, err
	}
	return ValidSimpleInterest{p: p}, nil
}

// ValidateCompoundInterest checks compound interest inputs. Negative
// contributions are accepted and model periodic withdrawals.
func ValidateCompoundInterest(p CompoundInterestParams) (ValidCompoundInterest, error) {
	err := checkRanges(p)
	if err == nil {
		err = checkGrowthFactor(p.AnnualRatePercent, p.TimesPerYear)
	}
	if err != nil {
		return ValidCompoundInterest{}, err
	}
	return ValidCompoundInterest{p: p}, nil
}

// ValidateLoanPayment checks loan inputs.
func ValidateLoanPayment(p LoanPaymentParams) (ValidLoanPayment, error) {
	err := checkRanges(p)
	if err == nil {
		err = checkGrowthFactor(p.AnnualRatePercent, p.PaymentsPerYear)
	}
	if err != nil {
		return ValidLoanPayment{}, err
	}
	return ValidLoanPayment{p: p}, nil
}

// ValidateSavings checks savings future value inputs.
func ValidateSavings(p SavingsParams) (ValidSavings, error) {
	err := checkRanges(p)
	if err == nil {
		err = checkGrowthFactor(p.AnnualRatePercent, p.TimesPerYear)
	}
	if err != nil {
		return ValidSavings{}, err
	}
	return ValidSavings{p: p}, nil
}

// ValidateRentSplit checks the totals and every roommate weight, and requires
// the weights to sum to a positive, finite number.
func ValidateRentSplit(p RentSplitParams) (ValidRentSplit, error) {
	if err := checkRanges(p); err != nil {
		return ValidRentSplit{}, err
	}
	if math.IsInf(p.TotalRent+p.TotalUtilities, 0) {
		return ValidRentSplit{}, reject(InvalidNumber, "total_utilities", "combined rent and utilities overflow")
	}

	var sum float64
	for _, r := range p.Roommates {
		sum += r.Weight
	}
	if math.IsInf(sum, 0) {
		return ValidRentSplit{}, reject(InvalidNumber, "roommates", "sum of weights overflows")
	}
	if sum <= 0 {
		return ValidRentSplit{}, reject(DegenerateWeights, "roommates",
			"weights of %d roommate(s) must sum to more than zero", len(p.Roommates))
	}

	p.Roommates = append([]Roommate(nil), p.Roommates...)
	return ValidRentSplit{p: p, weightSum: sum}, nil
}
