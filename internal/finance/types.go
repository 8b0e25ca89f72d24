package finance

// Params fields carry validate tags for the range rules in ranges.go.

// SimpleInterestParams are the raw inputs of a simple interest calculation.
type SimpleInterestParams struct {
	Principal         float64 `json:"principal" validate:"nonneg"`
	AnnualRatePercent float64 `json:"annual_rate_percent" validate:"finite"`
	Years             float64 `json:"years" validate:"term"`
}

// CompoundInterestParams are the raw inputs of a compound interest calculation.
type CompoundInterestParams struct {
	Principal             float64 `json:"principal" validate:"nonneg"`
	AnnualRatePercent     float64 `json:"annual_rate_percent" validate:"finite"`
	TimesPerYear          float64 `json:"times_per_year" validate:"frequency"`
	Years                 float64 `json:"years" validate:"period"`
	ContributionPerPeriod float64 `json:"contribution_per_period" validate:"finite"`
}

// LoanPaymentParams are the raw inputs of a loan amortization calculation.
type LoanPaymentParams struct {
	Principal         float64 `json:"principal" validate:"nonneg"`
	AnnualRatePercent float64 `json:"annual_rate_percent" validate:"finite"`
	Years             float64 `json:"years" validate:"period"`
	PaymentsPerYear   float64 `json:"payments_per_year" validate:"frequency"`
}

// SavingsParams are the raw inputs of a savings future value calculation.
type SavingsParams struct {
	PresentValue          float64 `json:"present_value" validate:"nonneg"`
	ContributionPerPeriod float64 `json:"contribution_per_period" validate:"finite"`
	AnnualRatePercent     float64 `json:"annual_rate_percent" validate:"finite"`
	Years                 float64 `json:"years" validate:"period"`
	TimesPerYear          float64 `json:"times_per_year" validate:"frequency"`
}

// Roommate is one participant of a rent split.
type Roommate struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight" validate:"nonneg"`
}

// RentSplitParams are the raw inputs of a weighted rent split.
type RentSplitParams struct {
	TotalRent      float64    `json:"total_rent" validate:"nonneg"`
	TotalUtilities float64    `json:"total_utilities" validate:"nonneg"`
	Roommates      []Roommate `json:"roommates" validate:"dive"`
}

// Validated inputs. Their fields are unexported so that the kernel only ever
// sees values that went through the matching Validate function.

type ValidSimpleInterest struct{ p SimpleInterestParams }

type ValidCompoundInterest struct{ p CompoundInterestParams }

type ValidLoanPayment struct{ p LoanPaymentParams }

type ValidSavings struct{ p SavingsParams }

type ValidRentSplit struct {
	p         RentSplitParams
	weightSum float64
}

// Params returns a copy of the validated inputs.
func (v ValidSimpleInterest) Params() SimpleInterestParams { return v.p }

// Params returns a copy of the validated inputs.
func (v ValidCompoundInterest) Params() CompoundInterestParams { return v.p }

// Params returns a copy of the validated inputs.
func (v ValidLoanPayment) Params() LoanPaymentParams { return v.p }

// Params returns a copy of the validated inputs.
func (v ValidSavings) Params() SavingsParams { return v.p }

// Params returns a copy of the validated inputs.
func (v ValidRentSplit) Params() RentSplitParams {
	p := v.p
	p.Roommates = append([]Roommate(nil), v.p.Roommates...)
	return p
}

// SimpleInterestResult is the response of POST /api/calc/simple-interest.
type SimpleInterestResult struct {
	Interest float64 `json:"interest"`
	Total    float64 `json:"total"`
}

// GrowthResult is the response shared by the compound interest and savings
// future value endpoints.
type GrowthResult struct {
	FutureValue        float64 `json:"future_value"`
	TotalContributions float64 `json:"total_contributions"`
	TotalInterest      float64 `json:"total_interest"`
}

// LoanPaymentResult is the response of POST /api/calc/loan-payment.
type LoanPaymentResult struct {
	Payment       float64 `json:"payment"`
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
}

// RoommateShare is one roommate's allocated amount.
type RoommateShare struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// RentSplitResult is the response of POST /api/calc/rent-split.
type RentSplitResult struct {
	Total     float64         `json:"total"`
	Roommates []RoommateShare `json:"roommates"`
}
