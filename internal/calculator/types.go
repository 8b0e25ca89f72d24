package calculator

import (
	"fmt"
	"strconv"

	"finance-calculator/internal/finance"
)

// Request bodies keep numbers as Number so that absent fields can be told
// apart from zeros and overflowing literals (1e400) can be rejected as
// InvalidNumber instead of failing the whole decode.

// Number is the literal text of a JSON number. Unlike json.Number it
// rejects quoted strings. An absent or null field leaves it empty.
type Number string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) == 0 || (data[0] != '-' && (data[0] < '0' || data[0] > '9')) {
		return fmt.Errorf("expected a JSON number, got %s", data)
	}
	*n = Number(data)
	return nil
}

// SimpleInterestRequest is the JSON body for POST /api/calc/simple-interest.
type SimpleInterestRequest struct {
	Principal         Number `json:"principal"`
	AnnualRatePercent Number `json:"annual_rate_percent"`
	Years             Number `json:"years"`
}

// CompoundInterestRequest is the JSON body for POST /api/calc/compound-interest.
type CompoundInterestRequest struct {
	Principal             Number `json:"principal"`
	AnnualRatePercent     Number `json:"annual_rate_percent"`
	TimesPerYear          Number `json:"times_per_year"`
	Years                 Number `json:"years"`
	ContributionPerPeriod Number `json:"contribution_per_period"` // optional, defaults to 0
}

// LoanPaymentRequest is the JSON body for POST /api/calc/loan-payment.
type LoanPaymentRequest struct {
	Principal         Number `json:"principal"`
	AnnualRatePercent Number `json:"annual_rate_percent"`
	Years             Number `json:"years"`
	PaymentsPerYear   Number `json:"payments_per_year"`
}

// SavingsRequest is the JSON body for POST /api/calc/savings-future-value.
type SavingsRequest struct {
	PresentValue          Number `json:"present_value"`
	ContributionPerPeriod Number `json:"contribution_per_period"` // optional, defaults to 0
	AnnualRatePercent     Number `json:"annual_rate_percent"`
	Years                 Number `json:"years"`
	TimesPerYear          Number `json:"times_per_year"`
}

// RoommateRequest is one entry of RentSplitRequest.Roommates.
type RoommateRequest struct {
	Name   string `json:"name"`
	Weight Number `json:"weight"`
}

// RentSplitRequest is the JSON body for POST /api/calc/rent-split.
type RentSplitRequest struct {
	TotalRent      Number            `json:"total_rent"`
	TotalUtilities Number            `json:"total_utilities"` // optional, defaults to 0
	Roommates      []RoommateRequest `json:"roommates"`
}

// fields converts Number values to float64 and keeps the first failure.
type fields struct {
	err error
}

func (f *fields) parse(name string, n Number, required bool) float64 {
	if f.err != nil {
		return 0
	}
	if n == "" {
		if required {
			f.err = &finance.ValidationError{Code: finance.InvalidNumber, Field: name, Message: "is required"}
		}
		return 0
	}
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		f.err = &finance.ValidationError{Code: finance.InvalidNumber, Field: name, Message: "is not a representable number: " + string(n)}
		return 0
	}
	return v
}

func (f *fields) required(name string, n Number) float64 { return f.parse(name, n, true) }

func (f *fields) optional(name string, n Number) float64 { return f.parse(name, n, false) }

func (r SimpleInterestRequest) params() (finance.SimpleInterestParams, error) {
	var f fields
	p := finance.SimpleInterestParams{
		Principal:         f.required("principal", r.Principal),
		AnnualRatePercent: f.required("annual_rate_percent", r.AnnualRatePercent),
		Years:             f.required("years", r.Years),
	}
	return p, f.err
}

func (r CompoundInterestRequest) params() (finance.CompoundInterestParams, error) {
	var f fields
	p := finance.CompoundInterestParams{
		Principal:             f.required("principal", r.Principal),
		AnnualRatePercent:     f.required("annual_rate_percent", r.AnnualRatePercent),
		TimesPerYear:          f.required("times_per_year", r.TimesPerYear),
		Years:                 f.required("years", r.Years),
		ContributionPerPeriod: f.optional("contribution_per_period", r.ContributionPerPeriod),
	}
	return p, f.err
}

func (r LoanPaymentRequest) params() (finance.LoanPaymentParams, error) {
	var f fields
	p := finance.LoanPaymentParams{
		Principal:         f.required("principal", r.Principal),
		AnnualRatePercent: f.required("annual_rate_percent", r.AnnualRatePercent),
		Years:             f.required("years", r.Years),
		PaymentsPerYear:   f.required("payments_per_year", r.PaymentsPerYear),
	}
	return p, f.err
}

func (r SavingsRequest) params() (finance.SavingsParams, error) {
	var f fields
	p := finance.SavingsParams{
		PresentValue:          f.required("present_value", r.PresentValue),
		ContributionPerPeriod: f.optional("contribution_per_period", r.ContributionPerPeriod),
		AnnualRatePercent:     f.required("annual_rate_percent", r.AnnualRatePercent),
		Years:                 f.required("years", r.Years),
		TimesPerYear:          f.required("times_per_year", r.TimesPerYear),
	}
	return p, f.err
}

func (r RentSplitRequest) params() (finance.RentSplitParams, error) {
	var f fields
	p := finance.RentSplitParams{
		TotalRent:      f.required("total_rent", r.TotalRent),
		TotalUtilities: f.optional("total_utilities", r.TotalUtilities),
		Roommates:      make([]finance.Roommate, len(r.Roommates)),
	}
	for i, rm := range r.Roommates {
		p.Roommates[i] = finance.Roommate{
			Name:   rm.Name,
			Weight: f.required("roommates["+strconv.Itoa(i)+"].weight", rm.Weight),
		}
	}
	return p, f.err
}
