package calculator

import (
	"encoding/json"
	"errors"
	"testing"

	"finance-calculator/internal/finance"
)

func TestRentSplitRequestParams(t *testing.T) {
	var req RentSplitRequest
	body := `{"total_rent":1800,"roommates":[{"name":"Ana","weight":2},{"name":"Ben","weight":1}]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decoding request: %v", err)
	}

	p, err := req.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalRent != 1800 || p.TotalUtilities != 0 {
		t.Fatalf("unexpected totals %+v", p)
	}
	want := []finance.Roommate{{Name: "Ana", Weight: 2}, {Name: "Ben", Weight: 1}}
	if len(p.Roommates) != len(want) {
		t.Fatalf("expected %d roommates, got %d", len(want), len(p.Roommates))
	}
	for i := range want {
		if p.Roommates[i] != want[i] {
			t.Fatalf("roommate %d: expected %+v, got %+v", i, want[i], p.Roommates[i])
		}
	}
}

func TestParamsReportFirstMissingField(t *testing.T) {
	req := LoanPaymentRequest{Principal: "1000", PaymentsPerYear: "12"}

	_, err := req.params()

	var verr *finance.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *finance.ValidationError, got %v", err)
	}
	if verr.Code != finance.InvalidNumber || verr.Field != "annual_rate_percent" {
		t.Fatalf("expected InvalidNumber on annual_rate_percent, got %s on %q", verr.Code, verr.Field)
	}
}

func TestParamsRejectOverflowingLiteral(t *testing.T) {
	req := SavingsRequest{
		PresentValue:      "1e400",
		AnnualRatePercent: "5",
		Years:             "1",
		TimesPerYear:      "12",
	}

	_, err := req.params()

	var verr *finance.ValidationError
	if !errors.As(err, &verr) || verr.Field != "present_value" {
		t.Fatalf("expected present_value to be rejected, got %v", err)
	}
}

func TestCompoundInterestRequestOptionalContribution(t *testing.T) {
	req := CompoundInterestRequest{
		Principal:         "500",
		AnnualRatePercent: "3",
		TimesPerYear:      "4",
		Years:             "2",
	}

	p, err := req.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ContributionPerPeriod != 0 {
		t.Fatalf("expected contribution to default to 0, got %v", p.ContributionPerPeriod)
	}
}

func TestNumberAcceptsOnlyNumberLiterals(t *testing.T) {
	var req SimpleInterestRequest
	if err := json.Unmarshal([]byte(`{"principal":-1.5e2,"annual_rate_percent":null}`), &req); err != nil {
		t.Fatalf("decoding request: %v", err)
	}
	if req.Principal != "-1.5e2" {
		t.Fatalf("expected literal -1.5e2, got %q", req.Principal)
	}
	if req.AnnualRatePercent != "" {
		t.Fatalf("expected null to leave the field empty, got %q", req.AnnualRatePercent)
	}

	for _, body := range []string{`{"principal":"100"}`, `{"principal":true}`, `{"principal":{}}`} {
		if err := json.Unmarshal([]byte(body), &req); err == nil {
			t.Fatalf("body %s: expected an error", body)
		}
	}
}
