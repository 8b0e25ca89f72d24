package finance

import (
	"math"
	"testing"
)

func mustSimple(t *testing.T, p SimpleInterestParams) ValidSimpleInterest {
	t.Helper()
	v, err := ValidateSimpleInterest(p)
	if err != nil {
		t.Fatalf("validating %+v: %v", p, err)
	}
	return v
}

func mustCompound(t *testing.T, p CompoundInterestParams) ValidCompoundInterest {
	t.Helper()
	v, err := ValidateCompoundInterest(p)
	if err != nil {
		t.Fatalf("validating %+v: %v", p, err)
	}
	return v
}

func mustLoan(t *testing.T, p LoanPaymentParams) ValidLoanPayment {
	t.Helper()
	v, err := ValidateLoanPayment(p)
	if err != nil {
		t.Fatalf("validating %+v: %v", p, err)
	}
	return v
}

func mustSavings(t *testing.T, p SavingsParams) ValidSavings {
	t.Helper()
	v, err := ValidateSavings(p)
	if err != nil {
		t.Fatalf("validating %+v: %v", p, err)
	}
	return v
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSimpleInterestScenario(t *testing.T) {
	got := SimpleInterest(mustSimple(t, SimpleInterestParams{Principal: 1000, AnnualRatePercent: 5, Years: 2})).Rounded()

	if got.Interest != 100 || got.Total != 1100 {
		t.Fatalf("expected interest 100 total 1100, got %+v", got)
	}
}

func TestSimpleInterestTotalIsExact(t *testing.T) {
	tests := []SimpleInterestParams{
		{Principal: 1000, AnnualRatePercent: 5, Years: 2},
		{Principal: 1234.56, AnnualRatePercent: 3.3, Years: 7.5},
		{Principal: 0.01, AnnualRatePercent: 99.9, Years: 0.25},
		{Principal: 5000, AnnualRatePercent: -1.5, Years: 3},
		{Principal: 750, AnnualRatePercent: 4, Years: 0},
	}

	for _, p := range tests {
		got := SimpleInterest(mustSimple(t, p))
		want := p.Principal + float64(p.Principal*p.AnnualRatePercent/100*p.Years)
		if got.Total != want {
			t.Fatalf("%+v: expected total %v, got %v", p, want, got.Total)
		}
		if got.Total != p.Principal+got.Interest {
			t.Fatalf("%+v: total %v is not principal plus interest %v", p, got.Total, got.Interest)
		}
	}
}

func TestCompoundInterest(t *testing.T) {
	tests := []struct {
		name string
		p    CompoundInterestParams
		want GrowthResult
	}{
		{
			name: "annual compounding without contributions",
			p:    CompoundInterestParams{Principal: 1000, AnnualRatePercent: 10, TimesPerYear: 1, Years: 2},
			want: GrowthResult{FutureValue: 1210, TotalContributions: 0, TotalInterest: 210},
		},
		{
			name: "zero rate adds contributions linearly",
			p:    CompoundInterestParams{Principal: 1000, AnnualRatePercent: 0, TimesPerYear: 12, Years: 5, ContributionPerPeriod: 50},
			want: GrowthResult{FutureValue: 4000, TotalContributions: 3000, TotalInterest: 0},
		},
		{
			name: "monthly compounding with contributions",
			p:    CompoundInterestParams{Principal: 1000, AnnualRatePercent: 7, TimesPerYear: 12, Years: 5, ContributionPerPeriod: 50},
			want: GrowthResult{FutureValue: 4997.27, TotalContributions: 3000, TotalInterest: 997.27},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CompoundInterest(mustCompound(t, tc.p)).Rounded()
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestCompoundInterestKeepsFractionalPeriods(t *testing.T) {
	p := CompoundInterestParams{Principal: 1000, AnnualRatePercent: 12, TimesPerYear: 1, Years: 1.5}
	got := CompoundInterest(mustCompound(t, p))

	want := 1000 * math.Pow(1.12, 1.5)
	if !approxEqual(got.FutureValue, want, 1e-9) {
		t.Fatalf("expected future value %v, got %v", want, got.FutureValue)
	}
}

func TestGrowthConvergesToZeroRateValue(t *testing.T) {
	base := CompoundInterestParams{Principal: 2500, TimesPerYear: 12, Years: 10, ContributionPerPeriod: 100}
	zero := CompoundInterest(mustCompound(t, base))

	prevGap := math.Inf(1)
	for _, rate := range []float64{1, 1e-2, 1e-4, 1e-6, 1e-9} {
		p := base
		p.AnnualRatePercent = rate
		got := CompoundInterest(mustCompound(t, p))

		gap := math.Abs(got.FutureValue - zero.FutureValue)
		if gap >= prevGap {
			t.Fatalf("rate %g: gap %v did not shrink from %v", rate, gap, prevGap)
		}
		prevGap = gap
	}
	if prevGap > 1e-5 {
		t.Fatalf("expected convergence to %v, last gap %v", zero.FutureValue, prevGap)
	}

	savings := SavingsFutureValue(mustSavings(t, SavingsParams{
		PresentValue: 2500, ContributionPerPeriod: 100, AnnualRatePercent: 1e-9, TimesPerYear: 12, Years: 10,
	}))
	if !approxEqual(savings.FutureValue, zero.FutureValue, 1e-5) {
		t.Fatalf("expected savings to converge to %v, got %v", zero.FutureValue, savings.FutureValue)
	}
}

func TestGrowthFactorAgreesWithAnnuity(t *testing.T) {
	const eps = 2.220446049250313e-16

	tests := []struct{ r, n float64 }{
		{r: 0.07 / 12, n: 60},
		{r: 0.065 / 12, n: 360},
		{r: 1e-9, n: 120},
		{r: -0.5, n: 10},
		{r: 0.12, n: 1.5},
		{r: 3, n: 40},
	}

	for _, tc := range tests {
		factor, annuity := growth(tc.r, tc.n)
		if diff := math.Abs(factor - (1 + annuity*tc.r)); diff > 8*eps*factor {
			t.Fatalf("r=%g n=%g: factor %v and 1+annuity*r %v differ by %v", tc.r, tc.n, factor, 1+annuity*tc.r, diff)
		}
	}
}

func TestSavingsMatchesCompoundInterest(t *testing.T) {
	savings := SavingsFutureValue(mustSavings(t, SavingsParams{
		PresentValue: 1000, ContributionPerPeriod: 200, AnnualRatePercent: 5, Years: 10, TimesPerYear: 12,
	}))
	compound := CompoundInterest(mustCompound(t, CompoundInterestParams{
		Principal: 1000, ContributionPerPeriod: 200, AnnualRatePercent: 5, Years: 10, TimesPerYear: 12,
	}))

	if savings != compound {
		t.Fatalf("expected identical results, got %+v and %+v", savings, compound)
	}

	want := GrowthResult{FutureValue: 32703.47, TotalContributions: 24000, TotalInterest: 7703.47}
	if got := savings.Rounded(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoanPaymentMortgageScenario(t *testing.T) {
	got := LoanPayment(mustLoan(t, LoanPaymentParams{
		Principal: 250000, AnnualRatePercent: 6.5, Years: 30, PaymentsPerYear: 12,
	})).Rounded()

	want := LoanPaymentResult{Payment: 1580.17, TotalPaid: 568861.22, TotalInterest: 318861.22}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoanPaymentTotals(t *testing.T) {
	tests := []LoanPaymentParams{
		{Principal: 250000, AnnualRatePercent: 6.5, Years: 30, PaymentsPerYear: 12},
		{Principal: 15000, AnnualRatePercent: 4.9, Years: 5, PaymentsPerYear: 12},
		{Principal: 1000, AnnualRatePercent: 18, Years: 1.37, PaymentsPerYear: 26},
		{Principal: 80000, AnnualRatePercent: 0.001, Years: 10, PaymentsPerYear: 4},
	}

	for _, p := range tests {
		got := LoanPayment(mustLoan(t, p))
		n := LoanPeriods(p)
		if got.TotalPaid != got.Payment*n {
			t.Fatalf("%+v: total paid %v != payment %v * %v", p, got.TotalPaid, got.Payment, n)
		}
		if !approxEqual(got.TotalInterest, got.TotalPaid-p.Principal, 1e-9) {
			t.Fatalf("%+v: total interest %v != %v", p, got.TotalInterest, got.TotalPaid-p.Principal)
		}
		if got.TotalInterest <= 0 {
			t.Fatalf("%+v: expected positive interest, got %v", p, got.TotalInterest)
		}
	}
}

func TestLoanPaymentZeroRate(t *testing.T) {
	got := LoanPayment(mustLoan(t, LoanPaymentParams{Principal: 1200, AnnualRatePercent: 0, Years: 1, PaymentsPerYear: 12}))

	want := LoanPaymentResult{Payment: 100, TotalPaid: 1200, TotalInterest: 0}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoanPeriodsRoundsToWholePayments(t *testing.T) {
	tests := []struct {
		years, perYear, want float64
	}{
		{years: 30, perYear: 12, want: 360},
		{years: 1.04, perYear: 12, want: 12},
		{years: 1.05, perYear: 12, want: 13},
		{years: 0.01, perYear: 1, want: 1},
	}

	for _, tc := range tests {
		got := LoanPeriods(LoanPaymentParams{Years: tc.years, PaymentsPerYear: tc.perYear})
		if got != tc.want {
			t.Fatalf("years=%g perYear=%g: expected %v periods, got %v", tc.years, tc.perYear, tc.want, got)
		}
	}
}

func TestKernelIsDeterministic(t *testing.T) {
	v := mustCompound(t, CompoundInterestParams{Principal: 1000, AnnualRatePercent: 7, TimesPerYear: 12, Years: 5, ContributionPerPeriod: 50})

	first := CompoundInterest(v)
	for i := 0; i < 100; i++ {
		if got := CompoundInterest(v); got != first {
			t.Fatalf("run %d: expected %+v, got %+v", i, first, got)
		}
	}
}

func TestResultFinite(t *testing.T) {
	got := CompoundInterest(mustCompound(t, CompoundInterestParams{
		Principal: 1, AnnualRatePercent: 1e300, TimesPerYear: 1, Years: 10,
	}))
	if got.Finite() {
		t.Fatalf("expected overflowing result to be reported as non-finite, got %+v", got)
	}

	ok := SimpleInterest(mustSimple(t, SimpleInterestParams{Principal: 1, AnnualRatePercent: 1, Years: 1}))
	if !ok.Finite() {
		t.Fatalf("expected finite result, got %+v", ok)
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 2.675, want: 2.68},
		{in: 1.005, want: 1.01},
		{in: 0.125, want: 0.13},
		{in: -0.125, want: -0.13},
		{in: 1579.6079, want: 1579.61},
		{in: 100, want: 100},
	}

	for _, tc := range tests {
		if got := RoundCents(tc.in); got != tc.want {
			t.Fatalf("RoundCents(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}

	if got := RoundCents(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf to pass through, got %v", got)
	}
}
