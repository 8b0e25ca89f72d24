package finance

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func mustRentSplit(t *testing.T, p RentSplitParams) ValidRentSplit {
	t.Helper()
	v, err := ValidateRentSplit(p)
	if err != nil {
		t.Fatalf("validating %+v: %v", p, err)
	}
	return v
}

func sumShares(shares []RoommateShare) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(decimal.NewFromFloat(s.Amount))
	}
	return sum
}

func TestRentSplitEvenScenario(t *testing.T) {
	got := RentSplit(mustRentSplit(t, RentSplitParams{
		TotalRent:      2400,
		TotalUtilities: 200,
		Roommates:      []Roommate{{Name: "Alice", Weight: 1}, {Name: "Bob", Weight: 1}},
	}))

	if got.Total != 2600 {
		t.Fatalf("expected total 2600, got %v", got.Total)
	}
	want := []RoommateShare{{Name: "Alice", Amount: 1300}, {Name: "Bob", Amount: 1300}}
	if len(got.Roommates) != len(want) {
		t.Fatalf("expected %d roommates, got %d", len(want), len(got.Roommates))
	}
	for i := range want {
		if got.Roommates[i] != want[i] {
			t.Fatalf("roommate %d: expected %+v, got %+v", i, want[i], got.Roommates[i])
		}
	}
}

func TestRentSplitLastRoommateAbsorbsResidual(t *testing.T) {
	got := RentSplit(mustRentSplit(t, RentSplitParams{
		TotalRent: 100,
		Roommates: []Roommate{{Name: "A", Weight: 1}, {Name: "B", Weight: 1}, {Name: "C", Weight: 1}},
	}))

	want := []float64{33.33, 33.33, 33.34}
	for i, amount := range want {
		if got.Roommates[i].Amount != amount {
			t.Fatalf("roommate %d: expected %v, got %v", i, amount, got.Roommates[i].Amount)
		}
	}
}

func TestRentSplitPreservesOrderAndNames(t *testing.T) {
	got := RentSplit(mustRentSplit(t, RentSplitParams{
		TotalRent:      1800,
		TotalUtilities: 150.5,
		Roommates: []Roommate{
			{Name: "Zoë", Weight: 2},
			{Name: "", Weight: 0},
			{Name: "  Al  ", Weight: 1},
		},
	}))

	names := []string{"Zoë", "", "  Al  "}
	for i, name := range names {
		if got.Roommates[i].Name != name {
			t.Fatalf("roommate %d: expected name %q, got %q", i, name, got.Roommates[i].Name)
		}
	}
	if got.Roommates[1].Amount != 0 {
		t.Fatalf("expected zero-weight roommate to owe 0, got %v", got.Roommates[1].Amount)
	}
	if got.Roommates[0].Amount != 1300.33 || got.Roommates[2].Amount != 650.17 {
		t.Fatalf("unexpected amounts %+v", got.Roommates)
	}
}

func TestRentSplitScalesByWeightBeforeDividing(t *testing.T) {
	tests := []struct {
		name     string
		rent     float64
		weights  []float64
		expected []float64
	}{
		{name: "one to five", rent: 5782.65, weights: []float64{1, 5}, expected: []float64{963.78, 4818.87}},
		{name: "three to one", rent: 5448.34, weights: []float64{9, 3}, expected: []float64{4086.25, 1362.09}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := RentSplitParams{TotalRent: tc.rent}
			for _, w := range tc.weights {
				p.Roommates = append(p.Roommates, Roommate{Name: "r", Weight: w})
			}

			got := RentSplit(mustRentSplit(t, p))

			for i, amount := range tc.expected {
				if got.Roommates[i].Amount != amount {
					t.Fatalf("roommate %d: expected %v, got %v", i, amount, got.Roommates[i].Amount)
				}
			}
		})
	}
}

func TestWeightedShareAvoidsOverflow(t *testing.T) {
	got := weightedShare(math.MaxFloat64, 3, 4)
	if math.IsInf(got, 0) {
		t.Fatal("expected a finite share")
	}
	if want := math.MaxFloat64 * 0.75; got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := weightedShare(5782.65, 1, 6); got != 963.775 {
		t.Fatalf("expected 963.775, got %v", got)
	}
}

func TestRentSplitNeverGoesNegative(t *testing.T) {
	got := RentSplit(mustRentSplit(t, RentSplitParams{
		TotalRent: 0.01,
		Roommates: []Roommate{{Name: "A", Weight: 1}, {Name: "B", Weight: 1}, {Name: "C", Weight: 0}},
	}))

	for _, s := range got.Roommates {
		if s.Amount < 0 {
			t.Fatalf("expected non-negative amounts, got %+v", got.Roommates)
		}
	}
	if !sumShares(got.Roommates).Equal(decimal.NewFromFloat(got.Total)) {
		t.Fatalf("expected shares %+v to add up to %v", got.Roommates, got.Total)
	}
	if got.Roommates[0].Amount != 0.01 || got.Roommates[1].Amount != 0 || got.Roommates[2].Amount != 0 {
		t.Fatalf("unexpected amounts %+v", got.Roommates)
	}
}

func TestRentSplitSharesAlwaysAddUp(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		p := RentSplitParams{
			TotalRent:      float64(rng.Intn(1_000_000)) / 100,
			TotalUtilities: rng.Float64() * 500,
		}
		n := 1 + rng.Intn(8)
		for j := 0; j < n; j++ {
			w := rng.Float64() * 3
			if rng.Intn(4) == 0 {
				w = 0
			}
			p.Roommates = append(p.Roommates, Roommate{Name: "r", Weight: w})
		}
		p.Roommates[rng.Intn(n)].Weight += 0.5

		got := RentSplit(mustRentSplit(t, p))

		want := decimal.NewFromFloat(p.TotalRent + p.TotalUtilities).Round(2)
		if !decimal.NewFromFloat(got.Total).Equal(want) {
			t.Fatalf("case %d: expected total %s, got %v", i, want, got.Total)
		}
		if sum := sumShares(got.Roommates); !sum.Equal(want) {
			t.Fatalf("case %d: shares add up to %s, expected %s (%+v)", i, sum, want, got.Roommates)
		}
		for _, s := range got.Roommates {
			if s.Amount < 0 {
				t.Fatalf("case %d: negative share %+v", i, s)
			}
		}
	}
}
