package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"finance-calculator/internal/finance"

	"github.com/spf13/cobra"
)

func newSimpleInterestCmd() *cobra.Command {
	var p finance.SimpleInterestParams

	c := &cobra.Command{
		Use:   "simple-interest",
		Short: "Interest accrued linearly over a term",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return calculate(c.OutOrStdout(), p, finance.ValidateSimpleInterest, finance.SimpleInterest)
		},
	}

	f := c.Flags()
	f.Float64Var(&p.Principal, "principal", 0, "amount invested")
	f.Float64Var(&p.AnnualRatePercent, "annual-rate-percent", 0, "yearly rate in percent")
	f.Float64Var(&p.Years, "years", 0, "term in years")
	markRequired(c, "principal", "annual-rate-percent", "years")
	return c
}

func newCompoundInterestCmd() *cobra.Command {
	var p finance.CompoundInterestParams

	c := &cobra.Command{
		Use:   "compound-interest",
		Short: "Compounded growth with periodic contributions",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return calculate(c.OutOrStdout(), p, finance.ValidateCompoundInterest, finance.CompoundInterest)
		},
	}

	f := c.Flags()
	f.Float64Var(&p.Principal, "principal", 0, "starting amount")
	f.Float64Var(&p.AnnualRatePercent, "annual-rate-percent", 0, "yearly rate in percent")
	f.Float64Var(&p.TimesPerYear, "times-per-year", 0, "compounding periods per year")
	f.Float64Var(&p.Years, "years", 0, "term in years")
	f.Float64Var(&p.ContributionPerPeriod, "contribution-per-period", 0, "amount added every period")
	markRequired(c, "principal", "annual-rate-percent", "times-per-year", "years")
	return c
}

func newLoanPaymentCmd() *cobra.Command {
	var p finance.LoanPaymentParams

	c := &cobra.Command{
		Use:   "loan-payment",
		Short: "Level payment of an amortizing loan",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return calculate(c.OutOrStdout(), p, finance.ValidateLoanPayment, finance.LoanPayment)
		},
	}

	f := c.Flags()
	f.Float64Var(&p.Principal, "principal", 0, "amount borrowed")
	f.Float64Var(&p.AnnualRatePercent, "annual-rate-percent", 0, "yearly rate in percent")
	f.Float64Var(&p.Years, "years", 0, "term in years")
	f.Float64Var(&p.PaymentsPerYear, "payments-per-year", 0, "payments per year")
	markRequired(c, "principal", "annual-rate-percent", "years", "payments-per-year")
	return c
}

func newSavingsCmd() *cobra.Command {
	var p finance.SavingsParams

	c := &cobra.Command{
		Use:   "savings-future-value",
		Short: "Future value of a savings plan",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return calculate(c.OutOrStdout(), p, finance.ValidateSavings, finance.SavingsFutureValue)
		},
	}

	f := c.Flags()
	f.Float64Var(&p.PresentValue, "present-value", 0, "current balance")
	f.Float64Var(&p.ContributionPerPeriod, "contribution-per-period", 0, "amount added every period")
	f.Float64Var(&p.AnnualRatePercent, "annual-rate-percent", 0, "yearly rate in percent")
	f.Float64Var(&p.Years, "years", 0, "term in years")
	f.Float64Var(&p.TimesPerYear, "times-per-year", 0, "compounding periods per year")
	markRequired(c, "present-value", "annual-rate-percent", "years", "times-per-year")
	return c
}

func newRentSplitCmd() *cobra.Command {
	var (
		p         finance.RentSplitParams
		roommates []string
	)

	c := &cobra.Command{
		Use:   "rent-split",
		Short: "Weighted split of rent and utilities",
		Example: `  fincalc rent-split --total-rent 2400 --total-utilities 200 \
    --roommate Alice=1 --roommate Bob=1`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			parsed, err := parseRoommates(roommates)
			if err != nil {
				return err
			}
			p.Roommates = parsed
			return calculate(c.OutOrStdout(), p, finance.ValidateRentSplit, finance.RentSplit)
		},
	}

	f := c.Flags()
	f.Float64Var(&p.TotalRent, "total-rent", 0, "monthly rent")
	f.Float64Var(&p.TotalUtilities, "total-utilities", 0, "monthly utilities")
	f.StringArrayVar(&roommates, "roommate", nil, "roommate as name=weight, repeat in order")
	markRequired(c, "total-rent")
	return c
}

// parseRoommates reads name=weight pairs. The weight is split at the last
// "=" so names may contain one.
func parseRoommates(pairs []string) ([]finance.Roommate, error) {
	out := make([]finance.Roommate, 0, len(pairs))
	for i, pair := range pairs {
		idx := strings.LastIndex(pair, "=")
		if idx < 0 {
			return nil, fmt.Errorf("roommate %d: expected name=weight, got %q", i, pair)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(pair[idx+1:]), 64)
		if err != nil {
			return nil, &finance.ValidationError{
				Code:    finance.InvalidNumber,
				Field:   fmt.Sprintf("roommates[%d].weight", i),
				Message: "is not a representable number: " + pair[idx+1:],
			}
		}
		out = append(out, finance.Roommate{Name: pair[:idx], Weight: weight})
	}
	return out, nil
}

func markRequired(c *cobra.Command, names ...string) {
	for _, name := range names {
		if err := c.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}
