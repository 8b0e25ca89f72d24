// Package cmd implements the fincalc command line, which runs the finance
// calculations locally without the HTTP server.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"finance-calculator/internal/finance"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X finance-calculator/cmd/fincalc/cmd.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fincalc",
		Short: "Personal finance calculations",
		Long: `fincalc runs the same calculations as the finance-calculator API
and prints the result as JSON.

Calculations:
  simple-interest       - interest accrued linearly over a term
  compound-interest     - compounded growth with periodic contributions
  loan-payment          - level payment of an amortizing loan
  savings-future-value  - future value of a savings plan
  rent-split            - weighted split of rent and utilities`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSimpleInterestCmd(),
		newCompoundInterestCmd(),
		newLoanPaymentCmd(),
		newSavingsCmd(),
		newRentSplitCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line and reports failures on stderr.
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, err)
}

type outcome[R any] interface {
	Finite() bool
	Rounded() R
}

// calculate validates params, runs the kernel and writes the rounded result
// to w.
func calculate[P, V any, R outcome[R]](w io.Writer, params P, validate func(P) (V, error), compute func(V) R) error {
	valid, err := validate(params)
	if err != nil {
		return err
	}
	result := compute(valid)
	if !result.Finite() {
		return finance.ErrResultOverflow
	}
	return json.NewEncoder(w).Encode(result.Rounded())
}
