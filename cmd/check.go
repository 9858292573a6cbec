package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxonomy"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the fund file without computing a report" }
func (*checkCmd) Usage() string {
	return `taxo check

  Validates the fund description file: JSON format, value scales, ownership
  class bounds, and the structural consistency of every investment node.
  Reports the first offending record, or the list of assets that would be
  screened out for lack of data.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fund, err := DecodeFund()
	if err != nil {
		var verr *taxonomy.ValidationError
		var derr *taxonomy.DataError
		switch {
		case errors.As(err, &verr):
			fmt.Fprintf(os.Stderr, "Invalid value: %v\n", verr)
		case errors.As(err, &derr):
			fmt.Fprintf(os.Stderr, "Inconsistent structure: %v\n", derr)
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}

	// The fund is valid; surface what the calculation would warn about.
	report, err := taxonomy.NewCalculationReport(fund, taxonomy.DefaultCriteria())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Fund %q is valid: %d investments.\n", fund.Name, len(fund.Investments()))
	for _, w := range report.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	return subcommands.ExitSuccess
}
