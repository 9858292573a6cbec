package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxonomy"
	"github.com/etnz/taxonomy/renderer"
	"github.com/google/subcommands"
)

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	json         bool
	skipWarnings bool
	minSDG       float64
	minESG       float64
	minMSCI      float64
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute the fund's sustainable investment figures" }
func (*calcCmd) Usage() string {
	return `taxo calc [-json] [-min-sdg <score>] [-min-esg <score>] [-min-msci <score>]

  Computes the sustainable investment percentage of the fund described in the
  fund file: per ownership class totals, fund totals, and the classification
  flags. Renders a markdown report by default, or the raw JSON report with
  -json.

Usage Examples:
# Render the report for the default fund file.
$ taxo calc

# Emit the JSON report for an external rendering pipeline.
$ taxo calc -json > report.json

`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	defaults := taxonomy.DefaultCriteria()
	f.BoolVar(&c.json, "json", false, "Emit the report as JSON instead of rendering markdown.")
	f.BoolVar(&c.skipWarnings, "skip-warnings", false, "Do not render the warnings section.")
	f.Float64Var(&c.minSDG, "min-sdg", defaults.MinSDG, "Minimum SDG contribution score (0-10 scale).")
	f.Float64Var(&c.minESG, "min-esg", defaults.MinESG, "Minimum internal ESG score (0-20 scale).")
	f.Float64Var(&c.minMSCI, "min-msci", defaults.MinMSCI, "Minimum external MSCI-style score (0-10 scale).")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fund, err := DecodeFund()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	criteria := taxonomy.Criteria{MinSDG: c.minSDG, MinESG: c.minESG, MinMSCI: c.minMSCI}
	report, err := taxonomy.NewCalculationReport(fund, criteria)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Calculation failed: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := taxonomy.EncodeReport(os.Stdout, report); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderCalculation(report, renderer.CalculationRenderOptions{
		SkipWarnings: c.skipWarnings,
	}))
	return subcommands.ExitSuccess
}
