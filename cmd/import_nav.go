package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxonomy"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	currency string
}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "update participation figures from an administrator NAV export"
}
func (*importCmd) Usage() string {
	return `taxo import <nav_export.json>

  Reads a fund administrator NAV export and updates the reported value and
  sustainable value of matching participations in the fund file.

  Participations are matched by investment ID. Figures for unknown IDs are
  left out and reported as warnings, review them before publishing.

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "EUR", "Currency of the figures in the NAV export.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the path to the NAV export file.")
		return subcommands.ExitUsageError
	}

	export, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading NAV export %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer export.Close()

	figures, err := taxonomy.DecodeNAVExport(export, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing NAV export %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	fund, err := DecodeFund()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	updated := fund.UpdateReported(figures)
	matched := make(map[string]bool, len(updated))
	for _, id := range updated {
		matched[id] = true
	}
	for id := range figures {
		if !matched[id] {
			fmt.Fprintf(os.Stderr, "Warning: no participation matches NAV export entry %q, skipped.\n", id)
		}
	}

	if err := EncodeFund(fund); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %d participations in %s\n", len(updated), *fundFile)
	return subcommands.ExitSuccess
}
