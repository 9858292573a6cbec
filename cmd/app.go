// Package cmd implements the CLI application to compute a fund's
// sustainable investment figures.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxonomy"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&calcCmd{}, "calculation")
	c.Register(&checkCmd{}, "calculation")

	c.Register(&sampleCmd{}, "fund file")
	c.Register(&importCmd{}, "fund file")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var fundFile = flag.String("fund-file", "fund.json", "Path to the fund description file (JSON format)")

// DecodeFund decodes the fund from the app default fund file.
func DecodeFund() (*taxonomy.Fund, error) {
	f, err := os.Open(*fundFile)
	if err != nil {
		return nil, fmt.Errorf("could not open fund file %q: %w", *fundFile, err)
	}
	defer f.Close()

	fund, err := taxonomy.DecodeFund(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode fund file %q: %w", *fundFile, err)
	}
	return fund, nil
}

// EncodeFund writes the fund back into the app default fund file.
func EncodeFund(fund *taxonomy.Fund) error {
	f, err := os.Create(*fundFile)
	if err != nil {
		return fmt.Errorf("could not create fund file %q: %w", *fundFile, err)
	}
	defer f.Close()

	if err := taxonomy.EncodeFund(f, fund); err != nil {
		return fmt.Errorf("could not encode fund file %q: %w", *fundFile, err)
	}
	return nil
}
