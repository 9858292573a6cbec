package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/taxonomy"
	"github.com/etnz/taxonomy/date"
	"github.com/google/subcommands"
)

// sampleCmd holds the flags for the 'sample' subcommand.
type sampleCmd struct {
	force bool
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "write a complete example fund file" }
func (*sampleCmd) Usage() string {
	return `taxo sample [-f]

  Writes a complete example fund (direct assets, wholly-owned vehicles, every
  participation class and a PE fund) into the fund file, as a starting point
  to edit. Refuses to overwrite an existing file unless -f is given.

`
}

func (c *sampleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite an existing fund file.")
}

func (c *sampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		if _, err := os.Stat(*fundFile); err == nil {
			fmt.Fprintf(os.Stderr, "Fund file %q already exists, use -f to overwrite.\n", *fundFile)
			return subcommands.ExitUsageError
		}
	}

	fund, err := sampleFund()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeFund(fund); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote example fund %q to %s\n", fund.Name, *fundFile)
	return subcommands.ExitSuccess
}

// sampleFund builds the example fund. Figures are in millions of euro.
func sampleFund() (*taxonomy.Fund, error) {
	eur := func(v float64) taxonomy.Money { return taxonomy.M(v, "EUR") }

	fund := taxonomy.NewFund("Green Real Estate Fund", "Article 8", date.New(2024, time.December, 31))
	err := fund.Append(
		taxonomy.NewDirect("DA", "Direct assets",
			taxonomy.Asset{
				ID: "DA001", Name: "Office Paris", Category: taxonomy.Office,
				Value: eur(25), ConstructionYear: 2008, EPC: "A", StockPercentile: taxonomy.S(8),
				SDGScore: taxonomy.S(7.5), ESGScore: taxonomy.S(15.0), DNSH: true,
			},
			taxonomy.Asset{
				ID: "DA002", Name: "Retail Lyon", Category: taxonomy.Retail,
				Value: eur(15), ConstructionYear: 2001, EPC: "B",
				SDGScore: taxonomy.S(6.0), ESGScore: taxonomy.S(14.0), DNSH: true,
			},
			taxonomy.Asset{
				ID: "DA003", Name: "Logistics Lille", Category: taxonomy.Logistics,
				Value: eur(18), ConstructionYear: 1999, EPC: "C",
				SDGScore: taxonomy.S(2.0), ESGScore: taxonomy.S(10.0), DNSH: true,
			},
			taxonomy.Asset{
				ID: "DA004", Name: "Office Bordeaux", Category: taxonomy.Office,
				Value: eur(12), ConstructionYear: 2012, EPC: "B", StockPercentile: taxonomy.S(13),
				SDGScore: taxonomy.S(5.5), ESGScore: taxonomy.S(16.0), DNSH: true,
			},
			taxonomy.Asset{
				ID: "DA005", Name: "Hotel Marseille", Category: taxonomy.Hotel,
				Value: eur(20), ConstructionYear: 1987, EPC: "D",
				SDGScore: taxonomy.S(3.0), ESGScore: taxonomy.S(7.0), DNSH: false,
			},
		),
		taxonomy.NewVehicle("SCI001", "SCI-1",
			taxonomy.Asset{
				ID: "SCI1-A1", Name: "Office Strasbourg", Category: taxonomy.Office,
				Value: eur(14), ConstructionYear: 2015, EPC: "A", StockPercentile: taxonomy.S(9),
				SDGScore: taxonomy.S(8.0), ESGScore: taxonomy.S(17.0), DNSH: true,
			},
			taxonomy.Asset{
				ID: "SCI1-A2", Name: "Retail Nantes", Category: taxonomy.Retail,
				Value: eur(10), ConstructionYear: 1996, EPC: "C",
				RenovationEnergyReduction: taxonomy.S(35.0),
				SDGScore:                  taxonomy.S(4.0), ESGScore: taxonomy.S(12.0), DNSH: true,
			},
			taxonomy.Asset{
				ID: "SCI1-A3", Name: "Warehouse Toulouse", Category: taxonomy.Warehouse,
				Value: eur(8), ConstructionYear: 2010, EPC: "B", StockPercentile: taxonomy.S(14),
				SDGScore: taxonomy.S(5.5), ESGScore: taxonomy.S(13.0), DNSH: true,
			},
		),
		taxonomy.NewVehicle("SCI002", "SCI-2",
			taxonomy.Asset{
				ID: "SCI2-A1", Name: "Office Rennes", Category: taxonomy.Office,
				Value: eur(12), ConstructionYear: 2003, EPC: "B",
				RenovationGHGReduction: taxonomy.S(32.0),
				SDGScore:               taxonomy.S(6.0), ESGScore: taxonomy.S(14.0), DNSH: true,
			},
			taxonomy.Asset{
				ID: "SCI2-A2", Name: "Retail Montpellier", Category: taxonomy.Retail,
				Value: eur(8), ConstructionYear: 1992, EPC: "D",
				SDGScore: taxonomy.S(2.0), ESGScore: taxonomy.S(9.0), DNSH: false,
			},
		),
		// 75% owned, fully consolidated: 70% of the reported value is sustainable.
		taxonomy.NewParticipation(taxonomy.ControlledParticipation, "CP001", "Green Office OPCI",
			75, eur(60), eur(42)),
		taxonomy.NewParticipation(taxonomy.UncontrolledParticipation, "UP001", "Retail SCPI",
			30, eur(40), eur(26)),
		taxonomy.NewParticipation(taxonomy.UncontrolledParticipation, "UP002", "Eco-Logistics Fund",
			25, eur(30), eur(24)),
		taxonomy.NewParticipation(taxonomy.MinorityStake, "MS001", "Urban Renewal Fund",
			10, eur(25), eur(13.75)),
		taxonomy.NewPEFund("PEF001", "Green Infrastructure PE",
			eur(20), 60, "fund manager's report"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not build the example fund: %w", err)
	}
	return fund, nil
}
