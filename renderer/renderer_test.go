package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/taxonomy"
	"github.com/etnz/taxonomy/date"
)

func testReport(t *testing.T) *taxonomy.CalculationReport {
	t.Helper()
	fund := taxonomy.NewFund("Green Real Estate Fund", "Article 8", date.New(2024, time.December, 31))
	err := fund.Append(
		taxonomy.NewDirect("DA", "Direct assets", taxonomy.Asset{
			ID: "DA001", Value: taxonomy.M(25.0, "EUR"), ConstructionYear: 2005, EPC: "A",
			SDGScore: taxonomy.S(7.5), ESGScore: taxonomy.S(15.0), DNSH: true,
		}),
		taxonomy.NewPEFund("PE001", "Green PE I", taxonomy.M(20.0, "EUR"), 40, "sectoral averages"),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	report, err := taxonomy.NewCalculationReport(fund, taxonomy.DefaultCriteria())
	if err != nil {
		t.Fatalf("NewCalculationReport() error = %v", err)
	}
	return report
}

func TestRenderCalculation(t *testing.T) {
	got := RenderCalculation(testReport(t), CalculationRenderOptions{})

	for _, want := range []string{
		"# Sustainable Investment Calculation: Green Real Estate Fund",
		"Declared classification: Article 8",
		"Reporting date: 2024-12-31",
		"| Direct |",
		"| PEFundParticipation (estimated) |",
		"## Fund Total",
		"substantial proportion",
		"## Warnings",
		"low-confidence estimate",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered markdown misses %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("rendered markdown contains a template error:\n%s", got)
	}
}

func TestRenderCalculationSkipWarnings(t *testing.T) {
	got := RenderCalculation(testReport(t), CalculationRenderOptions{SkipWarnings: true})
	if strings.Contains(got, "## Warnings") {
		t.Errorf("warnings section rendered despite SkipWarnings:\n%s", got)
	}
}
