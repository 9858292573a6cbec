package taxonomy

import (
	"strings"
	"time"

	"github.com/etnz/taxonomy/date"
)

// Classification thresholds for the advisory flags. A fund whose
// sustainable ratio clears SubstantialProportion supports an "Article 8"
// framing, PredominantFocus an "Article 9" framing. The flags are
// informative only; the declared article on the fund is never validated
// against them.
const (
	SubstantialProportion = Percent(50)
	PredominantFocus      = Percent(80)
)

// CategoryTotal is one row of the calculation report: the consolidated
// figures of every investment sharing an ownership class.
type CategoryTotal struct {
	Class         OwnershipClass
	Value         Money
	Sustainable   Money
	Ratio         Percent
	LowConfidence bool // true when any figure in the row is estimation-based
}

// CalculationReport is the outcome of a fund calculation: per-category
// rows in first-occurrence order, fund totals, and the advisory
// classification flags. A report is built fresh by NewCalculationReport
// and never mutated afterwards.
type CalculationReport struct {
	FundName      string
	Article       string
	ReportingDate date.Date
	Time          time.Time // Generation time

	Categories []CategoryTotal

	TotalValue       Money
	SustainableValue Money
	Ratio            Percent

	SubstantialProportion bool
	PredominantFocus      bool

	// Warnings lists non-fatal findings: assets screened out for lack of
	// data, and estimation-based figures. The calculation still completed.
	Warnings []string
}

// NewCalculationReport aggregates every investment of the fund and rolls
// the outcomes up into category and fund totals.
//
// A ValidationError or DataError on any node aborts the whole
// calculation: no partial report is returned and the error names the
// offending record. Missing eligibility data on an asset is not fatal:
// the asset counts as ineligible and the finding is kept in Warnings.
func NewCalculationReport(f *Fund, c Criteria) (*CalculationReport, error) {
	report := &CalculationReport{
		FundName:      f.Name,
		Article:       f.Article,
		ReportingDate: f.ReportingDate,
		Time:          time.Now(),
	}

	// Group aggregates by ownership class, keeping the order in which
	// each class first appears in the fund.
	index := make(map[OwnershipClass]int)
	for _, inv := range f.Investments() {
		agg, err := aggregate(inv, c)
		if err != nil {
			return nil, err
		}

		i, ok := index[inv.Class]
		if !ok {
			i = len(report.Categories)
			index[inv.Class] = i
			report.Categories = append(report.Categories, CategoryTotal{Class: inv.Class})
		}
		row := &report.Categories[i]
		row.Value = row.Value.Add(agg.Value)
		row.Sustainable = row.Sustainable.Add(agg.Sustainable)
		if agg.LowConfidence {
			row.LowConfidence = true
			report.Warnings = append(report.Warnings,
				inv.ID+": sustainable value is a low-confidence estimate ("+inv.EstimationMethod+")")
		}

		for _, a := range inv.Assets {
			for _, reason := range c.Evaluate(a).Reasons {
				if strings.Contains(reason, "insufficient data") {
					report.Warnings = append(report.Warnings, reason)
				}
			}
		}
	}

	for i := range report.Categories {
		row := &report.Categories[i]
		row.Ratio = row.Sustainable.Ratio(row.Value)
		report.TotalValue = report.TotalValue.Add(row.Value)
		report.SustainableValue = report.SustainableValue.Add(row.Sustainable)
	}
	report.Ratio = report.SustainableValue.Ratio(report.TotalValue)
	report.SubstantialProportion = report.Ratio > SubstantialProportion
	report.PredominantFocus = report.Ratio > PredominantFocus

	return report, nil
}

// Category returns the report row for a class, or false when the fund
// holds no investment of that class.
func (r *CalculationReport) Category(class OwnershipClass) (CategoryTotal, bool) {
	for _, row := range r.Categories {
		if row.Class == class {
			return row, true
		}
	}
	return CategoryTotal{}, false
}

func (row CategoryTotal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("class", row.Class)
	w.Append("totalValue", row.Value)
	w.Append("sustainableValue", row.Sustainable)
	w.Append("ratio", float64(row.Ratio))
	w.Optional("lowConfidence", row.LowConfidence)
	return w.MarshalJSON()
}

func (r *CalculationReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("fundName", r.FundName)
	w.Optional("article", r.Article)
	w.Optional("reportingDate", r.ReportingDate)
	w.Append("categories", r.Categories)
	w.Append("totalValue", r.TotalValue)
	w.Append("sustainableValue", r.SustainableValue)
	w.Append("ratio", float64(r.Ratio))
	w.Append("substantialProportion", r.SubstantialProportion)
	w.Append("predominantFocus", r.PredominantFocus)
	w.Optional("warnings", r.Warnings)
	return w.MarshalJSON()
}
