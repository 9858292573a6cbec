package taxonomy

import (
	"github.com/etnz/taxonomy/date"
)

// Fund is a real estate fund described by its ownership structure: an
// ordered collection of investment nodes. The order is preserved, it
// drives the category order of the calculation report.
//
// Article is the fund's declared SFDR classification ("Article 6", 8 or
// 9). It is carried as-is into the report; the calculator never checks
// the declaration against the computed ratio.
type Fund struct {
	Name          string
	Article       string
	ReportingDate date.Date

	investments []*Investment
}

// NewFund returns an empty fund.
func NewFund(name, article string, on date.Date) *Fund {
	return &Fund{Name: name, Article: article, ReportingDate: on}
}

// Append validates and appends investment nodes to the fund. On the first
// invalid node the fund is left untouched and the error (ValidationError
// or DataError) identifies the offending record.
func (f *Fund) Append(investments ...*Investment) error {
	for _, inv := range investments {
		if err := inv.Check(); err != nil {
			return err
		}
	}
	f.investments = append(f.investments, investments...)
	return nil
}

// Investments returns the fund's investment nodes in insertion order.
// The returned slice is shared: callers must not mutate it during a
// calculation.
func (f *Fund) Investments() []*Investment { return f.investments }
