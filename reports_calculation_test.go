package taxonomy

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/taxonomy/date"
)

func TestNewCalculationReport(t *testing.T) {
	fund := NewFund("Green Real Estate Fund", "Article 8", date.New(2024, time.December, 31))
	err := fund.Append(
		NewDirect("D1", "Direct assets",
			greenAsset("A1", 52), // eligible
			brownAsset("A2", 38), // not eligible
		),
		NewVehicle("V1", "SCI Alpha",
			greenAsset("A3", 44), // eligible
			brownAsset("A4", 8),  // not eligible
		),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	report, err := NewCalculationReport(fund, DefaultCriteria())
	if err != nil {
		t.Fatalf("NewCalculationReport() error = %v", err)
	}

	wantCategories := []CategoryTotal{
		{Class: Direct, Value: EUR(90), Sustainable: EUR(52)},
		{Class: WhollyOwnedVehicle, Value: EUR(52), Sustainable: EUR(44)},
	}
	if len(report.Categories) != len(wantCategories) {
		t.Fatalf("len(Categories) = %d, want %d", len(report.Categories), len(wantCategories))
	}
	for i, want := range wantCategories {
		got := report.Categories[i]
		if got.Class != want.Class {
			t.Errorf("Categories[%d].Class = %s, want %s", i, got.Class, want.Class)
		}
		if !got.Value.Equal(want.Value) {
			t.Errorf("Categories[%d].Value = %v, want %v", i, got.Value, want.Value)
		}
		if !got.Sustainable.Equal(want.Sustainable) {
			t.Errorf("Categories[%d].Sustainable = %v, want %v", i, got.Sustainable, want.Sustainable)
		}
	}

	if !report.TotalValue.Equal(EUR(142)) {
		t.Errorf("TotalValue = %v, want %v", report.TotalValue, EUR(142))
	}
	if !report.SustainableValue.Equal(EUR(96)) {
		t.Errorf("SustainableValue = %v, want %v", report.SustainableValue, EUR(96))
	}
	if !report.Ratio.Equal(Percent(100 * 96.0 / 142.0)) {
		t.Errorf("Ratio = %s, want ~67.61%%", report.Ratio)
	}
	if !report.SubstantialProportion {
		t.Errorf("SubstantialProportion = false, want true at %s", report.Ratio)
	}
	if report.PredominantFocus {
		t.Errorf("PredominantFocus = true, want false at %s", report.Ratio)
	}
}

// TestReportCategoryOrder checks that categories appear in first-occurrence
// order, not sorted.
func TestReportCategoryOrder(t *testing.T) {
	fund := NewFund("F", "", date.Date{})
	err := fund.Append(
		NewPEFund("PE1", "", EUR(5), 20, "sectoral averages"),
		NewDirect("D1", "", greenAsset("A1", 10)),
		NewParticipation(MinorityStake, "M1", "", 10, EUR(10), EUR(5)),
		NewDirect("D2", "", brownAsset("A2", 7)),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	report, err := NewCalculationReport(fund, DefaultCriteria())
	if err != nil {
		t.Fatalf("NewCalculationReport() error = %v", err)
	}

	want := []OwnershipClass{PEFundParticipation, Direct, MinorityStake}
	if len(report.Categories) != len(want) {
		t.Fatalf("len(Categories) = %d, want %d", len(report.Categories), len(want))
	}
	for i, class := range want {
		if report.Categories[i].Class != class {
			t.Errorf("Categories[%d].Class = %s, want %s", i, report.Categories[i].Class, class)
		}
	}

	// The two Direct nodes are merged into one row.
	row, ok := report.Category(Direct)
	if !ok {
		t.Fatalf("no Direct category")
	}
	if !row.Value.Equal(EUR(17)) {
		t.Errorf("Direct.Value = %v, want %v", row.Value, EUR(17))
	}
}

func TestReportZeroValueRatio(t *testing.T) {
	// A category with zero value yields ratio 0, not NaN and not an error.
	fund := NewFund("Empty", "", date.Date{})
	if err := fund.Append(NewDirect("D1", "")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	report, err := NewCalculationReport(fund, DefaultCriteria())
	if err != nil {
		t.Fatalf("NewCalculationReport() error = %v", err)
	}
	if row, _ := report.Category(Direct); row.Ratio != 0 {
		t.Errorf("Direct.Ratio = %s, want 0%%", row.Ratio)
	}
	if report.Ratio != 0 {
		t.Errorf("Ratio = %s, want 0%%", report.Ratio)
	}
}

// TestReportRoundTrip checks that category figures sum exactly to the fund
// totals.
func TestReportRoundTrip(t *testing.T) {
	fund := NewFund("F", "Article 8", date.Date{})
	err := fund.Append(
		NewDirect("D1", "", greenAsset("A1", 25.37), brownAsset("A2", 14.11)),
		NewVehicle("V1", "", greenAsset("A3", 9.99)),
		NewParticipation(ControlledParticipation, "CP1", "", 75, EUR(60), EUR(42)),
		NewParticipation(UncontrolledParticipation, "UP1", "", 30, EUR(10), EUR(8)),
		NewParticipation(MinorityStake, "M1", "", 15, EUR(20), EUR(12)),
		NewPEFund("PE1", "", EUR(20), 40, "sectoral averages"),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	report, err := NewCalculationReport(fund, DefaultCriteria())
	if err != nil {
		t.Fatalf("NewCalculationReport() error = %v", err)
	}

	var value, sustainable Money
	for _, row := range report.Categories {
		value = value.Add(row.Value)
		sustainable = sustainable.Add(row.Sustainable)
	}
	if !value.Equal(report.TotalValue) {
		t.Errorf("sum of category values %v != TotalValue %v", value, report.TotalValue)
	}
	if !sustainable.Equal(report.SustainableValue) {
		t.Errorf("sum of category sustainable values %v != SustainableValue %v", sustainable, report.SustainableValue)
	}
}

func TestReportAbortsOnInvalidNode(t *testing.T) {
	fund := NewFund("F", "", date.Date{})
	if err := fund.Append(NewDirect("D1", "", greenAsset("A1", 10))); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	// Corrupt a node after the fact: Append is not the only gate, the
	// calculation re-checks every node.
	fund.investments[0].Assets[0].SDGScore = S(12.0)

	report, err := NewCalculationReport(fund, DefaultCriteria())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want a ValidationError", err)
	}
	if report != nil {
		t.Errorf("report = %+v, want nil on abort", report)
	}
}

func TestReportWarnings(t *testing.T) {
	incomplete := Asset{ID: "A1", Value: EUR(10), SDGScore: S(3.0), ESGScore: S(10.0), DNSH: true}
	fund := NewFund("F", "", date.Date{})
	err := fund.Append(
		NewDirect("D1", "", incomplete),
		NewPEFund("PE1", "", EUR(5), 20, "manager reporting"),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	report, err := NewCalculationReport(fund, DefaultCriteria())
	if err != nil {
		t.Fatalf("NewCalculationReport() error = %v", err)
	}
	if len(report.Warnings) != 2 {
		t.Fatalf("Warnings = %v, want 2 entries", report.Warnings)
	}
	row, _ := report.Category(PEFundParticipation)
	if !row.LowConfidence {
		t.Errorf("PEFundParticipation row must be low confidence")
	}
}

func TestClassificationFlags(t *testing.T) {
	tests := []struct {
		sustainable float64
		substantial bool
		predominant bool
	}{
		{49, false, false},
		{50, false, false}, // strict comparison: 50% is not "more than half"
		{51, true, false},
		{80, true, false},
		{81, true, true},
		{100, true, true},
	}
	for _, tt := range tests {
		fund := NewFund("F", "", date.Date{})
		if err := fund.Append(NewParticipation(ControlledParticipation, "CP1", "", 60, EUR(100), EUR(tt.sustainable))); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		report, err := NewCalculationReport(fund, DefaultCriteria())
		if err != nil {
			t.Fatalf("NewCalculationReport() error = %v", err)
		}
		if report.SubstantialProportion != tt.substantial {
			t.Errorf("at %.0f%%: SubstantialProportion = %v, want %v", tt.sustainable, report.SubstantialProportion, tt.substantial)
		}
		if report.PredominantFocus != tt.predominant {
			t.Errorf("at %.0f%%: PredominantFocus = %v, want %v", tt.sustainable, report.PredominantFocus, tt.predominant)
		}
	}
}
