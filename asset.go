package taxonomy

import "fmt"

// Category classifies a real estate asset by use.
type Category int

const (
	Office Category = iota
	Retail
	Logistics
	Hotel
	Warehouse
	Residential
	Other
)

func (c Category) String() string {
	switch c {
	case Office:
		return "office"
	case Retail:
		return "retail"
	case Logistics:
		return "logistics"
	case Hotel:
		return "hotel"
	case Warehouse:
		return "warehouse"
	case Residential:
		return "residential"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "office":
		return Office, nil
	case "retail":
		return Retail, nil
	case "logistics":
		return Logistics, nil
	case "hotel":
		return Hotel, nil
	case "warehouse":
		return Warehouse, nil
	case "residential":
		return Residential, nil
	case "other", "":
		return Other, nil
	default:
		return 0, fmt.Errorf("unknown asset category: %q", s)
	}
}

func (c Category) MarshalJSON() ([]byte, error) { return []byte(`"` + c.String() + `"`), nil }

func (c *Category) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid asset category: %s", string(b))
	}
	v, err := ParseCategory(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Asset is a single real estate asset with its market value and the
// attributes the eligibility screening relies on.
//
// ConstructionYear selects the technical-criterion path: buildings built
// before 2020 are screened on EPC class or building-stock percentile,
// buildings from 2020 on are screened against the NZEB reference. A zero
// ConstructionYear means the era is unknown.
type Asset struct {
	ID       string
	Name     string
	Category Category
	Value    Money

	// Technical attributes.
	ConstructionYear int
	EPC              string // energy performance certificate class ("A".."G")
	StockPercentile  Score  // position in the national building stock, 0-100, lower is better
	NZEBDelta        Score  // % energy demand relative to the NZEB reference, negative is better
	RenovationEnergyReduction Score // % reduction in primary energy demand after renovation
	RenovationGHGReduction    Score // % reduction in GHG emissions after renovation

	// Eligibility inputs.
	SDGScore  Score // contribution to UN SDGs, 0-10
	ESGScore  Score // internal ESG rating, 0-20
	MSCIScore Score // external (MSCI-style) rating, 0-10
	DNSH      bool  // do-no-significant-harm compliance
}

// Check validates the asset's values against their scales. It returns a
// ValidationError on the first violation.
func (a Asset) Check() error {
	if a.Value.IsNegative() {
		return validationErrorf(a.ID, "market value %s is negative", a.Value)
	}
	if !a.SDGScore.Within(0, 10) {
		return validationErrorf(a.ID, "SDG score %.1f outside the 0-10 scale", a.SDGScore.Value())
	}
	if !a.ESGScore.Within(0, 20) {
		return validationErrorf(a.ID, "ESG score %.1f outside the 0-20 scale", a.ESGScore.Value())
	}
	if !a.MSCIScore.Within(0, 10) {
		return validationErrorf(a.ID, "MSCI score %.1f outside the 0-10 scale", a.MSCIScore.Value())
	}
	if !a.StockPercentile.Within(0, 100) {
		return validationErrorf(a.ID, "building-stock percentile %.1f outside the 0-100 scale", a.StockPercentile.Value())
	}
	return nil
}

// hasRenovationData reports whether the asset carries post-renovation
// measurements, enabling the renovation screening path regardless of era.
func (a Asset) hasRenovationData() bool {
	return a.RenovationEnergyReduction.IsSet() || a.RenovationGHGReduction.IsSet()
}
