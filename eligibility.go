package taxonomy

import "fmt"

// Criteria holds the thresholds an asset is screened against. Funds may
// tighten them; DefaultCriteria carries the values from the SFDR/taxonomy
// guidelines this calculator follows.
type Criteria struct {
	MinSDG  float64 // minimum SDG contribution score, 0-10 scale
	MinESG  float64 // minimum internal ESG score, 0-20 scale
	MinMSCI float64 // minimum external (MSCI-style) score, 0-10 scale
}

// DefaultCriteria returns the guideline thresholds.
func DefaultCriteria() Criteria {
	return Criteria{MinSDG: 2.5, MinESG: 8, MinMSCI: 4}
}

// Eligibility is the outcome of screening a single asset. Reasons lists,
// for an ineligible asset, every rule that failed.
type Eligibility struct {
	Sustainable bool
	Reasons     []string
}

// Evaluate screens an asset against the criteria. An asset is sustainable
// iff it contributes to an environmental or social objective (SDG score),
// does no significant harm (DNSH), follows good governance practices
// (internal or external rating), and meets at least one technical
// screening criterion for its building era.
//
// Missing data never passes a rule: absent governance scores fail the
// governance rule, and an unknown era without renovation measurements
// fails the technical rule. Both are reported as insufficient data rather
// than guessed.
func (c Criteria) Evaluate(a Asset) Eligibility {
	var reasons []string

	if !a.SDGScore.AtLeast(c.MinSDG) {
		if !a.SDGScore.IsSet() {
			reasons = append(reasons, fmt.Sprintf("%s: insufficient data: no SDG contribution score", a.ID))
		} else {
			reasons = append(reasons, fmt.Sprintf("%s: SDG score %.1f below the %.1f threshold", a.ID, a.SDGScore.Value(), c.MinSDG))
		}
	}

	if !a.DNSH {
		reasons = append(reasons, fmt.Sprintf("%s: not DNSH compliant", a.ID))
	}

	// Governance passes if either rating clears its threshold.
	if !a.ESGScore.AtLeast(c.MinESG) && !a.MSCIScore.AtLeast(c.MinMSCI) {
		if !a.ESGScore.IsSet() && !a.MSCIScore.IsSet() {
			reasons = append(reasons, fmt.Sprintf("%s: insufficient data: no governance score", a.ID))
		} else {
			reasons = append(reasons, fmt.Sprintf("%s: governance scores below thresholds (ESG >= %.1f or MSCI >= %.1f)", a.ID, c.MinESG, c.MinMSCI))
		}
	}

	if !technicalCriterion(a) {
		if a.ConstructionYear == 0 && !a.hasRenovationData() {
			reasons = append(reasons, fmt.Sprintf("%s: insufficient data: unknown construction year and no renovation data", a.ID))
		} else {
			reasons = append(reasons, fmt.Sprintf("%s: no technical screening criterion met", a.ID))
		}
	}

	return Eligibility{Sustainable: len(reasons) == 0, Reasons: reasons}
}

// technicalCriterion checks the era-dependent technical screening rules.
func technicalCriterion(a Asset) bool {
	// Renovation path, regardless of era: a deep renovation cutting primary
	// energy demand or GHG emissions by 30% against the asset's own
	// pre-renovation baseline.
	if a.RenovationEnergyReduction.AtLeast(30) || a.RenovationGHGReduction.AtLeast(30) {
		return true
	}
	switch {
	case a.ConstructionYear == 0:
		// Unknown era and the renovation path did not apply.
		return false
	case a.ConstructionYear < 2020:
		// Existing building: best EPC class, or top 15% of the national stock.
		return a.EPC == "A" || a.StockPercentile.AtMost(15)
	default:
		// New construction: at least 10% below the NZEB reference.
		return a.NZEBDelta.AtMost(-10)
	}
}
