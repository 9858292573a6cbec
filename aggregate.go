package taxonomy

// Aggregate is the contribution of one investment node to the fund:
// its consolidated value and the sustainable part of it, both already
// scaled by the consolidation rule of the node's ownership class.
// LowConfidence marks estimation-based figures (PE fund participations).
type Aggregate struct {
	Value         Money
	Sustainable   Money
	LowConfidence bool
}

// aggregate applies the consolidation rule matching the investment's
// ownership class:
//
//   - Direct and WhollyOwnedVehicle sum their assets, counting an asset's
//     full value as sustainable when it passes the eligibility screening.
//     A wholly-owned vehicle is treated exactly like a direct holding
//     (full look-through).
//   - ControlledParticipation is fully consolidated: 100% of the reported
//     figures regardless of the ownership percentage. 51% and 99%
//     consolidate identically.
//   - UncontrolledParticipation and MinorityStake are scaled by
//     ownership/100, on both the reported value and the reported
//     sustainable value.
//   - PEFundParticipation applies the externally estimated sustainable
//     ratio to the reported value and flags the result low confidence.
//
// The node is validated first; a ValidationError or DataError here aborts
// the calculation of the whole fund.
func aggregate(inv *Investment, c Criteria) (Aggregate, error) {
	if err := inv.Check(); err != nil {
		return Aggregate{}, err
	}

	switch inv.Class {
	case Direct, WhollyOwnedVehicle:
		var agg Aggregate
		for _, a := range inv.Assets {
			agg.Value = agg.Value.Add(a.Value)
			if c.Evaluate(a).Sustainable {
				agg.Sustainable = agg.Sustainable.Add(a.Value)
			}
		}
		return agg, nil

	case ControlledParticipation:
		return Aggregate{
			Value:       inv.Reported.Value,
			Sustainable: inv.Reported.Sustainable,
		}, nil

	case UncontrolledParticipation, MinorityStake:
		return Aggregate{
			Value:       inv.Reported.Value.Share(inv.Ownership),
			Sustainable: inv.Reported.Sustainable.Share(inv.Ownership),
		}, nil

	case PEFundParticipation:
		return Aggregate{
			Value:         inv.Reported.Value,
			Sustainable:   inv.Reported.Value.Share(inv.EstimatedSustainableRatio),
			LowConfidence: true,
		}, nil

	default:
		return Aggregate{}, validationErrorf(inv.ID, "unknown ownership class %d", inv.Class)
	}
}
