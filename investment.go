package taxonomy

import "fmt"

// OwnershipClass determines the consolidation rule applied to an
// investment. The set is closed: aggregation dispatches over it with an
// exhaustive switch, so a new class is a compile-time extension point.
type OwnershipClass int

const (
	// Direct holds assets on the fund's own balance sheet.
	Direct OwnershipClass = iota
	// WhollyOwnedVehicle is a 100%-owned holding vehicle (an SCI),
	// aggregated by full look-through of its underlying assets.
	WhollyOwnedVehicle
	// ControlledParticipation (>50% ownership) is fully consolidated.
	ControlledParticipation
	// UncontrolledParticipation (20-50% ownership) is consolidated in
	// proportion to ownership.
	UncontrolledParticipation
	// MinorityStake (<20% ownership) is consolidated in proportion to
	// ownership; its reported sustainable value usually comes from
	// sectoral averages rather than asset-level data.
	MinorityStake
	// PEFundParticipation is a stake in a private equity fund with no
	// look-through at all; its sustainable value is a best-effort
	// estimate and is flagged as low confidence.
	PEFundParticipation
)

func (c OwnershipClass) String() string {
	switch c {
	case Direct:
		return "Direct"
	case WhollyOwnedVehicle:
		return "WhollyOwnedVehicle"
	case ControlledParticipation:
		return "ControlledParticipation"
	case UncontrolledParticipation:
		return "UncontrolledParticipation"
	case MinorityStake:
		return "MinorityStake"
	case PEFundParticipation:
		return "PEFundParticipation"
	default:
		return "unknown"
	}
}

// ParseOwnershipClass parses a string into an OwnershipClass.
func ParseOwnershipClass(s string) (OwnershipClass, error) {
	switch s {
	case "Direct":
		return Direct, nil
	case "WhollyOwnedVehicle":
		return WhollyOwnedVehicle, nil
	case "ControlledParticipation":
		return ControlledParticipation, nil
	case "UncontrolledParticipation":
		return UncontrolledParticipation, nil
	case "MinorityStake":
		return MinorityStake, nil
	case "PEFundParticipation":
		return PEFundParticipation, nil
	default:
		return 0, fmt.Errorf("unknown ownership class: %q", s)
	}
}

func (c OwnershipClass) MarshalJSON() ([]byte, error) { return []byte(`"` + c.String() + `"`), nil }

func (c *OwnershipClass) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid ownership class: %s", string(b))
	}
	v, err := ParseOwnershipClass(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// lookThrough reports whether the class aggregates underlying assets
// instead of reported figures.
func (c OwnershipClass) lookThrough() bool {
	return c == Direct || c == WhollyOwnedVehicle
}

// Reported carries the pre-aggregated figures of a participation whose
// underlying assets are not visible to the fund. Sustainable is the
// participation's reported (or sectoral-average estimated) sustainable
// value, before any ownership scaling.
type Reported struct {
	Value       Money
	Sustainable Money
}

// Investment is one node of the fund's ownership structure: either a set
// of directly held (or looked-through) assets, or a participation known
// only by its reported figures. Exactly one of the two branches is
// populated; Check enforces the exclusivity.
type Investment struct {
	ID        string
	Name      string
	Class     OwnershipClass
	Ownership Percent // meaningful for participation classes only

	Assets   []Asset   // Direct and WhollyOwnedVehicle
	Reported *Reported // participation classes

	// PEFundParticipation only: the estimated share of the reported value
	// that is sustainable, and how that estimate was produced.
	EstimatedSustainableRatio Percent
	EstimationMethod          string
}

// NewDirect returns a Direct investment node holding assets.
func NewDirect(id, name string, assets ...Asset) *Investment {
	return &Investment{ID: id, Name: name, Class: Direct, Ownership: 100, Assets: assets}
}

// NewVehicle returns a wholly-owned holding vehicle node; its assets are
// aggregated by full look-through.
func NewVehicle(id, name string, assets ...Asset) *Investment {
	return &Investment{ID: id, Name: name, Class: WhollyOwnedVehicle, Ownership: 100, Assets: assets}
}

// NewParticipation returns a participation node of the given class, known
// by its reported figures.
func NewParticipation(class OwnershipClass, id, name string, ownership Percent, value, sustainable Money) *Investment {
	return &Investment{
		ID:        id,
		Name:      name,
		Class:     class,
		Ownership: ownership,
		Reported:  &Reported{Value: value, Sustainable: sustainable},
	}
}

// NewPEFund returns a private-equity fund participation with an estimated
// sustainable ratio. method records how the estimate was produced (e.g.
// "sectoral averages", "manager reporting").
func NewPEFund(id, name string, value Money, estimated Percent, method string) *Investment {
	return &Investment{
		ID:                        id,
		Name:                      name,
		Class:                     PEFundParticipation,
		Ownership:                 100,
		Reported:                  &Reported{Value: value},
		EstimatedSustainableRatio: estimated,
		EstimationMethod:          method,
	}
}

// Check validates the node's structure and its class/ownership
// consistency, then the assets it holds. A class whose ownership bound is
// violated is an input error: the node is never silently reclassified.
func (inv *Investment) Check() error {
	if inv.Class.lookThrough() {
		if inv.Reported != nil {
			return dataErrorf(inv.ID, "%s carries reported figures: expected an asset list", inv.Class)
		}
	} else {
		if len(inv.Assets) > 0 {
			return dataErrorf(inv.ID, "%s carries an asset list: the aggregation path is ambiguous", inv.Class)
		}
		if inv.Reported == nil {
			return dataErrorf(inv.ID, "%s carries no reported figures", inv.Class)
		}
		if inv.Reported.Value.IsNegative() {
			return validationErrorf(inv.ID, "reported value %s is negative", inv.Reported.Value)
		}
		if inv.Reported.Sustainable.IsNegative() {
			return validationErrorf(inv.ID, "reported sustainable value %s is negative", inv.Reported.Sustainable)
		}
	}

	if inv.Ownership < 0 || inv.Ownership > 100 {
		return validationErrorf(inv.ID, "ownership %s outside the 0-100 range", inv.Ownership)
	}

	switch inv.Class {
	case ControlledParticipation:
		if inv.Ownership <= 50 {
			return validationErrorf(inv.ID, "controlled participations require >50%% ownership, got %s", inv.Ownership)
		}
	case UncontrolledParticipation:
		if inv.Ownership < 20 || inv.Ownership > 50 {
			return validationErrorf(inv.ID, "uncontrolled participations require 20-50%% ownership, got %s", inv.Ownership)
		}
	case MinorityStake:
		if inv.Ownership >= 20 {
			return validationErrorf(inv.ID, "minority stakes require <20%% ownership, got %s", inv.Ownership)
		}
	case PEFundParticipation:
		if inv.EstimatedSustainableRatio < 0 || inv.EstimatedSustainableRatio > 100 {
			return validationErrorf(inv.ID, "estimated sustainable ratio %s outside the 0-100 range", inv.EstimatedSustainableRatio)
		}
	case Direct, WhollyOwnedVehicle:
		// No ownership constraint: the fund owns these outright.
	default:
		return validationErrorf(inv.ID, "unknown ownership class %d", inv.Class)
	}

	for _, a := range inv.Assets {
		if err := a.Check(); err != nil {
			return err
		}
	}
	return nil
}
