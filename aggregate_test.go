package taxonomy

import (
	"errors"
	"testing"
)

func TestAggregateDirect(t *testing.T) {
	inv := NewDirect("D1", "Direct assets",
		greenAsset("A1", 25),
		brownAsset("A2", 15),
		greenAsset("A3", 12),
	)

	got, err := aggregate(inv, DefaultCriteria())
	if err != nil {
		t.Fatalf("aggregate() error = %v", err)
	}
	if !got.Value.Equal(EUR(52)) {
		t.Errorf("Value = %v, want %v", got.Value, EUR(52))
	}
	if !got.Sustainable.Equal(EUR(37)) {
		t.Errorf("Sustainable = %v, want %v", got.Sustainable, EUR(37))
	}
	if got.LowConfidence {
		t.Errorf("direct assets must not be low confidence")
	}
}

func TestAggregateVehicleLookThrough(t *testing.T) {
	// A wholly-owned vehicle aggregates exactly like a direct holding.
	assets := []Asset{greenAsset("A1", 30), brownAsset("A2", 20)}

	direct, err := aggregate(NewDirect("D1", "", assets...), DefaultCriteria())
	if err != nil {
		t.Fatalf("aggregate(direct) error = %v", err)
	}
	vehicle, err := aggregate(NewVehicle("V1", "SCI Alpha", assets...), DefaultCriteria())
	if err != nil {
		t.Fatalf("aggregate(vehicle) error = %v", err)
	}

	if !direct.Value.Equal(vehicle.Value) || !direct.Sustainable.Equal(vehicle.Sustainable) {
		t.Errorf("vehicle look-through = %+v, want same as direct %+v", vehicle, direct)
	}
}

func TestAggregateControlledFullConsolidation(t *testing.T) {
	// Full consolidation: ownership percentage does not scale anything.
	for _, ownership := range []Percent{51, 75, 99} {
		inv := NewParticipation(ControlledParticipation, "CP1", "", ownership, EUR(60), EUR(42))
		got, err := aggregate(inv, DefaultCriteria())
		if err != nil {
			t.Fatalf("aggregate(%s) error = %v", ownership, err)
		}
		if !got.Value.Equal(EUR(60)) {
			t.Errorf("ownership %s: Value = %v, want %v", ownership, got.Value, EUR(60))
		}
		if !got.Sustainable.Equal(EUR(42)) {
			t.Errorf("ownership %s: Sustainable = %v, want %v", ownership, got.Sustainable, EUR(42))
		}
	}
}

func TestAggregateProportional(t *testing.T) {
	tests := []struct {
		class           OwnershipClass
		ownership       Percent
		wantValue       Money
		wantSustainable Money
	}{
		{UncontrolledParticipation, 30, EUR(3), EUR(2.4)},
		{UncontrolledParticipation, 50, EUR(5), EUR(4)},
		{MinorityStake, 10, EUR(1), EUR(0.8)},
	}
	for _, tt := range tests {
		inv := NewParticipation(tt.class, "P1", "", tt.ownership, EUR(10), EUR(8))
		got, err := aggregate(inv, DefaultCriteria())
		if err != nil {
			t.Fatalf("aggregate(%s %s) error = %v", tt.class, tt.ownership, err)
		}
		if !got.Value.Equal(tt.wantValue) {
			t.Errorf("%s %s: Value = %v, want %v", tt.class, tt.ownership, got.Value, tt.wantValue)
		}
		if !got.Sustainable.Equal(tt.wantSustainable) {
			t.Errorf("%s %s: Sustainable = %v, want %v", tt.class, tt.ownership, got.Sustainable, tt.wantSustainable)
		}
	}
}

func TestAggregatePEFundEstimation(t *testing.T) {
	inv := NewPEFund("PE1", "Green PE I", EUR(20), 40, "sectoral averages")
	got, err := aggregate(inv, DefaultCriteria())
	if err != nil {
		t.Fatalf("aggregate() error = %v", err)
	}
	if !got.Value.Equal(EUR(20)) {
		t.Errorf("Value = %v, want %v", got.Value, EUR(20))
	}
	if !got.Sustainable.Equal(EUR(8)) {
		t.Errorf("Sustainable = %v, want %v", got.Sustainable, EUR(8))
	}
	if !got.LowConfidence {
		t.Errorf("PE fund estimation must be flagged low confidence")
	}
}

func TestAggregateOwnershipBounds(t *testing.T) {
	tests := []struct {
		class     OwnershipClass
		ownership Percent
		ok        bool
	}{
		{ControlledParticipation, 50, false},
		{ControlledParticipation, 50.5, true},
		{UncontrolledParticipation, 19, false},
		{UncontrolledParticipation, 20, true},
		{UncontrolledParticipation, 50, true},
		{UncontrolledParticipation, 51, false},
		{MinorityStake, 25, false},
		{MinorityStake, 19.9, true},
		{MinorityStake, 101, false},
	}
	for _, tt := range tests {
		inv := NewParticipation(tt.class, "P1", "", tt.ownership, EUR(10), EUR(5))
		_, err := aggregate(inv, DefaultCriteria())
		if tt.ok && err != nil {
			t.Errorf("%s at %s: unexpected error %v", tt.class, tt.ownership, err)
		}
		if !tt.ok {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("%s at %s: error = %v, want a ValidationError", tt.class, tt.ownership, err)
			}
		}
	}
}

func TestAggregateStructuralErrors(t *testing.T) {
	var derr *DataError

	// A participation must not carry an asset list.
	inv := NewParticipation(UncontrolledParticipation, "P1", "", 30, EUR(10), EUR(5))
	inv.Assets = []Asset{greenAsset("A1", 5)}
	if _, err := aggregate(inv, DefaultCriteria()); !errors.As(err, &derr) {
		t.Errorf("participation with assets: error = %v, want a DataError", err)
	}

	// A look-through node must not carry reported figures.
	inv = NewDirect("D1", "", greenAsset("A1", 5))
	inv.Reported = &Reported{Value: EUR(10)}
	if _, err := aggregate(inv, DefaultCriteria()); !errors.As(err, &derr) {
		t.Errorf("direct with reported figures: error = %v, want a DataError", err)
	}

	// A participation must carry reported figures.
	inv = &Investment{ID: "P2", Class: MinorityStake, Ownership: 10}
	if _, err := aggregate(inv, DefaultCriteria()); !errors.As(err, &derr) {
		t.Errorf("participation without figures: error = %v, want a DataError", err)
	}
}

func TestAggregateNegativeValues(t *testing.T) {
	var verr *ValidationError

	inv := NewDirect("D1", "", Asset{ID: "A1", Value: EUR(-1)})
	if _, err := aggregate(inv, DefaultCriteria()); !errors.As(err, &verr) {
		t.Errorf("negative asset value: error = %v, want a ValidationError", err)
	}

	inv = NewParticipation(MinorityStake, "P1", "", 10, EUR(-10), EUR(5))
	if _, err := aggregate(inv, DefaultCriteria()); !errors.As(err, &verr) {
		t.Errorf("negative reported value: error = %v, want a ValidationError", err)
	}
}
