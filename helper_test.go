package taxonomy

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// greenAsset returns a pre-2020 asset that passes every eligibility rule.
func greenAsset(id string, value float64) Asset {
	return Asset{
		ID:               id,
		Category:         Office,
		Value:            EUR(value),
		ConstructionYear: 2005,
		EPC:              "A",
		SDGScore:         S(7.5),
		ESGScore:         S(15.0),
		DNSH:             true,
	}
}

// brownAsset returns an asset that fails the technical screening but has
// complete data.
func brownAsset(id string, value float64) Asset {
	return Asset{
		ID:               id,
		Category:         Retail,
		Value:            EUR(value),
		ConstructionYear: 1995,
		EPC:              "D",
		SDGScore:         S(6.0),
		ESGScore:         S(14.0),
		DNSH:             true,
	}
}
