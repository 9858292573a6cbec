package taxonomy

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to import reported figures from valuation
// provider exports. Participations and PE funds are valued by external
// administrators; their NAV feeds are merged into the fund document ahead
// of a calculation instead of being typed in by hand.

// NAVExportFigure is one vehicle entry of a provider NAV export: the
// reported total value and, when the provider computes one, the reported
// sustainable value.
type NAVExportFigure struct {
	Value       Money
	Sustainable Money
}

// DecodeNAVExport extracts per-vehicle figures from a provider NAV export
// read from r. Providers disagree on envelopes but all expose a vehicles
// array with id and nav figures, so the extraction goes through JSONPath
// rather than a rigid schema:
//
//	{"vehicles": [{"id": "CP001", "nav": {"total": 60.0, "sustainable": 42.0}}, ...]}
//
// Amounts are read in the given currency. Vehicles without a sustainable
// figure are imported with a zero sustainable value.
func DecodeNAVExport(r io.Reader, currency string) (map[string]NAVExportFigure, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("format error in NAV export: %w", err)
	}

	jval, err := jsonpath.Get("$.vehicles", jobj)
	if err != nil {
		return nil, fmt.Errorf("no vehicles array in NAV export: %w", err)
	}
	jvehicles, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("no vehicles array in NAV export: got %T", jval)
	}

	figures := make(map[string]NAVExportFigure, len(jvehicles))
	for i, jvehicle := range jvehicles {
		id, err := jsonpathString(jvehicle, "$.id")
		if err != nil {
			return nil, fmt.Errorf("vehicle #%d in NAV export: %w", i, err)
		}
		total, err := jsonpathFloat(jvehicle, "$.nav.total")
		if err != nil {
			return nil, fmt.Errorf("vehicle %q in NAV export: %w", id, err)
		}
		// a missing sustainable figure is common, not an error.
		sustainable, err := jsonpathFloat(jvehicle, "$.nav.sustainable")
		if err != nil {
			sustainable = 0
		}
		figures[id] = NAVExportFigure{
			Value:       M(total, currency),
			Sustainable: M(sustainable, currency),
		}
	}
	return figures, nil
}

// UpdateReported merges provider figures into the fund's participation
// nodes, matching on investment ID. Look-through nodes are never touched:
// their value comes from their own assets. It returns the IDs that were
// updated.
func (f *Fund) UpdateReported(figures map[string]NAVExportFigure) []string {
	var updated []string
	for _, inv := range f.investments {
		if inv.Class.lookThrough() || inv.Reported == nil {
			continue
		}
		fig, ok := figures[inv.ID]
		if !ok {
			continue
		}
		inv.Reported.Value = fig.Value
		if inv.Class != PEFundParticipation {
			inv.Reported.Sustainable = fig.Sustainable
		}
		updated = append(updated, inv.ID)
	}
	return updated
}

// jsonpathString evaluates path on jobj and expects a single string.
func jsonpathString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: not a string: %v", path, jval)
	}
	return s, nil
}

// jsonpathFloat evaluates path on jobj and expects a single number.
func jsonpathFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	v, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: not a number: %v", path, jval)
	}
	return v, nil
}
