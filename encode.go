package taxonomy

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/taxonomy/date"
	"github.com/shopspring/decimal"
)

// This file contains code to read a fund description from a JSON document
// and to write calculation reports back out. The document is meant to be
// edited by hand and versioned, so reads are validating and writes keep a
// stable field order.
//
// Monetary amounts are plain numbers in the fund's single currency,
// declared once in the header.

// to parse a json, we use dedicated local structs with tag annotations.

type jscore = *float64

type jasset struct {
	ID               string `json:"id"`
	Name             string `json:"name,omitempty"`
	Category         string `json:"category,omitempty"`
	Value            decimal.Decimal `json:"value"`
	ConstructionYear int    `json:"constructionYear,omitempty"`
	EPC              string `json:"epc,omitempty"`
	StockPercentile  jscore `json:"stockPercentile,omitempty"`
	NZEBDelta        jscore `json:"nzebDelta,omitempty"`
	RenovationEnergyReduction jscore `json:"renovationEnergyReduction,omitempty"`
	RenovationGHGReduction    jscore `json:"renovationGhgReduction,omitempty"`
	SDGScore         jscore `json:"sdgScore,omitempty"`
	ESGScore         jscore `json:"esgScore,omitempty"`
	MSCIScore        jscore `json:"msciScore,omitempty"`
	DNSH             bool   `json:"dnsh,omitempty"`
}

type jreported struct {
	Value       decimal.Decimal `json:"value"`
	Sustainable decimal.Decimal `json:"sustainable"`
}

type jinvestment struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Class     string     `json:"class"`
	Ownership *float64   `json:"ownership,omitempty"`
	Assets    []jasset   `json:"assets,omitempty"`
	Reported  *jreported `json:"reported,omitempty"`
	EstimatedSustainableRatio *float64 `json:"estimatedSustainableRatio,omitempty"`
	EstimationMethod          string   `json:"estimationMethod,omitempty"`
}

type jfund struct {
	Name          string        `json:"name"`
	Article       string        `json:"article,omitempty"`
	ReportingDate string        `json:"reportingDate,omitempty"`
	Currency      string        `json:"currency,omitempty"`
	Investments   []jinvestment `json:"investments"`
}

func toScore(v jscore) Score {
	if v == nil {
		return Score{}
	}
	return S(*v)
}

// DecodeFund reads a fund description from r and returns a validated
// Fund. The error identifies the offending record when the document is
// structurally valid JSON but fails validation.
func DecodeFund(r io.Reader) (*Fund, error) {
	var jf jfund
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jf); err != nil {
		return nil, fmt.Errorf("format error in fund document: %w", err)
	}

	currency := jf.Currency
	if currency == "" {
		currency = "EUR"
	}

	var on date.Date
	if jf.ReportingDate != "" {
		var err error
		on, err = date.Parse(jf.ReportingDate)
		if err != nil {
			return nil, fmt.Errorf("format error in fund document: %w", err)
		}
	}

	fund := NewFund(jf.Name, jf.Article, on)
	for _, ji := range jf.Investments {
		class, err := ParseOwnershipClass(ji.Class)
		if err != nil {
			return nil, fmt.Errorf("format error in investment %q: %w", ji.ID, err)
		}

		inv := &Investment{ID: ji.ID, Name: ji.Name, Class: class, Ownership: 100}
		if ji.Ownership != nil {
			inv.Ownership = Percent(*ji.Ownership)
		}
		if ji.EstimatedSustainableRatio != nil {
			inv.EstimatedSustainableRatio = Percent(*ji.EstimatedSustainableRatio)
		}
		inv.EstimationMethod = ji.EstimationMethod

		for _, ja := range ji.Assets {
			category, err := ParseCategory(ja.Category)
			if err != nil {
				return nil, fmt.Errorf("format error in asset %q: %w", ja.ID, err)
			}
			inv.Assets = append(inv.Assets, Asset{
				ID:               ja.ID,
				Name:             ja.Name,
				Category:         category,
				Value:            M(ja.Value, currency),
				ConstructionYear: ja.ConstructionYear,
				EPC:              ja.EPC,
				StockPercentile:  toScore(ja.StockPercentile),
				NZEBDelta:        toScore(ja.NZEBDelta),
				RenovationEnergyReduction: toScore(ja.RenovationEnergyReduction),
				RenovationGHGReduction:    toScore(ja.RenovationGHGReduction),
				SDGScore:         toScore(ja.SDGScore),
				ESGScore:         toScore(ja.ESGScore),
				MSCIScore:        toScore(ja.MSCIScore),
				DNSH:             ja.DNSH,
			})
		}
		if ji.Reported != nil {
			inv.Reported = &Reported{
				Value:       M(ji.Reported.Value, currency),
				Sustainable: M(ji.Reported.Sustainable, currency),
			}
		}

		if err := fund.Append(inv); err != nil {
			return nil, err
		}
	}
	return fund, nil
}

// EncodeFund writes the fund as an indented JSON document, the format
// DecodeFund reads.
func EncodeFund(w io.Writer, f *Fund) error {
	jf := jfund{
		Name:    f.Name,
		Article: f.Article,
	}
	if !f.ReportingDate.IsZero() {
		jf.ReportingDate = f.ReportingDate.String()
	}

	fromScore := func(s Score) jscore {
		if !s.IsSet() {
			return nil
		}
		v := s.Value()
		return &v
	}

	for _, inv := range f.Investments() {
		ji := jinvestment{
			ID:               inv.ID,
			Name:             inv.Name,
			Class:            inv.Class.String(),
			EstimationMethod: inv.EstimationMethod,
		}
		if !inv.Class.lookThrough() && inv.Class != PEFundParticipation {
			o := float64(inv.Ownership)
			ji.Ownership = &o
		}
		if inv.Class == PEFundParticipation {
			r := float64(inv.EstimatedSustainableRatio)
			ji.EstimatedSustainableRatio = &r
		}
		for _, a := range inv.Assets {
			if jf.Currency == "" {
				jf.Currency = a.Value.Currency()
			}
			ji.Assets = append(ji.Assets, jasset{
				ID:               a.ID,
				Name:             a.Name,
				Category:         a.Category.String(),
				Value:            a.Value.value,
				ConstructionYear: a.ConstructionYear,
				EPC:              a.EPC,
				StockPercentile:  fromScore(a.StockPercentile),
				NZEBDelta:        fromScore(a.NZEBDelta),
				RenovationEnergyReduction: fromScore(a.RenovationEnergyReduction),
				RenovationGHGReduction:    fromScore(a.RenovationGHGReduction),
				SDGScore:         fromScore(a.SDGScore),
				ESGScore:         fromScore(a.ESGScore),
				MSCIScore:        fromScore(a.MSCIScore),
				DNSH:             a.DNSH,
			})
		}
		if inv.Reported != nil {
			if jf.Currency == "" {
				jf.Currency = inv.Reported.Value.Currency()
			}
			ji.Reported = &jreported{
				Value:       inv.Reported.Value.value,
				Sustainable: inv.Reported.Sustainable.value,
			}
		}
		jf.Investments = append(jf.Investments, ji)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jf)
}

// EncodeReport writes the calculation report as an indented JSON document
// with a stable field order.
func EncodeReport(w io.Writer, r *CalculationReport) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode calculation report: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
