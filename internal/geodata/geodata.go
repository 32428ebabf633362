// Package geodata serves the static reference datasets: the administrative
// hierarchy used by the location step and the price-per-square-metre table
// used by the valuation engine. Both are embedded and read-only.
package geodata

import (
	"encoding/json"

	_ "embed"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/errors"
)

//go:embed regions.json
var regionsJSON []byte

//go:embed prices.json
var pricesJSON []byte

// DefaultPricePerSqm is used when a sub-region has no entry in the price table.
const DefaultPricePerSqm = 1500

// Region is a distrito with its concelhos.
type Region struct {
	Name       string      `json:"distrito"`
	SubRegions []SubRegion `json:"concelhos"`
}

// SubRegion is a concelho with its freguesias.
type SubRegion struct {
	Name       string   `json:"nome"`
	LocalAreas []string `json:"freguesias"`
}

// Atlas is the region → sub-region → local-area hierarchy.
type Atlas struct {
	regions []Region
}

// NewAtlas parses the embedded hierarchy.
func NewAtlas() (*Atlas, error) {
	var regions []Region
	if err := json.Unmarshal(regionsJSON, &regions); err != nil {
		return nil, errors.Wrap(err, "parse regions dataset")
	}
	return &Atlas{regions: regions}, nil
}

// Regions lists the region names in dataset order.
func (a *Atlas) Regions() []string {
	names := make([]string, 0, len(a.regions))
	for _, r := range a.regions {
		names = append(names, r.Name)
	}
	return names
}

// SubRegions lists the sub-regions of a region, or nil if the region is unknown.
func (a *Atlas) SubRegions(region string) []string {
	for _, r := range a.regions {
		if r.Name != region {
			continue
		}
		names := make([]string, 0, len(r.SubRegions))
		for _, s := range r.SubRegions {
			names = append(names, s.Name)
		}
		return names
	}
	return nil
}

// LocalAreas lists the local areas of a sub-region, or nil if the pair is unknown.
func (a *Atlas) LocalAreas(region, subRegion string) []string {
	for _, r := range a.regions {
		if r.Name != region {
			continue
		}
		for _, s := range r.SubRegions {
			if s.Name == subRegion {
				return append([]string(nil), s.LocalAreas...)
			}
		}
	}
	return nil
}

// ContainsLocation reports whether the region, sub-region, and local area form
// a valid path through the hierarchy.
func (a *Atlas) ContainsLocation(region, subRegion, localArea string) bool {
	for _, area := range a.LocalAreas(region, subRegion) {
		if area == localArea {
			return true
		}
	}
	return false
}

// PriceTable maps a sub-region name to its price per square metre.
type PriceTable map[string]float64

// NewPriceTable parses the embedded price dataset.
func NewPriceTable() (PriceTable, error) {
	var table PriceTable
	if err := json.Unmarshal(pricesJSON, &table); err != nil {
		return nil, errors.Wrap(err, "parse prices dataset")
	}
	return table, nil
}

// Lookup returns the price per square metre for a sub-region, falling back to
// DefaultPricePerSqm for absent entries.
func (t PriceTable) Lookup(subRegion string) float64 {
	if price, ok := t[subRegion]; ok {
		return price
	}
	return DefaultPricePerSqm
}
