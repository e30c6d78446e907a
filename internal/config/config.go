// Package config loads the study configuration: stratum weights, overlap
// areas, year range and dataset locations. Configuration is loaded once at
// startup and treated as immutable afterwards.
package config

import (
	"strconv"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"cropscope/core/types"
	"cropscope/internal/errors"
)

// Config is the root study configuration.
type Config struct {
	// Years is the inclusive study year range
	Years YearsBlock `hcl:"years,block"`

	// CountryColumns lists the observed-area columns to estimate, named
	// by the {country_code}_mill_acres convention
	CountryColumns []string `hcl:"country_columns"`

	// ExclusiveCountries are sampled in the first subregion only; their
	// series bypass combination
	ExclusiveCountries []string `hcl:"exclusive_countries,optional"`

	// GrossFile and NetFile locate the observed-area datasets
	GrossFile string `hcl:"gross_file,optional"`
	NetFile   string `hcl:"net_file,optional"`

	// Subregions holds exactly two subregion blocks. The first must name
	// its eco-regions; the second covers the complement.
	Subregions []SubregionConfig `hcl:"subregion,block"`
}

// YearsBlock is the inclusive study year range block.
type YearsBlock struct {
	Start int `hcl:"start"`
	End   int `hcl:"end"`
}

// Range converts the block into the core year-range type.
func (y YearsBlock) Range() types.YearRange {
	return types.YearRange{Start: y.Start, End: y.End}
}

// SubregionConfig describes one geographic subregion.
type SubregionConfig struct {
	// Name is the block label, e.g. "great_plains"
	Name string `hcl:"name,label"`

	// EcoRegions lists eco_region values belonging to this subregion
	EcoRegions []string `hcl:"eco_regions,optional"`

	// AccuracyFile locates the subregion's validation points CSV
	AccuracyFile string `hcl:"accuracy_file,optional"`

	// StrataWeights maps stratum IDs (as strings, HCL keys) to w_h
	StrataWeights map[string]float64 `hcl:"strata_weights"`

	// OverlapAreas maps country codes, plus "total", to region area
	OverlapAreas map[string]float64 `hcl:"overlap_areas"`
}

// Weights converts the HCL string-keyed weights into typed stratum weights.
func (s *SubregionConfig) Weights() (types.StrataWeights, error) {
	weights := make(types.StrataWeights, len(s.StrataWeights))
	for key, w := range s.StrataWeights {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.Config("subregion %q: stratum id %q is not an integer", s.Name, key)
		}
		weights[types.StratumID(id)] = w
	}
	return weights, nil
}

// Load reads and validates a study configuration from an HCL file.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, errors.Parsing("decoding study configuration", err).
			WithContext("path", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if err := c.Years.Range().Validate(); err != nil {
		return err
	}
	if len(c.CountryColumns) == 0 {
		return errors.Config("country_columns is empty")
	}
	if len(c.Subregions) != 2 {
		return errors.Config("expected exactly 2 subregion blocks, got %d", len(c.Subregions))
	}
	if len(c.Subregions[0].EcoRegions) == 0 {
		return errors.Config("subregion %q must list its eco_regions; the second subregion takes the complement",
			c.Subregions[0].Name)
	}

	for i := range c.Subregions {
		sub := &c.Subregions[i]
		weights, err := sub.Weights()
		if err != nil {
			return err
		}
		if err := weights.Validate(); err != nil {
			return errors.Config("subregion %q: %v", sub.Name, err)
		}
		if _, ok := sub.OverlapAreas["total"]; !ok {
			return errors.Config("subregion %q: overlap_areas must include a %q entry", sub.Name, "total")
		}
	}
	return nil
}

// RegionA returns the first subregion block.
func (c *Config) RegionA() *SubregionConfig {
	return &c.Subregions[0]
}

// RegionB returns the second subregion block.
func (c *Config) RegionB() *SubregionConfig {
	return &c.Subregions[1]
}
