package config

import (
	"os"
	"path/filepath"
)

// Default returns the North American cropland study configuration: Great
// Plains and Southern subregions, 1996 through 2021, areas in million acres.
func Default() *Config {
	return &Config{
		Years:              YearsBlock{Start: 1996, End: 2021},
		CountryColumns:     []string{"us_mill_acres", "canada_mill_acres", "mx_mill_acres", "total_mill_acres"},
		ExclusiveCountries: []string{"canada"},
		GrossFile:          "data/input/cropscope_gross.csv",
		NetFile:            "data/input/cropscope_net.csv",
		Subregions: []SubregionConfig{
			{
				Name:         "great_plains",
				EcoRegions:   []string{"GREAT PLAINS"},
				AccuracyFile: "data/input/great_plains_accuracy_points.csv",
				StrataWeights: map[string]float64{
					"1": 0.3399459905021893,   // likely stable croplands
					"2": 0.04854199924345394,  // cropland gain
					"3": 0.055592609114006625, // cropland loss
					"4": 0.5540253044095518,   // likely stable non-croplands
					"5": 0.0018940967307983225, // possible errors
				},
				OverlapAreas: map[string]float64{
					"us":     550.7870614297041,
					"canada": 113.59558968030782,
					"mx":     25.740657567547277,
					"total":  690.1233086775592,
				},
			},
			{
				Name:         "southern",
				AccuracyFile: "data/input/mexico_accuracy_points.csv",
				StrataWeights: map[string]float64{
					"1": 0.03336170578959062,  // likely stable croplands
					"2": 0.008431742977548621, // cropland gain
					"3": 0.001045225520779897, // cropland loss
					"4": 0.9321715151583109,   // likely stable non-croplands
					"5": 0.02498981055377003,  // possible errors
				},
				OverlapAreas: map[string]float64{
					"total":  195.50,
					"us":     54.00,
					"mx":     141.51,
					"canada": 0,
				},
			},
		},
	}
}

// defaultHCL is the default study file written by "config init". It mirrors
// Default() exactly.
const defaultHCL = `# cropscope study configuration

years {
  start = 1996
  end   = 2021
}

country_columns     = ["us_mill_acres", "canada_mill_acres", "mx_mill_acres", "total_mill_acres"]
exclusive_countries = ["canada"]

gross_file = "data/input/cropscope_gross.csv"
net_file   = "data/input/cropscope_net.csv"

subregion "great_plains" {
  eco_regions   = ["GREAT PLAINS"]
  accuracy_file = "data/input/great_plains_accuracy_points.csv"

  strata_weights = {
    "1" = 0.3399459905021893    # likely stable croplands
    "2" = 0.04854199924345394   # cropland gain
    "3" = 0.055592609114006625  # cropland loss
    "4" = 0.5540253044095518    # likely stable non-croplands
    "5" = 0.0018940967307983225 # possible errors
  }

  overlap_areas = {
    "us"     = 550.7870614297041
    "canada" = 113.59558968030782
    "mx"     = 25.740657567547277
    "total"  = 690.1233086775592
  }
}

subregion "southern" {
  accuracy_file = "data/input/mexico_accuracy_points.csv"

  strata_weights = {
    "1" = 0.03336170578959062  # likely stable croplands
    "2" = 0.008431742977548621 # cropland gain
    "3" = 0.001045225520779897 # cropland loss
    "4" = 0.9321715151583109   # likely stable non-croplands
    "5" = 0.02498981055377003  # possible errors
  }

  overlap_areas = {
    "total"  = 195.50
    "us"     = 54.00
    "mx"     = 141.51
    "canada" = 0
  }
}
`

// WriteDefault writes the default study file to path.
func WriteDefault(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(defaultHCL), 0644)
}
