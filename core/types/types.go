// Package types defines the shared data model for stratified area estimation.
package types

import (
	"sort"
	"strings"

	"cropscope/internal/errors"
)

// ZScore95 is the two-sided 95% normal-approximation critical value.
const ZScore95 = 1.96

// WeightSumTolerance is the allowed deviation of stratum weights from 1.
const WeightSumTolerance = 1e-6

// StratumID identifies a sampling stratum. IDs are opaque keys; ordering is
// only used to make iteration deterministic.
type StratumID int

// StrataWeights maps each stratum to its proportion of total area (w_h).
type StrataWeights map[StratumID]float64

// SortedIDs returns the stratum IDs in ascending order.
func (w StrataWeights) SortedIDs() []StratumID {
	ids := make([]StratumID, 0, len(w))
	for id := range w {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Validate checks that every weight is a proportion and that the weights
// sum to one within tolerance.
func (w StrataWeights) Validate() error {
	if len(w) == 0 {
		return errors.Config("strata weights are empty")
	}
	sum := 0.0
	for id, weight := range w {
		if weight < 0 || weight > 1 {
			return errors.Config("stratum %d weight %v is outside [0, 1]", id, weight)
		}
		sum += weight
	}
	if sum < 1-WeightSumTolerance || sum > 1+WeightSumTolerance {
		return errors.Config("strata weights sum to %v, expected 1", sum)
	}
	return nil
}

// ValidationSample is one reference-vs-prediction pair from the accuracy
// assessment. Labels are binary: 1 marks the target land-cover class.
type ValidationSample struct {
	// Stratum is the sampling stratum the point was drawn from
	Stratum StratumID `json:"strata"`

	// Reference is the visually interpreted reference label (0/1)
	Reference int `json:"landcover_code"`

	// Predicted is the classifier's label (0/1)
	Predicted int `json:"window_ag"`

	// Year the sample applies to
	Year int `json:"year"`
}

// Samples is a read-only collection of validation samples.
type Samples []ValidationSample

// ByStratum returns the samples belonging to the given stratum.
func (s Samples) ByStratum(id StratumID) Samples {
	var out Samples
	for _, sample := range s {
		if sample.Stratum == id {
			out = append(out, sample)
		}
	}
	return out
}

// ByYear returns the samples belonging to the given year.
func (s Samples) ByYear(year int) Samples {
	var out Samples
	for _, sample := range s {
		if sample.Year == year {
			out = append(out, sample)
		}
	}
	return out
}

// ObservedRow is one year of observed (uncorrected) area totals. Areas is
// keyed by dataset column name, e.g. "us_mill_acres".
type ObservedRow struct {
	Year      int                `json:"year"`
	EcoRegion string             `json:"eco_region,omitempty"`
	Areas     map[string]float64 `json:"areas"`
}

// ObservedTable holds the observed-area series for one footprint type.
type ObservedTable struct {
	Rows []ObservedRow `json:"rows"`
}

// Value looks up the observed area for a year and column. The second return
// reports whether a matching row with that column exists.
func (t *ObservedTable) Value(year int, column string) (float64, bool) {
	for _, row := range t.Rows {
		if row.Year != year {
			continue
		}
		if v, ok := row.Areas[column]; ok {
			return v, true
		}
	}
	return 0, false
}

// FilterEcoRegion returns a new table holding only rows whose eco-region
// satisfies the predicate. Rows are shared, not copied.
func (t *ObservedTable) FilterEcoRegion(pred func(string) bool) *ObservedTable {
	out := &ObservedTable{}
	for _, row := range t.Rows {
		if pred(row.EcoRegion) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// YearRange is an inclusive range of study years.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Validate checks that the range is non-empty.
func (r YearRange) Validate() error {
	if r.End < r.Start {
		return errors.Config("year range end %d precedes start %d", r.End, r.Start)
	}
	return nil
}

// AdjustmentResult is one bias-adjusted estimate for a region, country,
// footprint and year. Adjusted == Observed + Adjustment and
// CI95 == 1.96 * SE hold for every result.
type AdjustmentResult struct {
	Year       int     `json:"year"`
	Observed   float64 `json:"observed"`
	Adjusted   float64 `json:"adjusted"`
	Adjustment float64 `json:"adjustment"`
	SE         float64 `json:"se"`
	CI95       float64 `json:"ci_95"`
}

// CombinedResult is the sum of two independent subregion estimates, with
// SE propagated under the independence assumption.
type CombinedResult struct {
	Year       int     `json:"year"`
	Observed   float64 `json:"observed"`
	Adjusted   float64 `json:"adjusted"`
	Adjustment float64 `json:"adjustment"`
	SE         float64 `json:"se"`
	CI95       float64 `json:"ci_95"`
}

// CountryResults maps a country code to its ordered per-year series.
type CountryResults map[string][]AdjustmentResult

// CombinedCountryResults maps a country code to its combined series.
type CombinedCountryResults map[string][]CombinedResult

// Footprint distinguishes the cumulative and annual area definitions.
type Footprint string

const (
	// FootprintGross is the cumulative (total-ever-observed) footprint
	FootprintGross Footprint = "gross"

	// FootprintNet is the annual (active-in-year) footprint
	FootprintNet Footprint = "net"
)

// String returns the footprint name
func (f Footprint) String() string {
	return string(f)
}

// FootprintResult holds all scopes of one footprint's estimates.
type FootprintResult struct {
	// Combined merges the two subregions with propagated uncertainty
	Combined CombinedCountryResults `json:"combined"`

	// RegionA holds the first subregion's independent estimates
	RegionA CountryResults `json:"region_a"`

	// RegionB holds the second subregion's independent estimates
	RegionB CountryResults `json:"region_b"`
}

// Results is the full study output, keyed by footprint type.
type Results struct {
	// RegionAName and RegionBName label the two subregions
	RegionAName string `json:"region_a_name"`
	RegionBName string `json:"region_b_name"`

	Gross FootprintResult `json:"gross"`
	Net   FootprintResult `json:"net"`
}

// CountryCodeFromColumn derives a country code from an area column name.
// The code is the leading token before the first underscore, by the
// {country_code}_mill_acres naming convention.
func CountryCodeFromColumn(column string) string {
	if i := strings.Index(column, "_"); i >= 0 {
		return column[:i]
	}
	return column
}
