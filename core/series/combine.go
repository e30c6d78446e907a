package series

import (
	"math"

	"cropscope/core/types"
	"cropscope/internal/errors"
)

// Combine merges two independently estimated subregion results into one
// series per country.
//
// Countries listed in exclusive were sampled in subregion A only; their
// series pass through unchanged. Other countries present in both inputs
// are summed year by year, with SE propagated as sqrt(seA^2 + seB^2) under
// the independent-sampling assumption. The two series must share the same
// year axis, in the same order. Countries present only in B are dropped;
// this mirrors the source workflow and is a documented limitation.
func Combine(a, b types.CountryResults, exclusive []string) (types.CombinedCountryResults, error) {
	combined := make(types.CombinedCountryResults)

	for country, seriesA := range a {
		if isExclusive(country, exclusive) {
			combined[country] = passthrough(seriesA)
			continue
		}

		seriesB, ok := b[country]
		if !ok {
			continue
		}
		if err := checkAlignment(country, seriesA, seriesB); err != nil {
			return nil, err
		}

		merged := make([]types.CombinedResult, len(seriesA))
		for i := range seriesA {
			ra, rb := seriesA[i], seriesB[i]
			se := math.Sqrt(ra.SE*ra.SE + rb.SE*rb.SE)
			merged[i] = types.CombinedResult{
				Year:       ra.Year,
				Observed:   ra.Observed + rb.Observed,
				Adjusted:   ra.Adjusted + rb.Adjusted,
				Adjustment: ra.Adjustment + rb.Adjustment,
				SE:         se,
				CI95:       types.ZScore95 * se,
			}
		}
		combined[country] = merged
	}

	return combined, nil
}

func isExclusive(country string, exclusive []string) bool {
	for _, c := range exclusive {
		if c == country {
			return true
		}
	}
	return false
}

func passthrough(series []types.AdjustmentResult) []types.CombinedResult {
	out := make([]types.CombinedResult, len(series))
	for i, r := range series {
		out[i] = types.CombinedResult(r)
	}
	return out
}

func checkAlignment(country string, a []types.AdjustmentResult, b []types.AdjustmentResult) error {
	if len(a) != len(b) {
		return errors.Alignment("country %q: series lengths differ (%d vs %d)", country, len(a), len(b))
	}
	for i := range a {
		if a[i].Year != b[i].Year {
			return errors.Alignment("country %q: year mismatch at position %d (%d vs %d)",
				country, i, a[i].Year, b[i].Year)
		}
	}
	return nil
}
