package estimator

import (
	"cropscope/internal/errors"
)

// CalculateAdjustments converts per-stratum error rates into signed area
// adjustments. All slices are parallel over the strata actually present in
// the sample; a length mismatch is a precondition violation.
//
// Per stratum: adjustment_h = area_h * (omission_h - commission_h) * w_h.
// area_h already equals w_h * total_area, so the weight is applied a second
// time here. That replicates the published workflow's scaling step and is
// kept intentionally; see DESIGN.md.
func CalculateAdjustments(areas, commission, omission, weights []float64) ([]float64, error) {
	if len(commission) != len(areas) || len(omission) != len(areas) || len(weights) != len(areas) {
		return nil, errors.InvalidInputf(
			"mismatched stratum vectors: areas=%d commission=%d omission=%d weights=%d",
			len(areas), len(commission), len(omission), len(weights))
	}

	adjustments := make([]float64, len(areas))
	for i := range areas {
		net := areas[i]*omission[i] - areas[i]*commission[i]
		adjustments[i] = net * weights[i]
	}
	return adjustments, nil
}
