package estimator

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"cropscope/core/types"
)

// Estimator produces one bias-adjusted area estimate from an observed area
// and the validation samples of one region and year.
type Estimator struct {
	weights types.StrataWeights
}

// New creates an estimator for the given stratum weights. The weights are
// read-only configuration; callers validate them once at load time.
func New(weights types.StrataWeights) *Estimator {
	return &Estimator{weights: weights}
}

// Estimate computes the adjusted area, net adjustment, standard error and
// 95% confidence half-width for one observed area value.
//
// Strata are visited in ascending ID order. A stratum with no samples is
// skipped entirely: it contributes no area, rate, count or proportion term.
// Weights of the remaining strata are used as-is, not renormalized. If no
// stratum has samples at all, the standard-error step fails with a
// DIVISION_BY_ZERO error; an estimate without evidence is not produced.
func (e *Estimator) Estimate(observed float64, samples types.Samples, totalArea float64) (types.AdjustmentResult, error) {
	var (
		areas           []float64
		commission      []float64
		omission        []float64
		usedWeights     []float64
		sampleCounts    []int
		meanProportions []float64
		totalCount      int
	)

	for _, id := range e.weights.SortedIDs() {
		stratum := samples.ByStratum(id)
		if len(stratum) == 0 {
			continue
		}

		weight := e.weights[id]
		areas = append(areas, weight*totalArea)
		usedWeights = append(usedWeights, weight)

		rates := CalculateErrorRates(stratum)
		commission = append(commission, rates.Commission)
		omission = append(omission, rates.Omission)

		sampleCounts = append(sampleCounts, len(stratum))
		totalCount += len(stratum)

		references := make([]float64, len(stratum))
		for i, s := range stratum {
			references[i] = float64(s.Reference)
		}
		meanProportions = append(meanProportions, stat.Mean(references, nil))
	}

	adjustments, err := CalculateAdjustments(areas, commission, omission, usedWeights)
	if err != nil {
		return types.AdjustmentResult{}, err
	}
	totalAdjustment := floats.Sum(adjustments)

	se, err := CalculateStandardError(areas, sampleCounts, totalCount, meanProportions)
	if err != nil {
		return types.AdjustmentResult{}, err
	}

	return types.AdjustmentResult{
		Observed:   observed,
		Adjusted:   observed + totalAdjustment,
		Adjustment: totalAdjustment,
		SE:         se,
		CI95:       types.ZScore95 * se,
	}, nil
}
