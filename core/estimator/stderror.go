package estimator

import (
	"math"

	"cropscope/internal/errors"
)

// CalculateStandardError computes the stratified-random-sampling standard
// error of the adjusted area:
//
//	SE = sqrt( sum_h( Ah^2 * (1 - n_h/N) * p_h*(1-p_h) / n_h ) )
//
// where Ah is the stratum area, n_h the stratum sample count and p_h the
// mean reference proportion in the stratum. N is the total sample count
// across all used strata, not each stratum's sampling-frame population;
// that matches the source workflow and is kept intentionally (DESIGN.md).
//
// Every included stratum must have samples: an empty stratum set or a zero
// n_h means there is no evidence to estimate variance from, and the error
// propagates rather than being coerced to zero.
func CalculateStandardError(areas []float64, sampleCounts []int, totalSamples int, meanProportions []float64) (float64, error) {
	if len(sampleCounts) != len(areas) || len(meanProportions) != len(areas) {
		return 0, errors.InvalidInputf(
			"mismatched stratum vectors: areas=%d counts=%d proportions=%d",
			len(areas), len(sampleCounts), len(meanProportions))
	}
	if len(areas) == 0 {
		return 0, errors.DivisionByZero("no strata with samples: cannot estimate variance")
	}
	if totalSamples <= 0 {
		return 0, errors.DivisionByZero("total sample count is zero")
	}

	var sum float64
	for i, area := range areas {
		n := float64(sampleCounts[i])
		if n <= 0 {
			return 0, errors.DivisionByZero("stratum sample count is zero").
				WithContext("stratum_index", i)
		}
		p := meanProportions[i]
		variance := p * (1 - p)
		sum += area * area * (1 - n/float64(totalSamples)) * variance / n
	}
	return math.Sqrt(sum), nil
}
