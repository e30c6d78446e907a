// Package estimator implements the Olofsson et al. (2014) bias-adjusted
// area estimator for stratified accuracy-assessment samples.
package estimator

import (
	"cropscope/core/types"
)

// ErrorRates holds the commission and omission error rates of one stratum.
type ErrorRates struct {
	// Commission is the false-positive rate relative to predicted positives
	Commission float64 `json:"commission_rate"`

	// Omission is the false-negative rate relative to reference positives
	Omission float64 `json:"omission_rate"`
}

// CalculateErrorRates derives commission and omission error rates from the
// samples of a single stratum.
//
// The confusion matrix is counted over the fixed label universe {0, 1} with
// reference as rows and prediction as columns, so a stratum observing only
// one class still yields a well-formed 2x2 matrix. Labels outside {0, 1}
// are not counted. A zero denominator yields a zero rate; callers skip
// empty strata upstream, so (0, 0) for an empty input is a defined
// fallback, not an estimate.
func CalculateErrorRates(samples types.Samples) ErrorRates {
	var cm [2][2]float64
	for _, s := range samples {
		if s.Reference < 0 || s.Reference > 1 || s.Predicted < 0 || s.Predicted > 1 {
			continue
		}
		cm[s.Reference][s.Predicted]++
	}

	fp := cm[0][1]
	fn := cm[1][0]
	tp := cm[1][1]

	var rates ErrorRates
	if fp+tp > 0 {
		rates.Commission = fp / (fp + tp)
	}
	if fn+tp > 0 {
		rates.Omission = fn / (fn + tp)
	}
	return rates
}
