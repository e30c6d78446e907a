// Package series fans the stratified estimator out over years and country
// columns, and combines independently estimated subregions.
package series

import (
	"cropscope/core/estimator"
	"cropscope/core/types"
	"cropscope/internal/errors"
)

// Processor applies one subregion's estimator across years and countries.
type Processor struct {
	est *estimator.Estimator
}

// NewProcessor creates a processor around the given estimator.
func NewProcessor(est *estimator.Estimator) *Processor {
	return &Processor{est: est}
}

// ProcessYears estimates one observed-area column for every year in the
// range, both endpoints inclusive. Each year is an independent computation:
// samples are filtered to the year and no state carries between years.
// A year with no observed value for the column fails with MISSING_DATA.
func (p *Processor) ProcessYears(years types.YearRange, observed *types.ObservedTable, samples types.Samples, totalArea float64, column string) ([]types.AdjustmentResult, error) {
	results := make([]types.AdjustmentResult, 0, years.End-years.Start+1)
	for year := years.Start; year <= years.End; year++ {
		value, ok := observed.Value(year, column)
		if !ok {
			return nil, errors.MissingData("no observed area for column %q in year %d", column, year)
		}

		result, err := p.est.Estimate(value, samples.ByYear(year), totalArea)
		if err != nil {
			return nil, err
		}
		result.Year = year
		results = append(results, result)
	}
	return results, nil
}

// ProcessSubregion runs ProcessYears for every country column. The country
// code is the column name's leading token before the first underscore, and
// it must resolve in the overlap-area mapping.
func (p *Processor) ProcessSubregion(observed *types.ObservedTable, samples types.Samples, overlapAreas map[string]float64, countryColumns []string, years types.YearRange) (types.CountryResults, error) {
	results := make(types.CountryResults, len(countryColumns))
	for _, column := range countryColumns {
		code := types.CountryCodeFromColumn(column)
		totalArea, ok := overlapAreas[code]
		if !ok {
			return nil, errors.Config("no overlap area for country %q (column %q)", code, column)
		}

		countrySeries, err := p.ProcessYears(years, observed, samples, totalArea, column)
		if err != nil {
			return nil, err
		}
		results[code] = countrySeries
	}
	return results, nil
}
