// Package engine composes per-subregion estimation into the full study
// result: two subregions x two footprint types x all countries.
package engine

import (
	"go.uber.org/zap"

	"cropscope/core/estimator"
	"cropscope/core/series"
	"cropscope/core/types"
	"cropscope/internal/logging"
)

// SubregionInput bundles one subregion's read-only inputs.
type SubregionInput struct {
	// Name labels the subregion in output
	Name string

	// Samples are the subregion's validation points, all years
	Samples types.Samples

	// Weights are the subregion's stratum proportions
	Weights types.StrataWeights

	// OverlapAreas maps country codes (plus "total") to region area
	OverlapAreas map[string]float64

	// EcoRegions lists the eco-region values belonging to this subregion.
	// Only region A's list is consulted: region B takes the complement.
	EcoRegions []string
}

// Orchestrator is the top-level entry point of the estimation workflow.
// It holds read-only configuration and produces a fresh result per Run.
type Orchestrator struct {
	regionA        SubregionInput
	regionB        SubregionInput
	countryColumns []string
	exclusive      []string
	years          types.YearRange
}

// New creates an orchestrator. exclusiveCountries names countries sampled
// only in region A, whose series bypass combination.
func New(regionA, regionB SubregionInput, countryColumns, exclusiveCountries []string, years types.YearRange) *Orchestrator {
	return &Orchestrator{
		regionA:        regionA,
		regionB:        regionB,
		countryColumns: countryColumns,
		exclusive:      exclusiveCountries,
		years:          years,
	}
}

// Run estimates both footprints over both subregions and combines them.
// Pure computation: inputs are not mutated and errors propagate uncaught.
func (o *Orchestrator) Run(gross, net *types.ObservedTable) (*types.Results, error) {
	logging.Info("running footprint estimation",
		zap.String("region_a", o.regionA.Name),
		zap.String("region_b", o.regionB.Name),
		zap.Int("start_year", o.years.Start),
		zap.Int("end_year", o.years.End))

	grossResult, err := o.runFootprint(types.FootprintGross, gross)
	if err != nil {
		return nil, err
	}
	netResult, err := o.runFootprint(types.FootprintNet, net)
	if err != nil {
		return nil, err
	}

	return &types.Results{
		RegionAName: o.regionA.Name,
		RegionBName: o.regionB.Name,
		Gross:       *grossResult,
		Net:         *netResult,
	}, nil
}

func (o *Orchestrator) runFootprint(footprint types.Footprint, observed *types.ObservedTable) (*types.FootprintResult, error) {
	inRegionA := membership(o.regionA.EcoRegions)
	tableA := observed.FilterEcoRegion(inRegionA)
	tableB := observed.FilterEcoRegion(func(region string) bool { return !inRegionA(region) })

	logging.Debug("split observed rows by subregion",
		zap.String("footprint", footprint.String()),
		zap.Int("region_a_rows", len(tableA.Rows)),
		zap.Int("region_b_rows", len(tableB.Rows)))

	resultsA, err := o.processSubregion(o.regionA, tableA)
	if err != nil {
		return nil, err
	}
	resultsB, err := o.processSubregion(o.regionB, tableB)
	if err != nil {
		return nil, err
	}

	combined, err := series.Combine(resultsA, resultsB, o.exclusive)
	if err != nil {
		return nil, err
	}

	return &types.FootprintResult{
		Combined: combined,
		RegionA:  resultsA,
		RegionB:  resultsB,
	}, nil
}

func (o *Orchestrator) processSubregion(input SubregionInput, observed *types.ObservedTable) (types.CountryResults, error) {
	proc := series.NewProcessor(estimator.New(input.Weights))
	return proc.ProcessSubregion(observed, input.Samples, input.OverlapAreas, o.countryColumns, o.years)
}

func membership(regions []string) func(string) bool {
	set := make(map[string]bool, len(regions))
	for _, r := range regions {
		set[r] = true
	}
	return func(region string) bool { return set[region] }
}
