package series

import (
	"math"
	"testing"

	"cropscope/core/types"
	"cropscope/internal/errors"
)

// TestCombine tests element-wise combination with uncertainty propagation
func TestCombine(t *testing.T) {
	a := types.CountryResults{
		"us": {
			{Year: 2000, Observed: 10, Adjusted: 12, Adjustment: 2, SE: 3, CI95: 1.96 * 3},
			{Year: 2001, Observed: 11, Adjusted: 13, Adjustment: 2, SE: 4, CI95: 1.96 * 4},
		},
	}
	b := types.CountryResults{
		"us": {
			{Year: 2000, Observed: 5, Adjusted: 4, Adjustment: -1, SE: 4, CI95: 1.96 * 4},
			{Year: 2001, Observed: 6, Adjusted: 5, Adjustment: -1, SE: 3, CI95: 1.96 * 3},
		},
	}

	combined, err := Combine(a, b, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	series := combined["us"]
	if len(series) != 2 {
		t.Fatalf("expected 2 combined results, got %d", len(series))
	}

	// 3-4-5 triangle: sqrt(3^2 + 4^2) == 5 exactly.
	if series[0].SE != 5 {
		t.Errorf("se: got %v, want 5", series[0].SE)
	}
	if series[0].Observed != 15 || series[0].Adjusted != 16 || series[0].Adjustment != 1 {
		t.Errorf("sums wrong: %+v", series[0])
	}
	if series[0].CI95 != types.ZScore95*series[0].SE {
		t.Errorf("ci_95 != 1.96*se: %v", series[0].CI95)
	}

	for i, r := range series {
		want := math.Sqrt(a["us"][i].SE*a["us"][i].SE + b["us"][i].SE*b["us"][i].SE)
		if r.SE != want {
			t.Errorf("result %d: se %v, want %v", i, r.SE, want)
		}
	}
}

// TestCombineExclusiveCountry tests the region-exclusive passthrough
func TestCombineExclusiveCountry(t *testing.T) {
	a := types.CountryResults{
		"canada": {
			{Year: 2000, Observed: 7, Adjusted: 8, Adjustment: 1, SE: 0.5, CI95: 1.96 * 0.5},
		},
	}
	b := types.CountryResults{
		"canada": {
			{Year: 2000, Observed: 100, Adjusted: 100, Adjustment: 0, SE: 9, CI95: 1.96 * 9},
		},
	}

	combined, err := Combine(a, b, []string{"canada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := combined["canada"][0]
	want := types.CombinedResult(a["canada"][0])
	if got != want {
		t.Errorf("passthrough altered the series: got %+v, want %+v", got, want)
	}
}

// TestCombineDropsBOnlyCountries tests the documented one-sided merge
func TestCombineDropsBOnlyCountries(t *testing.T) {
	a := types.CountryResults{
		"us": {{Year: 2000, Observed: 1, Adjusted: 1, Adjustment: 0}},
	}
	b := types.CountryResults{
		"us": {{Year: 2000, Observed: 2, Adjusted: 2, Adjustment: 0}},
		"mx": {{Year: 2000, Observed: 3, Adjusted: 3, Adjustment: 0}},
	}

	combined, err := Combine(a, b, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := combined["mx"]; ok {
		t.Error("country present only in B must be dropped")
	}
	if _, ok := combined["us"]; !ok {
		t.Error("shared country missing from combined results")
	}
}

// TestCombineMissingFromB tests that an A-only, non-exclusive country is
// also dropped rather than passed through
func TestCombineMissingFromB(t *testing.T) {
	a := types.CountryResults{
		"us": {{Year: 2000, Observed: 1}},
	}

	combined, err := Combine(a, types.CountryResults{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(combined) != 0 {
		t.Errorf("expected empty combined results, got %v", combined)
	}
}

// TestCombineAlignment tests the year-alignment precondition
func TestCombineAlignment(t *testing.T) {
	tests := []struct {
		name string
		a    []types.AdjustmentResult
		b    []types.AdjustmentResult
	}{
		{
			name: "different lengths",
			a:    []types.AdjustmentResult{{Year: 2000}, {Year: 2001}},
			b:    []types.AdjustmentResult{{Year: 2000}},
		},
		{
			name: "different years",
			a:    []types.AdjustmentResult{{Year: 2000}, {Year: 2001}},
			b:    []types.AdjustmentResult{{Year: 2000}, {Year: 2002}},
		},
		{
			name: "same years, different order",
			a:    []types.AdjustmentResult{{Year: 2000}, {Year: 2001}},
			b:    []types.AdjustmentResult{{Year: 2001}, {Year: 2000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Combine(types.CountryResults{"us": tt.a}, types.CountryResults{"us": tt.b}, nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsType(err, errors.TypeAlignment) {
				t.Errorf("expected ALIGNMENT_ERROR, got %v", err)
			}
		})
	}
}
