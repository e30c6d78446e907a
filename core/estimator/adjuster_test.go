package estimator

import (
	"math"
	"testing"

	"cropscope/internal/errors"
)

// TestCalculateAdjustments tests the per-stratum adjustment formula
func TestCalculateAdjustments(t *testing.T) {
	tests := []struct {
		name       string
		areas      []float64
		commission []float64
		omission   []float64
		weights    []float64
		want       []float64
	}{
		{
			name:       "no strata",
			areas:      nil,
			commission: nil,
			omission:   nil,
			weights:    nil,
			want:       []float64{},
		},
		{
			name:       "omission dominates",
			areas:      []float64{60},
			commission: []float64{0},
			omission:   []float64{0.2},
			weights:    []float64{0.6},
			want:       []float64{60 * 0.2 * 0.6},
		},
		{
			name:       "commission dominates gives a negative adjustment",
			areas:      []float64{100},
			commission: []float64{0.5},
			omission:   []float64{0.1},
			weights:    []float64{0.25},
			want:       []float64{(100*0.1 - 100*0.5) * 0.25},
		},
		{
			name:       "balanced rates cancel",
			areas:      []float64{40, 60},
			commission: []float64{0.3, 0.1},
			omission:   []float64{0.3, 0.1},
			weights:    []float64{0.4, 0.6},
			want:       []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateAdjustments(tt.areas, tt.commission, tt.omission, tt.weights)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d adjustments, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("stratum %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestCalculateAdjustmentsMismatchedLengths tests the precondition check
func TestCalculateAdjustmentsMismatchedLengths(t *testing.T) {
	tests := []struct {
		name       string
		areas      []float64
		commission []float64
		omission   []float64
		weights    []float64
	}{
		{
			name:       "short commission",
			areas:      []float64{1, 2},
			commission: []float64{0},
			omission:   []float64{0, 0},
			weights:    []float64{0.5, 0.5},
		},
		{
			name:       "short omission",
			areas:      []float64{1, 2},
			commission: []float64{0, 0},
			omission:   []float64{0},
			weights:    []float64{0.5, 0.5},
		},
		{
			name:       "short weights",
			areas:      []float64{1, 2},
			commission: []float64{0, 0},
			omission:   []float64{0, 0},
			weights:    []float64{0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateAdjustments(tt.areas, tt.commission, tt.omission, tt.weights)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsType(err, errors.TypeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}
