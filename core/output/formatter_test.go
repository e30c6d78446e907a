package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cropscope/core/types"
)

func sampleResults() *types.Results {
	return &types.Results{
		RegionAName: "plains",
		RegionBName: "south",
		Gross: types.FootprintResult{
			Combined: types.CombinedCountryResults{
				"us": {{Year: 2000, Observed: 15, Adjusted: 16.5, Adjustment: 1.5, SE: 0.25, CI95: 0.49}},
			},
			RegionA: types.CountryResults{
				"us": {{Year: 2000, Observed: 10, Adjusted: 11, Adjustment: 1, SE: 0.2, CI95: 0.392}},
			},
			RegionB: types.CountryResults{
				"us": {{Year: 2000, Observed: 5, Adjusted: 5.5, Adjustment: 0.5, SE: 0.15, CI95: 0.294}},
			},
		},
	}
}

// TestNewFormatter tests formatter selection
func TestNewFormatter(t *testing.T) {
	for _, format := range []Format{FormatCLI, FormatJSON} {
		f, err := New(format)
		if err != nil {
			t.Fatalf("format %q: unexpected error: %v", format, err)
		}
		if f.Format() != format {
			t.Errorf("format %q: got %q", format, f.Format())
		}
	}

	if _, err := New("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

// TestCLIRender tests the human-readable table output
func TestCLIRender(t *testing.T) {
	f, err := New(FormatCLI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, sampleResults()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"gross / combined / us",
		"gross / plains / us",
		"gross / south / us",
		"YEAR",
		"CI_95",
		"2000",
		"16.500", // fixed three-decimal rendering
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestJSONRender tests that JSON output decodes back to the same values
func TestJSONRender(t *testing.T) {
	f, err := New(FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results := sampleResults()
	var buf bytes.Buffer
	if err := f.Render(&buf, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded types.Results
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	got := decoded.Gross.Combined["us"][0]
	want := results.Gross.Combined["us"][0]
	if got != want {
		t.Errorf("decoded %+v, want %+v", got, want)
	}
}
