// Package output renders estimation results for human and machine
// consumption.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"cropscope/core/types"
	"cropscope/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the results
	Render(w io.Writer, results *types.Results) error
}

// New returns the formatter for a format name.
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	default:
		return nil, errors.InvalidInputf("unknown output format %q", format)
	}
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) Render(w io.Writer, results *types.Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

type cliFormatter struct{}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, results *types.Results) error {
	footprints := []struct {
		footprint types.Footprint
		result    types.FootprintResult
	}{
		{types.FootprintGross, results.Gross},
		{types.FootprintNet, results.Net},
	}

	for _, fp := range footprints {
		if err := renderCombined(w, fp.footprint, fp.result.Combined); err != nil {
			return err
		}
		if err := renderSubregion(w, fp.footprint, results.RegionAName, fp.result.RegionA); err != nil {
			return err
		}
		if err := renderSubregion(w, fp.footprint, results.RegionBName, fp.result.RegionB); err != nil {
			return err
		}
	}
	return nil
}

func renderCombined(w io.Writer, footprint types.Footprint, results types.CombinedCountryResults) error {
	for _, country := range sortedKeys(results) {
		fmt.Fprintf(w, "\n%s / combined / %s\n", footprint, country)
		tw := newTable(w)
		for _, r := range results[country] {
			writeRow(tw, r.Year, r.Observed, r.Adjusted, r.Adjustment, r.SE, r.CI95)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func renderSubregion(w io.Writer, footprint types.Footprint, name string, results types.CountryResults) error {
	for _, country := range sortedKeys(results) {
		fmt.Fprintf(w, "\n%s / %s / %s\n", footprint, name, country)
		tw := newTable(w)
		for _, r := range results[country] {
			writeRow(tw, r.Year, r.Observed, r.Adjusted, r.Adjustment, r.SE, r.CI95)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "YEAR\tOBSERVED\tADJUSTED\tADJUSTMENT\tSE\tCI_95")
	return tw
}

func writeRow(tw *tabwriter.Writer, year int, values ...float64) {
	fmt.Fprintf(tw, "%d", year)
	for _, v := range values {
		fmt.Fprintf(tw, "\t%s", formatArea(v))
	}
	fmt.Fprintln(tw)
}

// formatArea renders an area value with three fixed decimal places, the
// reporting precision for million-acre figures.
func formatArea(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(3)
}

func sortedKeys[V any](m map[string][]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
