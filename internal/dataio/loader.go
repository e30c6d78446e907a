// Package dataio loads the study's CSV datasets and persists results. It is
// the I/O shell around the pure estimation core: the core packages accept
// and return in-memory structures only.
package dataio

import (
	"encoding/csv"
	"os"
	"strconv"

	"go.uber.org/zap"

	"cropscope/core/types"
	"cropscope/internal/errors"
	"cropscope/internal/logging"
)

// RequiredAccuracyColumns are the columns a validation dataset must carry.
var RequiredAccuracyColumns = []string{"strata", "landcover_code", "window_ag", "year"}

// yearColumn and ecoRegionColumn are the structural columns of the
// observed-area dataset; every other column is a numeric area series.
const (
	yearColumn      = "year"
	ecoRegionColumn = "eco_region"
)

// LoadAccuracy reads a validation-points CSV. Extra columns are ignored;
// missing required columns fail with INVALID_INPUT.
func LoadAccuracy(path string) (types.Samples, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	index, err := columnIndex(records[0], RequiredAccuracyColumns)
	if err != nil {
		return nil, err
	}

	samples := make(types.Samples, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := intFields(record, index, i+2)
		if err != nil {
			return nil, err
		}
		samples = append(samples, types.ValidationSample{
			Stratum:   types.StratumID(row["strata"]),
			Reference: row["landcover_code"],
			Predicted: row["window_ag"],
			Year:      row["year"],
		})
	}

	logging.Debug("loaded accuracy dataset",
		zap.String("path", path),
		zap.Int("samples", len(samples)))
	return samples, nil
}

// LoadObserved reads an observed-area CSV. The year column is required and
// eco_region is carried through when present; every remaining column is
// parsed as a float64 area series.
func LoadObserved(path string) (*types.ObservedTable, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	header := records[0]
	index, err := columnIndex(header, []string{yearColumn})
	if err != nil {
		return nil, err
	}
	yearIdx := index[yearColumn]
	ecoIdx := -1
	for i, name := range header {
		if name == ecoRegionColumn {
			ecoIdx = i
		}
	}

	table := &types.ObservedTable{}
	for i, record := range records[1:] {
		line := i + 2
		year, err := strconv.Atoi(record[yearIdx])
		if err != nil {
			return nil, errors.Parsing("parsing observed dataset", err).
				WithContext("path", path).WithContext("line", line).WithContext("column", yearColumn)
		}

		row := types.ObservedRow{Year: year, Areas: make(map[string]float64)}
		if ecoIdx >= 0 {
			row.EcoRegion = record[ecoIdx]
		}
		for col, name := range header {
			if col == yearIdx || col == ecoIdx {
				continue
			}
			value, err := strconv.ParseFloat(record[col], 64)
			if err != nil {
				return nil, errors.Parsing("parsing observed dataset", err).
					WithContext("path", path).WithContext("line", line).WithContext("column", name)
			}
			row.Areas[name] = value
		}
		table.Rows = append(table.Rows, row)
	}

	logging.Debug("loaded observed dataset",
		zap.String("path", path),
		zap.Int("rows", len(table.Rows)))
	return table, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Parsing("opening dataset", err).WithContext("path", path)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Parsing("reading dataset", err).WithContext("path", path)
	}
	if len(records) < 1 {
		return nil, errors.InvalidInputf("dataset %q has no header row", path)
	}
	return records, nil
}

func columnIndex(header []string, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.InvalidInputf("missing required columns: %v", missing)
	}
	return index, nil
}

func intFields(record []string, index map[string]int, line int) (map[string]int, error) {
	out := make(map[string]int, len(RequiredAccuracyColumns))
	for _, name := range RequiredAccuracyColumns {
		value, err := strconv.Atoi(record[index[name]])
		if err != nil {
			return nil, errors.Parsing("parsing accuracy dataset", err).
				WithContext("line", line).WithContext("column", name)
		}
		out[name] = value
	}
	return out, nil
}
