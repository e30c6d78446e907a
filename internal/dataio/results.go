package dataio

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cropscope/core/types"
	"cropscope/internal/errors"
)

// SaveResults persists a study result to JSON. encoding/json prints
// float64 values in shortest-round-trip form, so a reload reproduces every
// numeric field to floating-point identity.
func SaveResults(path string, results *types.Results) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Internal("creating results directory", err).WithContext("path", path)
		}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return errors.Internal("encoding results", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadResults reads a previously saved study result.
func LoadResults(path string) (*types.Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("reading results file", err).WithContext("path", path)
	}

	var results types.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, errors.Parsing("decoding results file", err).WithContext("path", path)
	}
	return &results, nil
}
