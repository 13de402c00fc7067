// Package testutil provides shared test infrastructure for the street-crossing
// simulator. It consolidates golden dataset types and assertion helpers used
// across sim/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/path_counts.json.
type GoldenDataset struct {
	Tests []GoldenGrid `json:"tests"`
}

// GoldenGrid holds the expected structure of one grid, journey from the
// top-left corner of intersection (0,0) to the bottom-right corner of the
// last intersection.
type GoldenGrid struct {
	Rows       int `json:"rows"`
	Cols       int `json:"cols"`
	Nodes      int `json:"nodes"`
	Edges      int `json:"edges"`
	Paths      int `json:"paths"`
	Signatures int `json:"signatures"`
	EdgeCount  int `json:"edge_count"` // edges on every path
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "path_counts.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
