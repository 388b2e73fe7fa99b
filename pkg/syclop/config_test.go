package syclop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptions_WithDefaults_FillsZeroFields(t *testing.T) {
	var o Options
	o = o.WithDefaults()

	d := DefaultOptions()
	if o.ProbShortestPath != d.ProbShortestPath {
		t.Errorf("ProbShortestPath = %v, want %v", o.ProbShortestPath, d.ProbShortestPath)
	}
	if o.NumRegionExpansions != d.NumRegionExpansions {
		t.Errorf("NumRegionExpansions = %v, want %v", o.NumRegionExpansions, d.NumRegionExpansions)
	}
	if o.Logger == nil {
		t.Errorf("Logger should be set to a discard logger by default")
	}
}

func TestOptions_Validate_RejectsOutOfRangeProbability(t *testing.T) {
	o := DefaultOptions()
	o.Projector = func(State) []float64 { return nil }
	o.CoverageCellSize = []float64{1.0}
	o.ProbAbandonLeadEarly = 1.5

	err := o.Validate()
	if !Is(err, ErrCodeInvalidProbability) {
		t.Errorf("Validate() error = %v, want ErrCodeInvalidProbability", err)
	}
}

func TestOptions_Validate_RequiresProjectorAndCellSize(t *testing.T) {
	o := DefaultOptions()
	if err := o.Validate(); !Is(err, ErrCodeInvalidDecomposition) {
		t.Errorf("Validate() with no Projector/CoverageCellSize error = %v, want ErrCodeInvalidDecomposition", err)
	}
}

func TestLoadOptionsTOML_OverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "syclop.toml")
	contents := "prob_shortest_path = 0.5\nnum_region_expansions = 7\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	opts, err := LoadOptionsTOML(path)
	require.NoError(t, err)
	require.Equal(t, 0.5, opts.ProbShortestPath)
	require.Equal(t, 7, opts.NumRegionExpansions)

	d := DefaultOptions()
	require.Equal(t, d.ProbKeepAddingToAvail, opts.ProbKeepAddingToAvail)
	require.Equal(t, d.NumTreeSelections, opts.NumTreeSelections)
}

func TestLoadOptionsTOML_MissingFileReturnsWrappedError(t *testing.T) {
	_, err := LoadOptionsTOML(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
