package syclop

import "github.com/BurntSushi/toml"

// fileOptions is the on-disk TOML shape for the subset of [Options] that
// makes sense as static configuration (probabilities and counts).
// Projector, CoverageCellSize, Seed, and Logger are Go-level concerns and
// are set programmatically by the caller after loading.
type fileOptions struct {
	ProbShortestPath      *float64 `toml:"prob_shortest_path"`
	ProbKeepAddingToAvail *float64 `toml:"prob_keep_adding_to_avail"`
	ProbAbandonLeadEarly  *float64 `toml:"prob_abandon_lead_early"`
	NumRegionExpansions   *int     `toml:"num_region_expansions"`
	NumTreeSelections     *int     `toml:"num_tree_selections"`
	NumFreeVolSamples     *int     `toml:"num_free_vol_samples"`
}

// LoadOptionsTOML reads planner tuning parameters from a TOML file at
// path, applying them on top of [DefaultOptions]. Unset keys keep their
// default value. Fields that cannot be expressed in TOML (Projector,
// CoverageCellSize, Seed, Logger) are left zero-valued for the caller to
// fill in.
func LoadOptionsTOML(path string) (Options, error) {
	var fo fileOptions
	if _, err := toml.DecodeFile(path, &fo); err != nil {
		return Options{}, Wrap(ErrCodeInvalidDecomposition, err, "decode syclop config %s", path)
	}

	opts := DefaultOptions()
	if fo.ProbShortestPath != nil {
		opts.ProbShortestPath = *fo.ProbShortestPath
	}
	if fo.ProbKeepAddingToAvail != nil {
		opts.ProbKeepAddingToAvail = *fo.ProbKeepAddingToAvail
	}
	if fo.ProbAbandonLeadEarly != nil {
		opts.ProbAbandonLeadEarly = *fo.ProbAbandonLeadEarly
	}
	if fo.NumRegionExpansions != nil {
		opts.NumRegionExpansions = *fo.NumRegionExpansions
	}
	if fo.NumTreeSelections != nil {
		opts.NumTreeSelections = *fo.NumTreeSelections
	}
	if fo.NumFreeVolSamples != nil {
		opts.NumFreeVolSamples = *fo.NumFreeVolSamples
	}
	return opts, nil
}
