package syclop

import "github.com/charmbracelet/log"

// Options configures a [Planner], mirroring the configuration table in
// spec §6.
type Options struct {
	// ProbShortestPath is the probability of using the shortest-path lead
	// branch instead of randomized DFS. Default 0.95.
	ProbShortestPath float64

	// ProbKeepAddingToAvail is the per-step continuation probability in
	// the availability walk (spec §4.G). Default 0.95.
	ProbKeepAddingToAvail float64

	// ProbAbandonLeadEarly is the probability of restarting the lead when
	// a region-expansion round yields no coverage/connection gain.
	// Default 0.25.
	ProbAbandonLeadEarly float64

	// NumRegionExpansions is the number of region picks per lead.
	NumRegionExpansions int

	// NumTreeSelections is the number of tree extensions per region pick.
	NumTreeSelections int

	// NumFreeVolSamples is the total number of uniform state-space samples,
	// shared across all regions, used to estimate region free volumes.
	NumFreeVolSamples int

	// CoverageCellSize is the per-dimension cell size for the coverage
	// grid (spec §4.B).
	CoverageCellSize []float64

	// Projector maps a State to projection-space coordinates for the
	// coverage grid. Required.
	Projector Projector

	// Seed initializes the planner's RNG. Two Planners with identical
	// Seed, Options, and Extender behavior produce identical runs.
	Seed uint64

	// Logger receives structured progress/diagnostic output. If nil, a
	// discard logger is used so the core stays silent by default.
	Logger *log.Logger
}

// DefaultOptions returns an Options with every probability and count set
// to the defaults named in spec §6 (matching the reference OMPL
// implementation's Defaults). CoverageCellSize and Projector are left
// unset; callers must provide them.
func DefaultOptions() Options {
	return Options{
		ProbShortestPath:      0.95,
		ProbKeepAddingToAvail: 0.95,
		ProbAbandonLeadEarly:  0.25,
		NumRegionExpansions:   100,
		NumTreeSelections:     1,
		NumFreeVolSamples:     100000,
	}
}

// WithDefaults returns a copy of o with any zero-valued probability/count
// field replaced by the value from [DefaultOptions]. Fields the caller
// must always supply (Projector, CoverageCellSize) are left untouched.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.ProbShortestPath == 0 {
		o.ProbShortestPath = d.ProbShortestPath
	}
	if o.ProbKeepAddingToAvail == 0 {
		o.ProbKeepAddingToAvail = d.ProbKeepAddingToAvail
	}
	if o.ProbAbandonLeadEarly == 0 {
		o.ProbAbandonLeadEarly = d.ProbAbandonLeadEarly
	}
	if o.NumRegionExpansions == 0 {
		o.NumRegionExpansions = d.NumRegionExpansions
	}
	if o.NumTreeSelections == 0 {
		o.NumTreeSelections = d.NumTreeSelections
	}
	if o.NumFreeVolSamples == 0 {
		o.NumFreeVolSamples = d.NumFreeVolSamples
	}
	if o.Logger == nil {
		o.Logger = log.New(discardWriter{})
	}
	return o
}

// Validate checks every field against spec §7's configuration-error rules,
// returning a [Code] ErrCodeInvalid* [Error] describing the first
// violation found.
func (o Options) Validate() error {
	if err := validateProbability("ProbShortestPath", o.ProbShortestPath); err != nil {
		return err
	}
	if err := validateProbability("ProbKeepAddingToAvail", o.ProbKeepAddingToAvail); err != nil {
		return err
	}
	if err := validateProbability("ProbAbandonLeadEarly", o.ProbAbandonLeadEarly); err != nil {
		return err
	}
	if o.NumRegionExpansions <= 0 {
		return New(ErrCodeInvalidCount, "NumRegionExpansions must be positive, got %d", o.NumRegionExpansions)
	}
	if o.NumTreeSelections <= 0 {
		return New(ErrCodeInvalidCount, "NumTreeSelections must be positive, got %d", o.NumTreeSelections)
	}
	if o.NumFreeVolSamples <= 0 {
		return New(ErrCodeInvalidCount, "NumFreeVolSamples must be positive, got %d", o.NumFreeVolSamples)
	}
	if o.Projector == nil {
		return New(ErrCodeInvalidDecomposition, "Projector must be set")
	}
	if len(o.CoverageCellSize) == 0 {
		return New(ErrCodeInvalidDecomposition, "CoverageCellSize must have at least one dimension")
	}
	for i, sz := range o.CoverageCellSize {
		if sz <= 0 {
			return New(ErrCodeInvalidDecomposition, "CoverageCellSize[%d] must be positive, got %v", i, sz)
		}
	}
	return nil
}

func validateProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return New(ErrCodeInvalidProbability, "%s must be in [0,1], got %v", name, p)
	}
	return nil
}

// discardWriter discards everything written to it, backing the default
// silent [Options.Logger].
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
