package syclop

// setupRegionEstimates draws numFreeVolSamples uniform states from the
// state space and, for each, locates its region and tallies validity, then
// derives every region's Volume/PercentValidCells/FreeVolume and
// recomputes Alpha/Weight (spec §4.D). Run once (lazily) per Solve.
func setupRegionEstimates(g *DecompositionGraph, decomp Decomposition, sampler StateSampler, checker StateValidityChecker, numFreeVolSamples int) {
	n := g.NumRegions()
	numTotal := make([]int, n)
	numValid := make([]int, n)

	for i := 0; i < numFreeVolSamples; i++ {
		s := sampler.SampleUniform()
		rid := decomp.LocateRegion(s)
		numTotal[rid]++
		if checker.IsValid(s) {
			numValid[rid]++
		}
	}

	for i := 0; i < n; i++ {
		r := g.Region(i)
		r.Volume = decomp.RegionVolume(i)
		if numTotal[i] == 0 {
			r.PercentValidCells = 1.0
		} else {
			r.PercentValidCells = float64(numValid[i]) / float64(numTotal[i])
		}
		r.FreeVolume = r.PercentValidCells * r.Volume
		if r.FreeVolume < freeVolumeFloor {
			r.FreeVolume = freeVolumeFloor
		}
		updateRegion(r)
	}
}

// updateCoverageEstimate locates the coverage cell of s and, if r has not
// already recorded that cell, inserts it and recomputes r's Alpha/Weight.
// Returns whether a new cell was recorded (spec §4.D).
func updateCoverageEstimate(r *Region, covGrid *CoverageGrid, s State) bool {
	cell := covGrid.Locate(s)
	if _, seen := r.CovGridCells[cell]; seen {
		return false
	}
	r.CovGridCells[cell] = struct{}{}
	updateRegion(r)
	return true
}
