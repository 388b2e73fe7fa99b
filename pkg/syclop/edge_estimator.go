package syclop

// setupEdgeEstimates resets every edge in g to its initial (empty) state
// and installs the default cost factor before recomputing every edge's
// cost (spec §4.E). Run once (lazily) per Solve, alongside
// [setupRegionEstimates].
func setupEdgeEstimates(g *DecompositionGraph) {
	g.ClearEdgeCostFactors()
	g.AddEdgeCostFactor(defaultEdgeCostFactor(g))
	for _, a := range g.adjacency {
		a.clear()
		g.UpdateEdge(a)
	}
}

// updateConnectionEstimate locates the coverage cell of s and, if the
// (source, target) adjacency has not already recorded that cell, inserts
// it and recomputes the edge's cost. Returns whether a new cell was
// recorded (spec §4.E). The adjacency must already exist.
func updateConnectionEstimate(g *DecompositionGraph, source, target int, covGrid *CoverageGrid, s State) bool {
	a, ok := g.Edge(source, target)
	if !ok {
		return false
	}
	cell := covGrid.Locate(s)
	if _, seen := a.CovGridCells[cell]; seen {
		return false
	}
	a.CovGridCells[cell] = struct{}{}
	g.UpdateEdge(a)
	return true
}
