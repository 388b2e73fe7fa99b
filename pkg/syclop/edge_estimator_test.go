package syclop

import "testing"

func TestSetupEdgeEstimates_InstallsDefaultFactorAndComputesCost(t *testing.T) {
	g := buildDecompositionGraph(newChainDecomp(3))
	setupEdgeEstimates(g)

	a, ok := g.Edge(0, 1)
	if !ok {
		t.Fatalf("expected edge 0->1 to exist")
	}
	// At defaults: n=0 (empty, numLeadInclusions=0), cf=0, alpha_source=alpha_target=1
	// factor = (1+0)/(1+0) * 1 * 1 = 1
	if a.Cost != 1.0 {
		t.Errorf("Cost = %v, want 1.0", a.Cost)
	}
}

func TestUpdateConnectionEstimate_NewCellRecomputesCost(t *testing.T) {
	g := buildDecompositionGraph(newChainDecomp(2))
	setupEdgeEstimates(g)
	cg := NewCoverageGrid([]float64{1.0}, func(s State) []float64 { return []float64{s.(float64)} })

	changed := updateConnectionEstimate(g, 0, 1, cg, 1.5)
	if !changed {
		t.Errorf("first visit to a new cell should return true")
	}
	a, _ := g.Edge(0, 1)
	if len(a.CovGridCells) != 1 {
		t.Errorf("expected 1 recorded cell, got %d", len(a.CovGridCells))
	}

	changed = updateConnectionEstimate(g, 0, 1, cg, 1.6)
	if changed {
		t.Errorf("revisiting the same cell should return false")
	}
}

func TestUpdateConnectionEstimate_MissingEdgeIsNoop(t *testing.T) {
	g := buildDecompositionGraph(newChainDecomp(3))
	setupEdgeEstimates(g)
	cg := NewCoverageGrid([]float64{1.0}, func(s State) []float64 { return []float64{s.(float64)} })

	if updateConnectionEstimate(g, 0, 2, cg, 0.0) {
		t.Errorf("non-adjacent regions have no edge; expected false")
	}
}

func TestDefaultEdgeCostFactor_MoreSelectionsRaisesCost(t *testing.T) {
	g := buildDecompositionGraph(newChainDecomp(2))
	setupEdgeEstimates(g)
	a, _ := g.Edge(0, 1)
	before := a.Cost

	a.Empty = false
	a.NumSelections = 5
	g.UpdateEdge(a)

	if a.Cost <= before {
		t.Errorf("Cost after selections = %v, want greater than before = %v", a.Cost, before)
	}
}
