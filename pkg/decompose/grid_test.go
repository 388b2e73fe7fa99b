package decompose

import "testing"

func TestNewGrid_RejectsMismatchedLengths(t *testing.T) {
	_, err := NewGrid([]float64{0, 0}, []float64{1}, []int{2, 2})
	if err == nil {
		t.Fatalf("expected an error for mismatched lengths")
	}
}

func TestNewGrid_RejectsNonPositiveCounts(t *testing.T) {
	_, err := NewGrid([]float64{0}, []float64{1}, []int{0})
	if err == nil {
		t.Fatalf("expected an error for a non-positive cell count")
	}
}

func TestGrid_NumRegionsIsProductOfCounts(t *testing.T) {
	g, err := NewGrid([]float64{0, 0}, []float64{4, 6}, []int{4, 3})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	if g.NumRegions() != 12 {
		t.Errorf("NumRegions() = %d, want 12", g.NumRegions())
	}
}

func TestGrid_LocateRegion_CornersAndCenter(t *testing.T) {
	g, err := NewGrid([]float64{0, 0}, []float64{2, 2}, []int{2, 2})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	// cell (0,0) -> index 0, cell (1,0) -> index 1, cell (0,1) -> index 2, cell(1,1) -> index 3
	if r := g.LocateRegion([]float64{0.1, 0.1}); r != 0 {
		t.Errorf("LocateRegion(0.1,0.1) = %d, want 0", r)
	}
	if r := g.LocateRegion([]float64{1.1, 0.1}); r != 1 {
		t.Errorf("LocateRegion(1.1,0.1) = %d, want 1", r)
	}
	if r := g.LocateRegion([]float64{0.1, 1.1}); r != 2 {
		t.Errorf("LocateRegion(0.1,1.1) = %d, want 2", r)
	}
	if r := g.LocateRegion([]float64{1.9, 1.9}); r != 3 {
		t.Errorf("LocateRegion(1.9,1.9) = %d, want 3", r)
	}
}

func TestGrid_LocateRegion_ClampsOutOfBounds(t *testing.T) {
	g, err := NewGrid([]float64{0}, []float64{1}, []int{4})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	if r := g.LocateRegion([]float64{-5.0}); r != 0 {
		t.Errorf("LocateRegion(-5.0) = %d, want 0 (clamped)", r)
	}
	if r := g.LocateRegion([]float64{5.0}); r != 3 {
		t.Errorf("LocateRegion(5.0) = %d, want 3 (clamped)", r)
	}
}

func TestGrid_Neighbors_CornerHasTwoInTwoD(t *testing.T) {
	g, err := NewGrid([]float64{0, 0}, []float64{3, 3}, []int{3, 3})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	// region 0 is the (0,0) corner cell: only +x and +y neighbors exist.
	neighbors := g.Neighbors(0, nil)
	if len(neighbors) != 2 {
		t.Errorf("Neighbors(corner) = %v, want 2 entries", neighbors)
	}
}

func TestGrid_Neighbors_InteriorHasFourInTwoD(t *testing.T) {
	g, err := NewGrid([]float64{0, 0}, []float64{3, 3}, []int{3, 3})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	center := g.LocateRegion([]float64{1.5, 1.5})
	neighbors := g.Neighbors(center, nil)
	if len(neighbors) != 4 {
		t.Errorf("Neighbors(center) = %v, want 4 entries", neighbors)
	}
}

func TestGrid_RegionVolume_ProductOfCellSizes(t *testing.T) {
	g, err := NewGrid([]float64{0, 0}, []float64{4, 6}, []int{2, 3})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	// cellSize = (2, 2) -> volume 4
	if v := g.RegionVolume(0); v != 4.0 {
		t.Errorf("RegionVolume() = %v, want 4.0", v)
	}
}

func TestGrid_Heuristic_ZeroAtGoalMonotoneWithDistance(t *testing.T) {
	g, err := NewGrid([]float64{0, 0}, []float64{4, 4}, []int{4, 4})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	goal := g.LocateRegion([]float64{3.5, 3.5})
	if h := g.Heuristic(goal, goal); h != 0 {
		t.Errorf("Heuristic(goal, goal) = %v, want 0", h)
	}
	near := g.LocateRegion([]float64{2.5, 3.5})
	far := g.LocateRegion([]float64{0.5, 0.5})
	if g.Heuristic(near, goal) >= g.Heuristic(far, goal) {
		t.Errorf("Heuristic should increase with grid distance from goal")
	}
}
