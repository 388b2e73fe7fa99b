package syclop

import "testing"

func point2D(x, y float64) []float64 { return []float64{x, y} }

func TestCoverageGrid_SameCellSameID(t *testing.T) {
	g := NewCoverageGrid([]float64{1.0, 1.0}, func(s State) []float64 {
		p := s.([2]float64)
		return point2D(p[0], p[1])
	})

	a := g.Locate([2]float64{0.1, 0.1})
	b := g.Locate([2]float64{0.9, 0.9})
	if a != b {
		t.Errorf("states in the same cell got different ids: %d != %d", a, b)
	}
}

func TestCoverageGrid_DifferentCellsDifferentIDs(t *testing.T) {
	g := NewCoverageGrid([]float64{1.0, 1.0}, func(s State) []float64 {
		p := s.([2]float64)
		return point2D(p[0], p[1])
	})

	a := g.Locate([2]float64{0.1, 0.1})
	b := g.Locate([2]float64{1.1, 0.1})
	if a == b {
		t.Errorf("states in different cells got the same id: %d", a)
	}
}

func TestCoverageGrid_NegativeCoordinatesFloor(t *testing.T) {
	g := NewCoverageGrid([]float64{1.0}, func(s State) []float64 {
		return []float64{s.(float64)}
	})

	a := g.Locate(-0.1)
	b := g.Locate(-0.9)
	if a != b {
		t.Errorf("negative coordinates in the same cell got different ids: %d != %d", a, b)
	}
	c := g.Locate(0.1)
	if a == c {
		t.Errorf("cell [-1,0) should not share an id with cell [0,1)")
	}
}

func TestCoverageGrid_IdsAreSequential(t *testing.T) {
	g := NewCoverageGrid([]float64{1.0}, func(s State) []float64 {
		return []float64{s.(float64)}
	})
	if id := g.Locate(0.5); id != 0 {
		t.Errorf("first Locate() = %d, want 0", id)
	}
	if id := g.Locate(5.5); id != 1 {
		t.Errorf("second (new cell) Locate() = %d, want 1", id)
	}
	if id := g.Locate(0.6); id != 0 {
		t.Errorf("revisiting the first cell should reuse id 0, got %d", id)
	}
}
