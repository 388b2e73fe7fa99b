package kinematic

import (
	"testing"

	"github.com/latticeplan/syclop/pkg/decompose"
)

func newTestSystem(t *testing.T) (*System, *decompose.Grid) {
	t.Helper()
	grid, err := decompose.NewGrid([]float64{0, 0}, []float64{10, 10}, []int{5, 5})
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	controls := []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	sys, err := NewSystem(Point{0, 0}, Point{10, 10}, nil, controls, 1.0, 3, grid, 1)
	if err != nil {
		t.Fatalf("NewSystem() error = %v", err)
	}
	return sys, grid
}

func TestNewSystem_RejectsEmptyControls(t *testing.T) {
	grid, _ := decompose.NewGrid([]float64{0}, []float64{1}, []int{2})
	if _, err := NewSystem(Point{0, 0}, Point{1, 1}, nil, nil, 1.0, 1, grid, 1); err == nil {
		t.Fatalf("expected an error for empty controls")
	}
}

func TestNewSystem_RejectsNonPositiveSteps(t *testing.T) {
	grid, _ := decompose.NewGrid([]float64{0}, []float64{1}, []int{2})
	controls := []Point{{1, 0}}
	if _, err := NewSystem(Point{0, 0}, Point{1, 1}, nil, controls, 1.0, 0, grid, 1); err == nil {
		t.Fatalf("expected an error for zero steps")
	}
}

func TestSystem_IsValid_RejectsOutOfBoundsAndObstacles(t *testing.T) {
	grid, _ := decompose.NewGrid([]float64{0, 0}, []float64{10, 10}, []int{5, 5})
	sys, err := NewSystem(Point{0, 0}, Point{10, 10}, []Rect{{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4}}, []Point{{1, 0}}, 1.0, 1, grid, 1)
	if err != nil {
		t.Fatalf("NewSystem() error = %v", err)
	}
	if sys.IsValid(Point{-1, 5}) {
		t.Errorf("out-of-bounds point should be invalid")
	}
	if sys.IsValid(Point{3, 3}) {
		t.Errorf("point inside obstacle should be invalid")
	}
	if !sys.IsValid(Point{5, 5}) {
		t.Errorf("free interior point should be valid")
	}
}

func TestSystem_SampleUniform_StaysInBounds(t *testing.T) {
	sys, _ := newTestSystem(t)
	for i := 0; i < 100; i++ {
		p := sys.SampleUniform().(Point)
		if p[0] < sys.Low[0] || p[0] > sys.High[0] || p[1] < sys.Low[1] || p[1] > sys.High[1] {
			t.Fatalf("SampleUniform() = %v, out of bounds", p)
		}
	}
}

func TestSystem_SelectAndExtend_EmptyRegionReturnsUnchanged(t *testing.T) {
	sys, _ := newTestSystem(t)
	dst := sys.SelectAndExtend(0, nil)
	if len(dst) != 0 {
		t.Errorf("SelectAndExtend on a region with no motions should return nothing, got %v", dst)
	}
}

func TestSystem_AddRootThenExtend_ProducesAMotion(t *testing.T) {
	sys, grid := newTestSystem(t)
	root := sys.AddRoot(Point{0.5, 0.5})
	region := grid.LocateRegion(Point{0.5, 0.5})

	out := sys.SelectAndExtend(region, nil)
	if len(out) != 1 {
		t.Fatalf("SelectAndExtend() = %v, want exactly one new motion", out)
	}
	if out[0].Parent != root {
		t.Errorf("new motion's parent should be the root motion")
	}
	if out[0].State.(Point) == root.State.(Point) {
		t.Errorf("new motion should differ from its parent")
	}
}

func TestSystem_SelectAndExtend_NeverLeavesBounds(t *testing.T) {
	grid, _ := decompose.NewGrid([]float64{0, 0}, []float64{10, 10}, []int{5, 5})
	controls := []Point{{5, 0}}
	sys, err := NewSystem(Point{0, 0}, Point{10, 10}, nil, controls, 1.0, 20, grid, 1)
	if err != nil {
		t.Fatalf("NewSystem() error = %v", err)
	}
	root := sys.AddRoot(Point{9.9, 5})
	region := grid.LocateRegion(Point{9.9, 5})
	out := sys.SelectAndExtend(region, nil)
	if len(out) != 0 {
		p := out[0].State.(Point)
		if p[0] > sys.High[0] {
			t.Errorf("extension escaped bounds: %v", p)
		}
	}
	_ = root
}

func TestEuclideanGoal_IsSatisfied(t *testing.T) {
	g := EuclideanGoal{Target: Point{5, 5}, Threshold: 1.0}
	if ok, _ := g.IsSatisfied(Point{5, 5}); !ok {
		t.Errorf("goal at target should be satisfied")
	}
	if ok, d := g.IsSatisfied(Point{0, 0}); ok || d <= 1.0 {
		t.Errorf("goal far from target should not be satisfied, got ok=%v d=%v", ok, d)
	}
}
