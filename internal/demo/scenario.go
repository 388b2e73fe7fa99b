// Package demo wires together a small toy kinodynamic planning problem —
// a point robot with bounded controls moving through a 2-D field of
// rectangular obstacles — so the CLI has something concrete to plan over
// without requiring a caller to bring their own state space.
package demo

import (
	"fmt"

	"github.com/latticeplan/syclop/pkg/decompose"
	"github.com/latticeplan/syclop/pkg/kinematic"
	"github.com/latticeplan/syclop/pkg/syclop"
)

// Scenario bundles a decomposition and the system it decomposes, ready to
// hand to a [syclop.Planner].
type Scenario struct {
	Name       string
	Decomp     *decompose.Grid
	System     *kinematic.System
	Start      kinematic.Point
	Goal       kinematic.EuclideanGoal
	CellCounts []int
}

// Names lists the scenarios buildable by [Build].
func Names() []string {
	return []string{"open-field", "corridor", "maze"}
}

// Build constructs the named scenario. seed seeds the system's own sampling
// RNG; the decomposition's cell counts are fixed per scenario.
func Build(name string, seed uint64) (*Scenario, error) {
	switch name {
	case "open-field":
		return openField(seed)
	case "corridor":
		return corridor(seed)
	case "maze":
		return maze(seed)
	default:
		return nil, fmt.Errorf("demo: unknown scenario %q (want one of %v)", name, Names())
	}
}

func controls() []kinematic.Point {
	return []kinematic.Point{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
	}
}

func buildScenario(name string, low, high kinematic.Point, obstacles []kinematic.Rect, start kinematic.Point, goal kinematic.Point, counts []int, seed uint64) (*Scenario, error) {
	grid, err := decompose.NewGrid([]float64{low[0], low[1]}, []float64{high[0], high[1]}, counts)
	if err != nil {
		return nil, fmt.Errorf("demo: build decomposition: %w", err)
	}

	sys, err := kinematic.NewSystem(low, high, obstacles, controls(), 0.1, 10, grid, seed)
	if err != nil {
		return nil, fmt.Errorf("demo: build system: %w", err)
	}

	return &Scenario{
		Name:       name,
		Decomp:     grid,
		System:     sys,
		Start:      start,
		Goal:       kinematic.EuclideanGoal{Target: goal, Threshold: 0.5},
		CellCounts: counts,
	}, nil
}

// openField is an obstacle-free 20x20 square, useful as a smoke test: any
// planner should solve it almost immediately.
func openField(seed uint64) (*Scenario, error) {
	low, high := kinematic.Point{0, 0}, kinematic.Point{20, 20}
	return buildScenario("open-field", low, high, nil,
		kinematic.Point{1, 1}, kinematic.Point{19, 19},
		[]int{10, 10}, seed)
}

// corridor forces the planner through a narrow gap in a wall spanning the
// middle of the field, the classic case SYCLOP's high-level lead-guidance
// is meant to help with.
func corridor(seed uint64) (*Scenario, error) {
	low, high := kinematic.Point{0, 0}, kinematic.Point{20, 20}
	// A wall spanning the field with a gap between y=9 and y=11.
	obstacles := []kinematic.Rect{
		{MinX: 9.5, MinY: 0, MaxX: 10.5, MaxY: 9},
		{MinX: 9.5, MinY: 11, MaxX: 10.5, MaxY: 20},
	}
	return buildScenario("corridor", low, high, obstacles,
		kinematic.Point{1, 1}, kinematic.Point{19, 19},
		[]int{10, 10}, seed)
}

// maze adds a second staggered wall so a shortest-path lead through the
// decomposition graph must bend twice before reaching the goal.
func maze(seed uint64) (*Scenario, error) {
	low, high := kinematic.Point{0, 0}, kinematic.Point{20, 20}
	obstacles := []kinematic.Rect{
		{MinX: 6, MinY: 4, MaxX: 7, MaxY: 20},
		{MinX: 13, MinY: 0, MaxX: 14, MaxY: 16},
	}
	return buildScenario("maze", low, high, obstacles,
		kinematic.Point{1, 1}, kinematic.Point{19, 1},
		[]int{12, 12}, seed)
}

// NewPlanner constructs a [syclop.Planner] wired to the scenario's system,
// applying opts on top of syclop's defaults. When opts leaves them unset,
// Projector maps a [kinematic.Point] to its two coordinates and
// CoverageCellSize is 0.5 in each dimension.
func (s *Scenario) NewPlanner(opts syclop.Options) (*syclop.Planner, error) {
	if opts.Projector == nil {
		opts.Projector = func(state syclop.State) []float64 {
			p := state.(kinematic.Point)
			return []float64{p[0], p[1]}
		}
	}
	if len(opts.CoverageCellSize) == 0 {
		opts.CoverageCellSize = []float64{0.5, 0.5}
	}
	return syclop.NewPlanner(s.Decomp, s.System, s.System, s.System, opts)
}
