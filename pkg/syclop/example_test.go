package syclop_test

import (
	"context"
	"fmt"

	"github.com/latticeplan/syclop/pkg/syclop"
)

// lineDecomp splits [0, n) into n unit regions along a single axis.
type lineDecomp struct{ n int }

func (d lineDecomp) NumRegions() int { return d.n }

func (d lineDecomp) LocateRegion(s syclop.State) int {
	r := int(s.(float64))
	if r >= d.n {
		r = d.n - 1
	}
	return r
}

func (d lineDecomp) Neighbors(r int, dst []int) []int {
	if r > 0 {
		dst = append(dst, r-1)
	}
	if r < d.n-1 {
		dst = append(dst, r+1)
	}
	return dst
}

func (d lineDecomp) RegionVolume(int) float64 { return 1.0 }

// stepExtender advances one region per extension call, deterministically.
type stepExtender struct {
	decomp   lineDecomp
	terminal map[int]*syclop.Motion
}

func (e *stepExtender) AddRoot(s syclop.State) *syclop.Motion {
	m := &syclop.Motion{State: s}
	e.terminal[e.decomp.LocateRegion(s)] = m
	return m
}

func (e *stepExtender) SelectAndExtend(region int, dst []*syclop.Motion) []*syclop.Motion {
	parent, ok := e.terminal[region]
	if !ok {
		return dst
	}
	next := parent.State.(float64) + 1.0
	m := &syclop.Motion{State: next, Parent: parent}
	e.terminal[e.decomp.LocateRegion(next)] = m
	return append(dst, m)
}

type endGoal struct{ n int }

func (g endGoal) IsSatisfied(s syclop.State) (bool, float64) {
	v := s.(float64)
	d := float64(g.n-1) - v
	if d < 0 {
		d = 0
	}
	return v >= float64(g.n-1), d
}

type singleStart struct {
	s    syclop.State
	done bool
}

func (s *singleStart) NextStart() (syclop.State, bool) {
	if s.done {
		return nil, false
	}
	s.done = true
	return s.s, true
}

type singleGoal struct {
	s    syclop.State
	done bool
}

func (g *singleGoal) NextGoal() (syclop.State, bool) {
	if g.done {
		return nil, false
	}
	g.done = true
	return g.s, true
}

type uniformSampler struct{ n int }

func (u uniformSampler) SampleUniform() syclop.State { return float64(u.n / 2) }

type alwaysValid struct{}

func (alwaysValid) IsValid(syclop.State) bool { return true }

func Example() {
	decomp := lineDecomp{n: 6}
	extender := &stepExtender{decomp: decomp, terminal: make(map[int]*syclop.Motion)}

	opts := syclop.DefaultOptions()
	opts.Projector = func(s syclop.State) []float64 { return []float64{s.(float64)} }
	opts.CoverageCellSize = []float64{1.0}
	opts.Seed = 1

	planner, err := syclop.NewPlanner(decomp, extender, uniformSampler{n: decomp.n}, alwaysValid{}, opts)
	if err != nil {
		fmt.Println("setup error:", err)
		return
	}

	sol, err := planner.Solve(
		context.Background(),
		&singleStart{s: 0.0},
		&singleGoal{s: 5.0},
		endGoal{n: decomp.n},
		syclop.TerminationAfterMotions(planner, 1000),
	)
	if err != nil {
		fmt.Println("solve error:", err)
		return
	}

	fmt.Println("solved exactly:", sol.Exact)
	fmt.Println("path length:", len(sol.Path))
	// Output:
	// solved exactly: true
	// path length: 6
}
