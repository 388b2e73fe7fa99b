// Package pkg is a placeholder root for syclop's libraries; it declares no
// symbols of its own.
//
// # Overview
//
// syclop implements a SYCLOP-style meta-planner: a coarse decomposition of
// the state space guides a low-level, sampling-based tree extender toward
// regions likely to contain a solution. The libraries are organized as:
//
//   - [syclop]: the meta-planner core (decomposition graph, region/edge
//     estimators, lead computation, availability restriction, the outer
//     solve loop); its only third-party imports are charmbracelet/log for
//     logging and BurntSushi/toml for loading options.
//   - [decompose]: a regular-grid [Decomposition] implementation.
//   - [kinematic]: a toy point-robot control system used by the demo CLI
//     scenarios, satisfying [syclop.Extender], [syclop.StateSampler], and
//     [syclop.StateValidityChecker] at once.
//   - [estimatecache]: Redis-backed persistence of region/edge estimates
//     across runs against the same decomposition.
//   - [planrun]: MongoDB-backed recording of solve outcomes and lead
//     history.
//   - [syclopviz]: DOT/SVG rendering of a decomposition graph and its
//     current lead.
//   - [observability]: pluggable hooks for solve, cache, and HTTP events.
//   - [buildinfo]: version metadata embedded at build time.
//
// # Quick Start
//
//	grid, _ := decompose.NewGrid([]float64{0, 0}, []float64{20, 20}, []int{10, 10})
//	sys, _ := kinematic.NewSystem(kinematic.Point{0, 0}, kinematic.Point{20, 20}, obstacles, controls, 0.1, 10, grid, seed)
//	opts := syclop.DefaultOptions()
//	opts.Projector = func(s syclop.State) []float64 { p := s.(kinematic.Point); return p[:] }
//	opts.CoverageCellSize = []float64{0.5, 0.5}
//	planner, _ := syclop.NewPlanner(grid, sys, sys, sys, opts)
//	sol, err := planner.Solve(ctx, starts, goals, goal, syclop.TerminationAfter(5*time.Second))
//
// [syclop]: https://pkg.go.dev/github.com/latticeplan/syclop/pkg/syclop
// [decompose]: https://pkg.go.dev/github.com/latticeplan/syclop/pkg/decompose
// [kinematic]: https://pkg.go.dev/github.com/latticeplan/syclop/pkg/kinematic
// [estimatecache]: https://pkg.go.dev/github.com/latticeplan/syclop/pkg/estimatecache
// [planrun]: https://pkg.go.dev/github.com/latticeplan/syclop/pkg/planrun
// [syclopviz]: https://pkg.go.dev/github.com/latticeplan/syclop/pkg/syclopviz
// [observability]: https://pkg.go.dev/github.com/latticeplan/syclop/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/latticeplan/syclop/pkg/buildinfo
package pkg
