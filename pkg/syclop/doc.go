// Package syclop implements the SYCLOP meta-planner: a high-level workspace
// decomposition biases a low-level kinodynamic tree planner by computing a
// "lead" — a corridor of adjacent decomposition regions likely to connect a
// start state to a goal state — and steering tree expansion into regions
// along that corridor.
//
// # Architecture
//
// SYCLOP does not extend a motion tree itself. It orchestrates a caller
// supplied [Extender] (the low-level planner: RRT, EST, or similar) by
// telling it *which region* to expand into next. The pieces:
//
//   - [DiscreteDistribution]: weighted sampling over a mutable set of
//     region indices.
//   - [CoverageGrid]: a fine grid used only to detect "have we been here
//     before" for coverage-driven weight updates.
//   - [DecompositionGraph]: the region adjacency graph, carrying
//     per-region ([Region]) and per-edge ([Adjacency]) estimates.
//   - [LeadBuilder]: computes the region corridor from start to goal.
//   - [AvailabilityBuilder]: restricts a lead to regions the tree has
//     already reached.
//   - [Planner]: the outer loop tying all of the above to an [Extender].
//
// # Usage
//
//	opts := syclop.DefaultOptions()
//	opts.Projector = project          // state -> coverage-space coordinates
//	opts.CoverageCellSize = []float64{0.5, 0.5}
//	planner, err := syclop.NewPlanner(decomp, extender, sampler, checker, opts)
//	if err != nil {
//	    return err
//	}
//	sol, err := planner.Solve(ctx, starts, goals, goal, syclop.TerminationAfter(5*time.Second))
//
// # Ownership
//
// SYCLOP holds non-owning references to [Motion] values. The [Extender]
// implementation owns the motion tree/arena; SYCLOP never frees a Motion.
//
// # Concurrency
//
// A [Planner] is not safe for concurrent [Planner.Solve] calls. Within a
// single Solve, the supplied termination predicate is polled between region
// expansions, between tree selections, and between newly produced motions,
// so cancellation is cooperative and bounded by one tree-selection quantum.
package syclop
