package syclop

// State is an opaque planning state. SYCLOP never inspects its geometry;
// it is passed unmodified between the caller-supplied [Decomposition],
// [Extender], [Goal], and [Projector] implementations.
type State any

// Control is an opaque control input, owned and interpreted only by the
// [Extender] implementation.
type Control any

// Decomposition partitions the planning space into a finite, densely
// indexed set of regions with known volumes and a neighbor relation. SYCLOP
// consumes only this interface; the geometry of the partition is entirely
// the caller's concern (spec §1, §6).
type Decomposition interface {
	// NumRegions returns the number of regions, at least 1.
	NumRegions() int

	// LocateRegion returns the index in [0, NumRegions()) of the region
	// containing s.
	LocateRegion(s State) int

	// Neighbors appends the indices of regions adjacent to region r to
	// dst and returns the result.
	Neighbors(r int, dst []int) []int

	// RegionVolume returns the geometric volume of region r; must be
	// positive.
	RegionVolume(r int) float64
}

// HeuristicDecomposition is an optional extension of [Decomposition]
// providing an admissible heuristic for [LeadBuilder]'s shortest-path
// search. A zero heuristic (Dijkstra) is always valid; implementing this
// interface is purely an optimization.
type HeuristicDecomposition interface {
	Decomposition

	// Heuristic estimates the remaining cost from region r to goalRegion.
	// Must be non-negative and must never overestimate the true shortest
	// path cost under the graph's current edge costs to remain admissible.
	Heuristic(r, goalRegion int) float64
}

// Motion is a node of the caller-owned control-space tree. SYCLOP treats it
// as opaque except for these four fields, which the [Extender] populates on
// every motion it produces (spec §3).
type Motion struct {
	State   State
	Parent  *Motion
	Control Control
	Steps   int
}

// Extender is the low-level tree-extension primitive that SYCLOP biases.
// Implementations own the motion tree/arena; SYCLOP stores only raw
// references and never frees a [Motion] (spec §5, §6).
type Extender interface {
	// SelectAndExtend selects one existing motion in region (or, per the
	// low-level planner's own policy, one adjacent to it) and performs one
	// extension step, appending any newly created motions to dst and
	// returning the result. Zero motions is a valid outcome.
	SelectAndExtend(region int, dst []*Motion) []*Motion

	// AddRoot creates and returns a new root motion for state s.
	AddRoot(s State) *Motion
}

// Goal reports whether a state satisfies the planning goal, and if not, how
// far it is from doing so.
type Goal interface {
	// IsSatisfied reports whether s satisfies the goal, and the distance
	// from s to the goal (0 when satisfied).
	IsSatisfied(s State) (satisfied bool, distance float64)
}

// StartStateSource supplies the initial batch of start states available
// before [Planner.Solve] begins its main loop (spec §4.H step 2).
type StartStateSource interface {
	// NextStart returns the next available start state, or false once
	// exhausted.
	NextStart() (State, bool)
}

// GoalStateSource supplies goal states discovered over the course of
// planning, mirroring OMPL's incremental goal sampling (spec §4.H step 3,
// 4b).
type GoalStateSource interface {
	// NextGoal returns another sampled goal state, or false if none is
	// currently available. It must not block.
	NextGoal() (State, bool)
}

// StateValidityChecker reports whether a state is free of collision.
// Consulted only while region free-volume estimates are set up (spec §5).
type StateValidityChecker interface {
	IsValid(s State) bool
}

// StateSampler draws uniformly random states from the full state space,
// used only for free-volume estimation.
type StateSampler interface {
	SampleUniform() State
}
