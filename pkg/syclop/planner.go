package syclop

import (
	"context"
	"math"
)

// Solution is a path reconstructed from a solved or best-approximate
// [Motion] chain (spec §4.H step 5).
type Solution struct {
	// Path is the sequence of motions from a root to the recorded
	// solution motion, in root-to-leaf order.
	Path []*Motion

	// Exact reports whether the goal was actually satisfied. When false,
	// Path ends at the best approximate solution seen (minimum recorded
	// GoalDistance).
	Exact bool

	// GoalDistance is the distance from Path's final state to the goal;
	// zero when Exact is true.
	GoalDistance float64
}

// TerminationCondition is polled by [Planner.Solve] between region
// expansions, between tree selections, and between newly produced
// motions. It must return true once the caller wants planning to stop.
type TerminationCondition func() bool

// Planner orchestrates lead computation, availability restriction, and
// region-biased tree expansion via a caller-supplied [Extender] (spec
// §4.H). Planner is not safe for concurrent [Planner.Solve] calls.
type Planner struct {
	decomp   Decomposition
	extender Extender
	sampler  StateSampler
	checker  StateValidityChecker
	opts     Options

	graph        *DecompositionGraph
	coverage     *CoverageGrid
	rng          *RNG
	leadBuilder  *LeadBuilder
	availBuilder *AvailabilityBuilder

	graphReady bool
	numMotions int

	startRegions DiscreteDistribution
	goalRegions  DiscreteDistribution
	lead         Lead
	availDist    DiscreteDistribution
}

// NewPlanner validates opts and constructs a Planner over decomp using
// extender as the low-level tree-extension primitive, sampler/checker for
// free-volume estimation. Configuration errors (spec §7) are returned
// immediately rather than deferred to the first Solve call.
func NewPlanner(decomp Decomposition, extender Extender, sampler StateSampler, checker StateValidityChecker, opts Options) (*Planner, error) {
	if decomp == nil {
		return nil, New(ErrCodeInvalidDecomposition, "decomposition must not be nil")
	}
	if decomp.NumRegions() < 1 {
		return nil, New(ErrCodeInvalidDecomposition, "decomposition must have at least one region")
	}
	if extender == nil {
		return nil, New(ErrCodeInvalidExtender, "extender must not be nil")
	}
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	graph := buildDecompositionGraph(decomp)
	rng := NewRNG(opts.Seed)
	return &Planner{
		decomp:       decomp,
		extender:     extender,
		sampler:      sampler,
		checker:      checker,
		opts:         opts,
		graph:        graph,
		coverage:     NewCoverageGrid(opts.CoverageCellSize, opts.Projector),
		rng:          rng,
		leadBuilder:  newLeadBuilder(graph, rng, opts.ProbShortestPath),
		availBuilder: newAvailabilityBuilder(graph, rng, opts.ProbKeepAddingToAvail),
	}, nil
}

// Graph exposes the underlying [DecompositionGraph] for inspection
// (visualization, telemetry). Callers must not mutate it directly.
func (p *Planner) Graph() *DecompositionGraph { return p.graph }

// Lead returns the most recently computed lead, or nil if none has been
// computed yet this Solve.
func (p *Planner) Lead() Lead { return p.lead }

// NumMotions returns the total number of motions produced across all
// regions so far.
func (p *Planner) NumMotions() int { return p.numMotions }

// MarkGraphReady tells Solve that Graph's region and edge estimates are
// already populated (e.g. restored from an [estimatecache.Cache] snapshot),
// so the next Solve call should skip its free-volume sampling setup. Callers
// that restore a snapshot into a freshly built Planner must call this
// afterward, or Solve will silently overwrite the restored estimates.
func (p *Planner) MarkGraphReady() { p.graphReady = true }

// Clear resets region/edge estimates, motions, lead, and availability,
// matching spec §3's lifecycle: "Motions, lead, and availDist are reset on
// clear." A subsequent Solve re-runs setup from scratch.
func (p *Planner) Clear() {
	p.graph.clearDetails()
	p.startRegions.Clear()
	p.goalRegions.Clear()
	p.availDist.Clear()
	p.lead = nil
	p.graphReady = false
	p.numMotions = 0
}

// Solve runs one outer planning loop: it seeds the tree from every
// available start state, ensures at least one goal region is known, then
// repeatedly builds a lead, restricts to available regions, and extends
// the tree inside them until term returns true, ctx is cancelled, or a
// solution is found (spec §4.H).
//
// A nil, nil return means no start states or motions produced a solution
// or an approximate best-so-far within the budget — non-fatal per spec
// §7; callers may add more states and call Solve again. A non-nil error
// return means [ErrCodeNoValidStarts] or [ErrCodeNoGoalRegion]: the
// insufficient-input cases from spec §7, also non-fatal.
func (p *Planner) Solve(ctx context.Context, starts StartStateSource, goals GoalStateSource, goal Goal, term TerminationCondition) (*Solution, error) {
	if term == nil {
		term = func() bool { return false }
	}
	shouldStop := func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
		}
		return term()
	}

	if !p.graphReady {
		p.numMotions = 0
		setupRegionEstimates(p.graph, p.decomp, p.sampler, p.checker, p.opts.NumFreeVolSamples)
		setupEdgeEstimates(p.graph)
		p.graphReady = true
	}

	for {
		s, ok := starts.NextStart()
		if !ok {
			break
		}
		region := p.decomp.LocateRegion(s)
		if !p.startRegions.Contains(region) {
			p.startRegions.Add(region, 1)
		}
		motion := p.extender.AddRoot(s)
		regionObj := p.graph.Region(region)
		regionObj.Motions = append(regionObj.Motions, motion)
		p.numMotions++
		updateCoverageEstimate(regionObj, p.coverage, s)
	}
	if p.startRegions.Empty() {
		p.opts.Logger.Errorf("no valid start states")
		return nil, New(ErrCodeNoValidStarts, "no valid start states")
	}

	if p.goalRegions.Empty() {
		g, ok := goals.NextGoal()
		if !ok {
			p.opts.Logger.Errorf("unable to sample a valid goal state")
			return nil, New(ErrCodeNoGoalRegion, "unable to sample a valid goal state")
		}
		p.goalRegions.Add(p.decomp.LocateRegion(g), 1)
	}

	p.opts.Logger.Infof("starting with %d states", p.numMotions)

	var solutionMotion *Motion
	goalDist := math.Inf(1)
	solved := false
	var newMotions []*Motion

	for !shouldStop() && !solved {
		startRegion := p.startRegions.SampleUniform(p.rng.Uniform01())
		goalRegion := -1
		if g, ok := goals.NextGoal(); ok {
			goalRegion = p.decomp.LocateRegion(g)
			if !p.goalRegions.Contains(goalRegion) {
				p.goalRegions.Add(goalRegion, 1)
			}
			p.opts.Logger.Debug("resampled goal region", "region", goalRegion)
		}
		if goalRegion == -1 {
			goalRegion = p.goalRegions.SampleUniform(p.rng.Uniform01())
		}

		lead := p.leadBuilder.Build(startRegion, goalRegion)
		p.lead = lead
		if lead == nil {
			// Failure to compute a lead is not fatal (spec §4 Failure
			// semantics); the loop proceeds and the termination
			// condition governs how many attempts are made.
			continue
		}
		p.availBuilder.Build(lead, &p.availDist)

		for i := 0; i < p.opts.NumRegionExpansions && !solved && !shouldStop(); i++ {
			if p.availDist.Empty() {
				break
			}
			region := p.availDist.Sample(p.rng.Uniform01())
			regionObj := p.graph.Region(region)
			regionObj.NumSelections++
			updateRegion(regionObj)

			improved := false
			for j := 0; j < p.opts.NumTreeSelections && !solved && !shouldStop(); j++ {
				newMotions = p.extender.SelectAndExtend(region, newMotions[:0])
				for _, motion := range newMotions {
					if shouldStop() {
						break
					}
					satisfied, distance := goal.IsSatisfied(motion.State)
					if satisfied {
						solved = true
						goalDist = distance
						solutionMotion = motion
						break
					}
					if distance < goalDist {
						goalDist = distance
						solutionMotion = motion
					}

					newRegionIdx := p.decomp.LocateRegion(motion.State)
					newRegionObj := p.graph.Region(newRegionIdx)
					newRegionObj.Motions = append(newRegionObj.Motions, motion)
					p.numMotions++
					if updateCoverageEstimate(newRegionObj, p.coverage, motion.State) {
						improved = true
					}

					if newRegionIdx != region {
						if len(newRegionObj.Motions) == 1 {
							p.availDist.Add(newRegionIdx, newRegionObj.Weight)
						}
						// Non-adjacent transitions intentionally skip
						// edge-estimate updates: lead computation only
						// reasons about neighboring regions (spec §4.H).
						if a, ok := p.graph.Edge(region, newRegionIdx); ok {
							a.Empty = false
							a.NumSelections++
							if updateConnectionEstimate(p.graph, region, newRegionIdx, p.coverage, motion.State) {
								improved = true
							}
						}
					}
				}
			}
			if !improved && p.rng.Uniform01() < p.opts.ProbAbandonLeadEarly {
				break
			}
		}
	}

	if solutionMotion == nil {
		return nil, nil
	}

	var path []*Motion
	for m := solutionMotion; m != nil; m = m.Parent {
		path = append(path, m)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Solution{Path: path, Exact: solved, GoalDistance: goalDist}, nil
}
