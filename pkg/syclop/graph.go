package syclop

// edgeKey is the ordered pair identifying a directed adjacency.
type edgeKey [2]int

// Region holds the per-region state and derived estimates SYCLOP maintains
// alongside a single decomposition region (spec §3).
type Region struct {
	Index             int
	Volume            float64
	PercentValidCells float64
	FreeVolume        float64
	NumSelections     int
	CovGridCells      map[int]struct{}
	Motions           []*Motion

	Alpha  float64
	Weight float64
}

// freeVolumeFloor is the ε floor applied to FreeVolume, matching spec §3
// and §7's numerical-underflow clamp. It is float64 machine epsilon, so
// freeVolume^4 stays a positive normal float64 and Alpha and Weight stay
// finite and positive.
const freeVolumeFloor = 2.220446049250313e-16

func newRegion(index int) *Region {
	r := &Region{
		Index:             index,
		Volume:            1.0,
		PercentValidCells: 1.0,
		FreeVolume:        1.0,
		CovGridCells:      make(map[int]struct{}),
	}
	updateRegion(r)
	return r
}

func (r *Region) clear() {
	r.NumSelections = 0
	r.CovGridCells = make(map[int]struct{})
	r.Motions = nil
	updateRegion(r)
}

// updateRegion recomputes Alpha and Weight from FreeVolume, coverage count,
// and selection count, per spec §3:
//
//	f = freeVolume^4, c = 1 + |covGridCells|, s = numSelections
//	alpha  = 1 / (c*f)
//	weight = f / (c*(1+s^2))
func updateRegion(r *Region) {
	if r.FreeVolume < freeVolumeFloor {
		r.FreeVolume = freeVolumeFloor
	}
	f := r.FreeVolume * r.FreeVolume * r.FreeVolume * r.FreeVolume
	c := 1.0 + float64(len(r.CovGridCells))
	s := float64(r.NumSelections)
	r.Alpha = 1.0 / (c * f)
	r.Weight = f / (c * (1 + s*s))
}

// Adjacency holds the per-directed-edge state SYCLOP maintains between two
// neighboring regions (spec §3). Both (u,v) and (v,u) are stored
// independently because NumSelections and CovGridCells are asymmetric.
type Adjacency struct {
	Source            *Region
	Target            *Region
	Cost              float64
	Empty             bool
	NumSelections     int
	NumLeadInclusions int
	CovGridCells      map[int]struct{}
}

func newAdjacency(source, target *Region) *Adjacency {
	return &Adjacency{
		Source:       source,
		Target:       target,
		Empty:        true,
		Cost:         1.0,
		CovGridCells: make(map[int]struct{}),
	}
}

func (a *Adjacency) clear() {
	a.Empty = true
	a.NumSelections = 0
	a.NumLeadInclusions = 0
	a.CovGridCells = make(map[int]struct{})
}

// EdgeCostFactor computes one multiplicative contribution to an edge's
// cost from the indices of its two endpoint regions. Every factor must
// return a strictly positive value (spec §3, §4.E).
type EdgeCostFactor func(source, target int) float64

// DecompositionGraph is the adjacency-list representation of a
// [Decomposition]: vertices are [Region] values, edges are [Adjacency]
// values. It is built once per [Planner] setup and is not safe for
// concurrent mutation (spec §4.C, §9).
type DecompositionGraph struct {
	decomp    Decomposition
	regions   []*Region
	adjacency map[edgeKey]*Adjacency
	neighbors map[int][]int

	edgeCostFactors []EdgeCostFactor
}

// NewDecompositionGraph builds a [DecompositionGraph] over decomp directly,
// for callers (visualization, caching) that want the graph without going
// through a [Planner]. [NewPlanner] builds one internally the same way.
func NewDecompositionGraph(decomp Decomposition) *DecompositionGraph {
	return buildDecompositionGraph(decomp)
}

// buildDecompositionGraph constructs the graph by iterating over every
// decomposition region and asking it for its neighbors, creating a
// directed [Adjacency] for each ordered pair (spec §4.C).
func buildDecompositionGraph(decomp Decomposition) *DecompositionGraph {
	n := decomp.NumRegions()
	g := &DecompositionGraph{
		decomp:    decomp,
		regions:   make([]*Region, n),
		adjacency: make(map[edgeKey]*Adjacency),
		neighbors: make(map[int][]int, n),
	}
	for i := 0; i < n; i++ {
		g.regions[i] = newRegion(i)
	}
	var buf []int
	for i := 0; i < n; i++ {
		buf = decomp.Neighbors(i, buf[:0])
		for _, j := range buf {
			key := edgeKey{i, j}
			if _, exists := g.adjacency[key]; exists {
				continue
			}
			g.adjacency[key] = newAdjacency(g.regions[i], g.regions[j])
			g.neighbors[i] = append(g.neighbors[i], j)
		}
	}
	return g
}

// Region returns the region at index i.
func (g *DecompositionGraph) Region(i int) *Region {
	return g.regions[i]
}

// NumRegions returns the number of regions in the graph.
func (g *DecompositionGraph) NumRegions() int {
	return len(g.regions)
}

// Neighbors returns the region indices adjacent to r.
func (g *DecompositionGraph) Neighbors(r int) []int {
	return g.neighbors[r]
}

// Edge returns the Adjacency from source to target, and whether it exists.
func (g *DecompositionGraph) Edge(source, target int) (*Adjacency, bool) {
	a, ok := g.adjacency[edgeKey{source, target}]
	return a, ok
}

// HasEdge reports whether (source, target) is an edge of the graph.
func (g *DecompositionGraph) HasEdge(source, target int) bool {
	_, ok := g.adjacency[edgeKey{source, target}]
	return ok
}

// AddEdgeCostFactor registers an additional cost factor, applied to every
// edge cost recomputation after those already registered.
func (g *DecompositionGraph) AddEdgeCostFactor(f EdgeCostFactor) {
	g.edgeCostFactors = append(g.edgeCostFactors, f)
}

// ClearEdgeCostFactors removes every registered cost factor, including the
// default one. Callers that want the default back must re-register it.
func (g *DecompositionGraph) ClearEdgeCostFactors() {
	g.edgeCostFactors = nil
}

// UpdateEdge recomputes a.Cost as the product of every registered
// [EdgeCostFactor] evaluated on (a.Source.Index, a.Target.Index) (spec
// §4.E).
func (g *DecompositionGraph) UpdateEdge(a *Adjacency) {
	cost := 1.0
	for _, f := range g.edgeCostFactors {
		cost *= f(a.Source.Index, a.Target.Index)
	}
	a.Cost = cost
}

// clearDetails resets every region and edge to its just-built state,
// preserving graph topology (spec §3 lifecycle, "reset on clear").
func (g *DecompositionGraph) clearDetails() {
	for _, r := range g.regions {
		r.clear()
	}
	for _, a := range g.adjacency {
		a.clear()
	}
}

// defaultEdgeCostFactor implements the default edge cost formula from spec
// §3:
//
//	n = numLeadInclusions if empty else numSelections
//	factor = (1+n^2) / (1+|covGridCells|^2) * alpha_source * alpha_target
func defaultEdgeCostFactor(g *DecompositionGraph) EdgeCostFactor {
	return func(source, target int) float64 {
		a, ok := g.Edge(source, target)
		if !ok {
			return 1.0
		}
		n := a.NumSelections
		if a.Empty {
			n = a.NumLeadInclusions
		}
		nf := float64(n)
		cf := float64(len(a.CovGridCells))
		factor := (1 + nf*nf) / (1 + cf*cf)
		factor *= a.Source.Alpha * a.Target.Alpha
		return factor
	}
}
