package syclop

// chainDecomp is a minimal [Decomposition] over 1-D states: region i spans
// [i, i+1) and is adjacent to region i-1 and i+1. States are float64.
// Used across this package's tests as a small, hand-checkable topology.
type chainDecomp struct {
	n      int
	volume float64
}

func newChainDecomp(n int) *chainDecomp {
	return &chainDecomp{n: n, volume: 1.0}
}

func (c *chainDecomp) NumRegions() int { return c.n }

func (c *chainDecomp) LocateRegion(s State) int {
	f := s.(float64)
	r := int(f)
	if r < 0 {
		r = 0
	}
	if r >= c.n {
		r = c.n - 1
	}
	return r
}

func (c *chainDecomp) Neighbors(r int, dst []int) []int {
	if r > 0 {
		dst = append(dst, r-1)
	}
	if r < c.n-1 {
		dst = append(dst, r+1)
	}
	return dst
}

func (c *chainDecomp) RegionVolume(int) float64 { return c.volume }

// chainHeuristicDecomp adds an admissible |r - goal| heuristic on top of
// chainDecomp, exercising the [HeuristicDecomposition] path in [LeadBuilder].
type chainHeuristicDecomp struct {
	*chainDecomp
}

func (c *chainHeuristicDecomp) Heuristic(r, goalRegion int) float64 {
	d := r - goalRegion
	if d < 0 {
		d = -d
	}
	return float64(d)
}

// disconnectedDecomp is two disjoint chains of length n each, with no edges
// between them, used to exercise lead-computation failure.
type disconnectedDecomp struct {
	n int
}

func (d *disconnectedDecomp) NumRegions() int { return 2 * d.n }

func (d *disconnectedDecomp) LocateRegion(s State) int {
	f := s.(float64)
	r := int(f)
	if r < 0 {
		r = 0
	}
	if r >= 2*d.n {
		r = 2*d.n - 1
	}
	return r
}

func (d *disconnectedDecomp) Neighbors(r int, dst []int) []int {
	lo, hi := 0, d.n-1
	if r >= d.n {
		lo, hi = d.n, 2*d.n-1
	}
	if r > lo {
		dst = append(dst, r-1)
	}
	if r < hi {
		dst = append(dst, r+1)
	}
	return dst
}

func (d *disconnectedDecomp) RegionVolume(int) float64 { return 1.0 }
