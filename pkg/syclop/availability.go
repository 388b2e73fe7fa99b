package syclop

// AvailabilityBuilder derives, from a [Lead], the probability-weighted set
// of regions currently eligible for expansion: those on the lead that
// already contain at least one tree motion (spec §4.G).
type AvailabilityBuilder struct {
	graph                 *DecompositionGraph
	rng                   *RNG
	probKeepAddingToAvail float64
}

func newAvailabilityBuilder(graph *DecompositionGraph, rng *RNG, probKeepAddingToAvail float64) *AvailabilityBuilder {
	return &AvailabilityBuilder{graph: graph, rng: rng, probKeepAddingToAvail: probKeepAddingToAvail}
}

// Build clears dist and refills it by walking lead from the goal end back
// toward the start. For each non-empty region encountered it is added with
// its current Weight; after each addition there is a
// (1-probKeepAddingToAvail) chance of stopping early. This guarantees the
// closest-to-goal non-empty region is always included while biasing
// availability toward the goal end (spec §4.G).
func (ab *AvailabilityBuilder) Build(lead Lead, dist *DiscreteDistribution) {
	dist.Clear()
	for i := len(lead) - 1; i >= 0; i-- {
		r := ab.graph.Region(lead[i])
		if len(r.Motions) == 0 {
			continue
		}
		dist.Add(r.Index, r.Weight)
		if ab.rng.Uniform01() >= ab.probKeepAddingToAvail {
			break
		}
	}
}
