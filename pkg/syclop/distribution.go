package syclop

// DiscreteDistribution is a mutable multiset of (key, weight) pairs
// supporting weighted sampling proportional to weight. It backs
// [Planner]'s start-region set, goal-region set, and per-iteration
// availability distribution.
//
// Sampling is undefined on an empty distribution; callers must guarantee
// at least one entry before calling [DiscreteDistribution.Sample] or
// [DiscreteDistribution.SampleUniform].
type DiscreteDistribution struct {
	keys    []int
	weights []float64
	total   float64
}

// Add inserts key with the given non-negative weight. Adding the same key
// twice creates two entries; the distribution is a multiset, matching the
// PDF-based implementation this component is modeled on.
func (d *DiscreteDistribution) Add(key int, weight float64) {
	d.keys = append(d.keys, key)
	d.weights = append(d.weights, weight)
	d.total += weight
}

// Clear empties the distribution.
func (d *DiscreteDistribution) Clear() {
	d.keys = d.keys[:0]
	d.weights = d.weights[:0]
	d.total = 0
}

// Len returns the number of entries currently held.
func (d *DiscreteDistribution) Len() int {
	return len(d.keys)
}

// Empty reports whether the distribution holds no entries.
func (d *DiscreteDistribution) Empty() bool {
	return len(d.keys) == 0
}

// Contains reports whether key appears in the distribution, regardless of
// weight or multiplicity.
func (d *DiscreteDistribution) Contains(key int) bool {
	for _, k := range d.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Keys returns a snapshot of the keys currently in the
// distribution, in insertion order (with duplicates if a key was added
// more than once).
func (d *DiscreteDistribution) Keys() []int {
	out := make([]int, len(d.keys))
	copy(out, d.keys)
	return out
}

// Sample draws a key with probability proportional to its weight, using u
// (which must be in [0, 1)) as the inverse-CDF cursor. If every weight is
// zero, Sample falls back to a uniform pick so a caller that guarantees
// non-emptiness is never left without a key.
func (d *DiscreteDistribution) Sample(u float64) int {
	if len(d.keys) == 0 {
		panic("syclop: Sample called on an empty DiscreteDistribution")
	}
	if d.total <= 0 {
		return d.keys[int(u*float64(len(d.keys)))%len(d.keys)]
	}
	target := u * d.total
	var cum float64
	for i, w := range d.weights {
		cum += w
		if target < cum {
			return d.keys[i]
		}
	}
	return d.keys[len(d.keys)-1]
}

// SampleUniform draws a key with equal probability across all entries,
// ignoring weight. Used for the start/goal region sets, which are
// equal-weight per spec §4.A.
func (d *DiscreteDistribution) SampleUniform(u float64) int {
	if len(d.keys) == 0 {
		panic("syclop: SampleUniform called on an empty DiscreteDistribution")
	}
	idx := int(u * float64(len(d.keys)))
	if idx >= len(d.keys) {
		idx = len(d.keys) - 1
	}
	return d.keys[idx]
}
