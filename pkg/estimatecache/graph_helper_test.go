package estimatecache

import (
	"testing"

	"github.com/latticeplan/syclop/pkg/syclop"
)

// chainState is a decomposition used only to build a [syclop.DecompositionGraph]
// with a known chain topology for these tests.
type chainState struct{ n int }

func (c chainState) NumRegions() int             { return c.n }
func (c chainState) LocateRegion(syclop.State) int { return 0 }
func (c chainState) RegionVolume(int) float64    { return 1.0 }

func (c chainState) Neighbors(r int, dst []int) []int {
	if r > 0 {
		dst = append(dst, r-1)
	}
	if r < c.n-1 {
		dst = append(dst, r+1)
	}
	return dst
}

func chainGraph(t *testing.T, n int) *syclop.DecompositionGraph {
	t.Helper()
	return syclop.NewDecompositionGraph(chainState{n: n})
}
