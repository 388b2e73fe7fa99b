package decompose

import (
	"fmt"
	"math"
	"reflect"

	"github.com/latticeplan/syclop/pkg/syclop"
)

// Grid is a uniform axis-aligned decomposition of an n-dimensional bounding
// box. States are []float64 or any other slice or array of floats (such as
// kinematic.Point) with at least n elements.
type Grid struct {
	low, high []float64
	counts    []int
	cellSize  []float64
	strides   []int
	numCells  int
}

// NewGrid builds a Grid over [low[i], high[i]) in each dimension i, split
// into counts[i] equal cells. low, high, and counts must have equal,
// positive length; every counts[i] must be positive and high[i] must exceed
// low[i].
func NewGrid(low, high []float64, counts []int) (*Grid, error) {
	n := len(low)
	if n == 0 || len(high) != n || len(counts) != n {
		return nil, syclop.New(syclop.ErrCodeInvalidDecomposition, "low, high, and counts must be non-empty and equal length")
	}
	cellSize := make([]float64, n)
	strides := make([]int, n)
	stride := 1
	for i := 0; i < n; i++ {
		if counts[i] <= 0 {
			return nil, syclop.New(syclop.ErrCodeInvalidDecomposition, "counts[%d] must be positive, got %d", i, counts[i])
		}
		if high[i] <= low[i] {
			return nil, syclop.New(syclop.ErrCodeInvalidDecomposition, "high[%d] must exceed low[%d]", i, i)
		}
		cellSize[i] = (high[i] - low[i]) / float64(counts[i])
		strides[i] = stride
		stride *= counts[i]
	}

	g := &Grid{
		low:      append([]float64(nil), low...),
		high:     append([]float64(nil), high...),
		counts:   append([]int(nil), counts...),
		cellSize: cellSize,
		strides:  strides,
		numCells: stride,
	}
	return g, nil
}

// Dim returns the dimensionality of the decomposed space.
func (g *Grid) Dim() int { return len(g.counts) }

// CellSize returns the per-dimension cell size.
func (g *Grid) CellSize() []float64 { return append([]float64(nil), g.cellSize...) }

func (g *Grid) coordsOf(r int) []int {
	coords := make([]int, g.Dim())
	for i := g.Dim() - 1; i >= 0; i-- {
		coords[i] = r / g.strides[i]
		r -= coords[i] * g.strides[i]
	}
	return coords
}

func (g *Grid) indexOf(coords []int) int {
	idx := 0
	for i, c := range coords {
		idx += c * g.strides[i]
	}
	return idx
}

func (g *Grid) cellCoords(s syclop.State) []int {
	p := reflect.ValueOf(s)
	coords := make([]int, g.Dim())
	for i := range coords {
		c := int(math.Floor((p.Index(i).Float() - g.low[i]) / g.cellSize[i]))
		if c < 0 {
			c = 0
		}
		if c >= g.counts[i] {
			c = g.counts[i] - 1
		}
		coords[i] = c
	}
	return coords
}

// NumRegions implements [syclop.Decomposition].
func (g *Grid) NumRegions() int { return g.numCells }

// LocateRegion implements [syclop.Decomposition].
func (g *Grid) LocateRegion(s syclop.State) int {
	return g.indexOf(g.cellCoords(s))
}

// Neighbors implements [syclop.Decomposition], returning the axis-adjacent
// cells (up to 2*Dim()).
func (g *Grid) Neighbors(r int, dst []int) []int {
	coords := g.coordsOf(r)
	for i := range coords {
		if coords[i] > 0 {
			c := append([]int(nil), coords...)
			c[i]--
			dst = append(dst, g.indexOf(c))
		}
		if coords[i] < g.counts[i]-1 {
			c := append([]int(nil), coords...)
			c[i]++
			dst = append(dst, g.indexOf(c))
		}
	}
	return dst
}

// RegionVolume implements [syclop.Decomposition].
func (g *Grid) RegionVolume(int) float64 {
	v := 1.0
	for _, sz := range g.cellSize {
		v *= sz
	}
	return v
}

// Heuristic implements [syclop.HeuristicDecomposition] with the Manhattan
// distance between cell coordinates. Edge costs can shrink well below 1 as
// coverage accumulates, so this is not a strict admissibility guarantee; it
// is a practical bias toward the goal that the teacher's own layered graphs
// use for row-distance heuristics.
func (g *Grid) Heuristic(r, goalRegion int) float64 {
	a, b := g.coordsOf(r), g.coordsOf(goalRegion)
	var d float64
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		d += float64(diff)
	}
	return d
}

// String renders the grid's shape for diagnostics.
func (g *Grid) String() string {
	return fmt.Sprintf("decompose.Grid{dims=%d, cells=%d}", g.Dim(), g.numCells)
}
