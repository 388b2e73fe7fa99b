package syclop

import (
	"math"
	"strconv"
	"strings"
)

// Projector maps an opaque planning State onto a low-dimensional
// projection space (typically workspace coordinates) used for coverage and
// decomposition bookkeeping. It is supplied by the caller since SYCLOP
// itself never inspects the geometry of State.
type Projector func(State) []float64

// CoverageGrid overlays a uniform grid on the projection space and maps
// projected states to fine-grained cell identifiers, used only as a proxy
// for "have we been in this neighborhood before" when updating region and
// edge weights (spec §4.B). Cell granularity is controlled by cellSize.
//
// The zero value is not usable; construct with [NewCoverageGrid].
type CoverageGrid struct {
	project  Projector
	cellSize []float64
	ids      map[string]int
	next     int
}

// NewCoverageGrid creates a CoverageGrid with the given per-dimension cell
// size and projection function. Every element of cellSize must be positive.
func NewCoverageGrid(cellSize []float64, project Projector) *CoverageGrid {
	sz := make([]float64, len(cellSize))
	copy(sz, cellSize)
	return &CoverageGrid{
		project:  project,
		cellSize: sz,
		ids:      make(map[string]int),
	}
}

// Locate returns a stable integer identifier for the grid cell containing
// the projection of s. Two states whose projections fall in the same cell
// always return the same identifier; a state projecting into a
// never-before-seen cell is assigned the next sequential identifier.
func (g *CoverageGrid) Locate(s State) int {
	coords := g.project(s)
	var sb strings.Builder
	for i, c := range coords {
		if i > 0 {
			sb.WriteByte(',')
		}
		size := 1.0
		if i < len(g.cellSize) && g.cellSize[i] > 0 {
			size = g.cellSize[i]
		}
		sb.WriteString(strconv.FormatInt(int64(math.Floor(c/size)), 10))
	}
	key := sb.String()
	if id, ok := g.ids[key]; ok {
		return id
	}
	id := g.next
	g.ids[key] = id
	g.next++
	return id
}
