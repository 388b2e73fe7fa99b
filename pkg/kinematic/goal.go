package kinematic

import (
	"math"

	"github.com/latticeplan/syclop/pkg/syclop"
)

// EuclideanGoal is satisfied once a state comes within Threshold of Target.
type EuclideanGoal struct {
	Target    Point
	Threshold float64
}

// IsSatisfied implements [syclop.Goal].
func (g EuclideanGoal) IsSatisfied(state syclop.State) (bool, float64) {
	p := state.(Point)
	dx, dy := p[0]-g.Target[0], p[1]-g.Target[1]
	dist := math.Hypot(dx, dy)
	return dist <= g.Threshold, dist
}
