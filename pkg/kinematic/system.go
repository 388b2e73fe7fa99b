package kinematic

import (
	"github.com/latticeplan/syclop/pkg/syclop"
)

// Point is a 2D coordinate, used as both state and control-direction vector.
type Point [2]float64

// Rect is an axis-aligned closed obstacle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	return p[0] >= r.MinX && p[0] <= r.MaxX && p[1] >= r.MinY && p[1] <= r.MaxY
}

// System is a bounded single-integrator control system: a state is
// propagated by adding control*StepSize on each of Steps integration
// steps, stopping early if a step would leave Bounds or enter an Obstacle.
type System struct {
	Low, High Point
	Obstacles []Rect
	Controls  []Point
	StepSize  float64
	Steps     int

	decomp syclop.Decomposition
	rng    *syclop.RNG

	regionMotions map[int][]*syclop.Motion
}

// NewSystem constructs a System that extends motions against decomp's
// region membership, using a deterministic RNG seeded from seed. controls
// must be non-empty and steps must be positive.
func NewSystem(low, high Point, obstacles []Rect, controls []Point, stepSize float64, steps int, decomp syclop.Decomposition, seed uint64) (*System, error) {
	if len(controls) == 0 {
		return nil, syclop.New(syclop.ErrCodeInvalidExtender, "controls must be non-empty")
	}
	if steps <= 0 {
		return nil, syclop.New(syclop.ErrCodeInvalidExtender, "steps must be positive, got %d", steps)
	}
	if decomp == nil {
		return nil, syclop.New(syclop.ErrCodeInvalidDecomposition, "decomp must not be nil")
	}
	return &System{
		Low:           low,
		High:          high,
		Obstacles:     append([]Rect(nil), obstacles...),
		Controls:      append([]Point(nil), controls...),
		StepSize:      stepSize,
		Steps:         steps,
		decomp:        decomp,
		rng:           syclop.NewRNG(seed),
		regionMotions: make(map[int][]*syclop.Motion),
	}, nil
}

func (s *System) inBounds(p Point) bool {
	return p[0] >= s.Low[0] && p[0] <= s.High[0] && p[1] >= s.Low[1] && p[1] <= s.High[1]
}

func (s *System) collides(p Point) bool {
	for _, r := range s.Obstacles {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// IsValid implements [syclop.StateValidityChecker].
func (s *System) IsValid(state syclop.State) bool {
	p := state.(Point)
	return s.inBounds(p) && !s.collides(p)
}

// SampleUniform implements [syclop.StateSampler], drawing a point uniformly
// from Bounds regardless of obstacles (matching OMPL's free-volume
// estimator, which samples the full bounding volume and tallies validity
// separately).
func (s *System) SampleUniform() syclop.State {
	x := s.Low[0] + s.rng.Uniform01()*(s.High[0]-s.Low[0])
	y := s.Low[1] + s.rng.Uniform01()*(s.High[1]-s.Low[1])
	return Point{x, y}
}

// AddRoot implements [syclop.Extender].
func (s *System) AddRoot(state syclop.State) *syclop.Motion {
	m := &syclop.Motion{State: state}
	region := s.decomp.LocateRegion(state)
	s.regionMotions[region] = append(s.regionMotions[region], m)
	return m
}

// SelectAndExtend implements [syclop.Extender]: it picks a uniformly random
// existing motion in region, applies a uniformly random control for up to
// Steps integration steps, and stops as soon as a step would leave Bounds
// or enter an Obstacle. If the very first step is blocked, it returns dst
// unchanged (a valid zero-motion outcome per spec).
func (s *System) SelectAndExtend(region int, dst []*syclop.Motion) []*syclop.Motion {
	motions := s.regionMotions[region]
	if len(motions) == 0 {
		return dst
	}
	parent := motions[s.rng.UniformInt(0, len(motions)-1)]
	control := s.Controls[s.rng.UniformInt(0, len(s.Controls)-1)]

	cur := parent.State.(Point)
	moved := false
	for i := 0; i < s.Steps; i++ {
		next := Point{cur[0] + control[0]*s.StepSize, cur[1] + control[1]*s.StepSize}
		if !s.inBounds(next) || s.collides(next) {
			break
		}
		cur = next
		moved = true
	}
	if !moved {
		return dst
	}

	m := &syclop.Motion{State: cur, Parent: parent, Control: control, Steps: s.Steps}
	newRegion := s.decomp.LocateRegion(cur)
	s.regionMotions[newRegion] = append(s.regionMotions[newRegion], m)
	return append(dst, m)
}
