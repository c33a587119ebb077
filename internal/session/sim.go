package session

import (
	"fmt"

	"github.com/codegithubka/boids-interactive/pkg/boids"
	"github.com/codegithubka/boids-interactive/pkg/geometry"
)

// Simulation modes.
const (
	Mode2D = "2d"
	Mode3D = "3d"
)

// ErrUnknownMode is returned when a mode string is neither "2d" nor "3d".
var ErrUnknownMode = fmt.Errorf("unknown simulation mode")

// Simulation is the dimension-neutral surface a Manager drives. Both the 2D
// and the 3D flock satisfy it through a thin generic adapter, so the session
// layer never branches on dimensionality.
type Simulation interface {
	Step()
	Frame() uint64
	Reset()

	Params() boids.Params
	SetParams(boids.Params)

	Snapshot() boids.Snapshot
	Metrics() (boids.FrameMetrics, bool)

	AddBoids(n int) (int, error)
	AddObstacle(coords []float64, radius float64) (int, error)
	RemoveObstacle(i int) error
	ClearObstacles() int
	AddPredator() (int, error)
	RemovePredator(i int) error
	SetPredatorCount(n int)
}

// newSimulation builds a flock for the given mode.
func newSimulation(mode string, params boids.Params, seed uint64) (Simulation, error) {
	switch mode {
	case Mode2D:
		return &flockSim[geometry.Vector2D]{flock: boids.New2D(params, seed)}, nil
	case Mode3D:
		return &flockSim[geometry.Vector3D]{flock: boids.New3D(params, seed)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// flockSim adapts a Flock[V] to the Simulation interface, translating the
// coordinate-slice obstacle API into concrete vectors.
type flockSim[V geometry.Vector[V]] struct {
	flock *boids.Flock[V]
}

func (s *flockSim[V]) Step()                       { s.flock.Update() }
func (s *flockSim[V]) Frame() uint64               { return s.flock.Frame() }
func (s *flockSim[V]) Reset()                      { s.flock.Reset() }
func (s *flockSim[V]) Params() boids.Params        { return s.flock.Params() }
func (s *flockSim[V]) SetParams(p boids.Params)    { s.flock.SetParams(p) }
func (s *flockSim[V]) Snapshot() boids.Snapshot    { return s.flock.Snapshot() }
func (s *flockSim[V]) ClearObstacles() int         { return s.flock.ClearObstacles() }
func (s *flockSim[V]) RemoveObstacle(i int) error  { return s.flock.RemoveObstacle(i) }
func (s *flockSim[V]) AddBoids(n int) (int, error) { return s.flock.AddBoids(n) }
func (s *flockSim[V]) AddPredator() (int, error)   { return s.flock.AddPredator() }
func (s *flockSim[V]) RemovePredator(i int) error  { return s.flock.RemovePredator(i) }
func (s *flockSim[V]) SetPredatorCount(n int)      { s.flock.SetPredatorCount(n) }

func (s *flockSim[V]) Metrics() (boids.FrameMetrics, bool) {
	if len(s.flock.Predators) == 0 {
		return boids.FrameMetrics{}, false
	}
	return boids.FrameMetrics{
		AvgDistanceToPredator: boids.AvgDistanceToPredator(s.flock.Boids, s.flock.Predators),
		MinDistanceToPredator: boids.MinDistanceToPredator(s.flock.Boids, s.flock.Predators),
		FlockCohesion:         boids.FlockCohesion(s.flock.Boids),
	}, true
}

// AddObstacle places an obstacle from a coordinate slice. A 3D flock given
// only x and y gets the obstacle at mid depth, matching how a 2D client
// places obstacles into a 3D volume.
func (s *flockSim[V]) AddObstacle(coords []float64, radius float64) (int, error) {
	var zero V
	zero = zero.Zero()
	if zero.Axes() == 3 && len(coords) == 2 {
		coords = append(coords[:2:2], s.flock.Params().Depth/2)
	}
	return s.flock.AddObstacle(geometry.FromCoords[V](coords), radius)
}
