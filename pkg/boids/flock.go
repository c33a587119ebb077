package boids

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/codegithubka/boids-interactive/pkg/geometry"
)

var (
	// ErrInvalidIndex is returned when a removal targets a nonexistent
	// collection entry. The collection is left unchanged.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrObstacleLimit is returned when the obstacle cap is reached.
	ErrObstacleLimit = errors.New("obstacle limit reached")

	// ErrPredatorLimit is returned when the predator cap is reached.
	ErrPredatorLimit = errors.New("predator limit reached")

	// ErrBoidLimit is returned when adding boids would exceed the cap.
	ErrBoidLimit = errors.New("boid limit reached")
)

// Flock owns one independent simulation: boids, predators, obstacles, the
// active parameters and the frame counter. All randomness flows through a
// single seeded generator, so two flocks built with the same seed and
// parameters produce identical trajectories.
//
// A flock is updated by a single caller at a time; independent sessions get
// independent flocks rather than sharing one behind a lock.
type Flock[V geometry.Vector[V]] struct {
	Boids     []Boid[V]
	Predators []Predator[V]
	Obstacles []Obstacle[V]

	params  Params
	extents V
	seed    uint64
	rng     *rand.Rand
	frame   uint64

	grid *Grid[V]

	// Scratch buffers reused across ticks.
	positions   []V
	velocities  []V
	deltas      []V
	predatorPos []V
	neighbors   []int
	candidates  []int
}

// New2D creates a 2D flock with the given parameters and seed.
func New2D(params Params, seed uint64) *Flock[geometry.Vector2D] {
	extents := geometry.Vector2D{X: params.Width, Y: params.Height}
	return newFlock(params, extents, seed)
}

// New3D creates a 3D flock with the given parameters and seed.
func New3D(params Params, seed uint64) *Flock[geometry.Vector3D] {
	extents := geometry.Vector3D{X: params.Width, Y: params.Height, Z: params.Depth}
	return newFlock(params, extents, seed)
}

func newFlock[V geometry.Vector[V]](params Params, extents V, seed uint64) *Flock[V] {
	f := &Flock[V]{
		params:  params,
		extents: extents,
		seed:    seed,
		grid:    NewGrid[V](neighborQueryRadius(params)),
	}
	f.respawn()
	return f
}

func neighborQueryRadius(p Params) float64 {
	return math.Max(p.VisualRange, p.ProtectedRange)
}

// respawn rebuilds the population from the stored seed. Boids first, then
// predators, so predator count changes never perturb boid spawn positions.
func (f *Flock[V]) respawn() {
	f.rng = rand.New(rand.NewPCG(f.seed, 0))
	f.frame = 0

	n := f.params.NumBoids
	if n > MaxBoids {
		n = MaxBoids
	}
	f.Boids = f.Boids[:0]
	for i := 0; i < n; i++ {
		f.Boids = append(f.Boids, f.spawnBoid())
	}

	f.Predators = f.Predators[:0]
	if f.params.PredatorEnabled {
		count := f.params.NumPredators
		if count < 1 {
			count = 1
		}
		if count > MaxPredators {
			count = MaxPredators
		}
		for i := 0; i < count; i++ {
			f.Predators = append(f.Predators, f.spawnPredator(i))
		}
	}
	f.Obstacles = f.Obstacles[:0]
}

func (f *Flock[V]) spawnBoid() Boid[V] {
	var zero V
	zero = zero.Zero()
	pos := geometry.RandomWithin(f.rng, zero, f.extents)
	speed := f.params.MaxSpeed/2 + f.rng.Float64()*f.params.MaxSpeed/2
	vel := geometry.RandomUnit[V](f.rng).Mul(speed)
	return Boid[V]{Pos: pos, Vel: vel}
}

func (f *Flock[V]) spawnPredator(index int) Predator[V] {
	var zero V
	zero = zero.Zero()
	pos := geometry.RandomWithin(f.rng, zero, f.extents)
	vel := geometry.RandomUnit[V](f.rng).Mul(f.params.PredatorSpeed)
	return NewPredator(pos, vel, SpeciesByIndex(index))
}

// Params returns the active parameters.
func (f *Flock[V]) Params() Params {
	return f.params
}

// SetParams swaps the numeric parameters without touching the population.
// The caller is responsible for recreating the flock when structural fields
// (boid count, dimensionality) change and for adjusting the predator count.
func (f *Flock[V]) SetParams(p Params) {
	f.params = p
	f.grid.SetCellSize(neighborQueryRadius(p))
}

// Frame returns the number of completed ticks since the last reset.
func (f *Flock[V]) Frame() uint64 {
	return f.frame
}

// Extents returns the axis extents of the simulation volume.
func (f *Flock[V]) Extents() V {
	return f.extents
}

// Seed returns the seed the population was spawned from.
func (f *Flock[V]) Seed() uint64 {
	return f.seed
}

// Reset respawns the population from the original seed, replaying the exact
// initial state. Obstacles are cleared.
func (f *Flock[V]) Reset() {
	f.respawn()
}

// Update advances the simulation by one tick.
//
// The tick is two-phase: every boid's delta-velocity is computed from the
// pre-tick snapshot before any boid moves, so results do not depend on
// iteration order. Predators advance after the boids, then the frame counter
// increments. A tick always completes; there is nothing to retry.
func (f *Flock[V]) Update() {
	f.snapshot()
	f.grid.Rebuild(f.positions)

	p := f.params
	queryRadius := neighborQueryRadius(p)

	for i := range f.Boids {
		f.neighbors = f.grid.QueryRadius(f.neighbors[:0], f.positions[i], queryRadius)

		dv := Separation(i, f.positions, f.neighbors, p.ProtectedRange, p.SeparationStrength)
		dv = dv.Add(Alignment(i, f.positions, f.velocities, f.neighbors, p.VisualRange, p.AlignmentFactor))
		dv = dv.Add(Cohesion(i, f.positions, f.neighbors, p.VisualRange, p.CohesionFactor))
		dv = dv.Add(BoundarySteer(f.positions[i], f.extents, p.Margin, p.TurnFactor))
		if len(f.Obstacles) > 0 {
			dv = dv.Add(ObstacleAvoid(f.positions[i], f.Obstacles, ObstacleDetectionRange, ObstacleAvoidanceStrength))
		}
		if len(f.predatorPos) > 0 {
			dv = dv.Add(PredatorAvoid(f.positions[i], f.predatorPos, p.PredatorDetectionRange, p.PredatorAvoidanceStrength))
		}
		f.deltas[i] = dv
	}

	var zero V
	zero = zero.Zero()
	for i := range f.Boids {
		b := &f.Boids[i]
		b.Vel = clampSpeed(b.Vel.Add(f.deltas[i]), p.MinSpeed, p.MaxSpeed, f.rng)
		b.Pos = geometry.Clamp(b.Pos.Add(b.Vel), zero, f.extents)
	}

	for i := range f.Predators {
		f.advancePredator(&f.Predators[i])
	}

	f.frame++
}

// snapshot copies the pre-tick state into the scratch buffers the rules and
// the spatial index read from.
func (f *Flock[V]) snapshot() {
	n := len(f.Boids)
	if cap(f.positions) < n {
		f.positions = make([]V, n)
		f.velocities = make([]V, n)
		f.deltas = make([]V, n)
	}
	f.positions = f.positions[:n]
	f.velocities = f.velocities[:n]
	f.deltas = f.deltas[:n]
	for i, b := range f.Boids {
		f.positions[i] = b.Pos
		f.velocities[i] = b.Vel
	}

	f.predatorPos = f.predatorPos[:0]
	for _, p := range f.Predators {
		f.predatorPos = append(f.predatorPos, p.Pos)
	}
}

// clampSpeed limits a velocity's magnitude to [minSpeed, maxSpeed]. A zero
// minimum permits coasting at any speed below the maximum; a zero velocity
// with a positive minimum gets a random direction at minimum speed.
func clampSpeed[V geometry.Vector[V]](vel V, minSpeed, maxSpeed float64, rng *rand.Rand) V {
	speed := vel.Len()
	if speed == 0 {
		if minSpeed <= 0 {
			return vel
		}
		return geometry.RandomUnit[V](rng).Mul(minSpeed)
	}
	if speed > maxSpeed {
		return vel.Mul(maxSpeed / speed)
	}
	if minSpeed > 0 && speed < minSpeed {
		return vel.Mul(minSpeed / speed)
	}
	return vel
}

// ---------------------------------------------------------------------
// Predator behavior
// ---------------------------------------------------------------------

// advancePredator runs one predator's state machine and motion. Cooldown
// suppresses hunting but never boundary or obstacle avoidance.
func (f *Flock[V]) advancePredator(p *Predator[V]) {
	var dv V
	dv = dv.Zero()

	if p.InCooldown() {
		p.UpdateCooldown()
	} else if len(f.Boids) > 0 {
		dv = f.huntingForce(p)
	}

	dv = dv.Add(BoundarySteer(p.Pos, f.extents, f.params.Margin, f.params.TurnFactor))
	if len(f.Obstacles) > 0 {
		dv = dv.Add(ObstacleAvoid(p.Pos, f.Obstacles, ObstacleDetectionRange, ObstacleAvoidanceStrength))
	}

	var zero V
	zero = zero.Zero()
	maxSpeed := f.params.PredatorSpeed
	p.Vel = clampSpeed(p.Vel.Add(dv), maxSpeed*0.5, maxSpeed, f.rng)
	p.Pos = geometry.Clamp(p.Pos.Add(p.Vel), zero, f.extents)
}

// huntingForce dispatches on the predator's species and returns its capped
// pursuit force for this tick.
func (f *Flock[V]) huntingForce(p *Predator[V]) V {
	var zero V
	zero = zero.Zero()
	strength := f.params.PredatorHuntingStrength

	switch p.Species {
	case CenterHunter:
		// No discrete target: a catch is any boid inside catch distance.
		if j := f.nearestBoid(p.Pos); j >= 0 && p.CheckCatch(f.Boids[j].Pos) {
			p.StartCooldown()
			return zero
		}
		return p.SteerToward(f.centroid(), strength)

	case NearestHunter:
		return f.pursue(p, strength, func(candidates []int) int {
			return f.closestOf(p.Pos, candidates)
		})

	case StragglerHunter:
		return f.pursue(p, strength, f.mostIsolatedOf)

	case PatrolHunter:
		f.clampPatrolCenter(p)
		if j := f.nearestBoid(p.Pos); j >= 0 && p.Pos.DistanceTo(f.Boids[j].Pos) < AmbushRange {
			target := f.Boids[j].Pos
			if p.CheckCatch(target) {
				p.StartCooldown()
				return zero
			}
			return p.SteerToward(target, strength*ambushAttackBoost)
		}
		return p.SteerToward(p.patrolTarget(), strength)

	case RandomHunter:
		return f.pursue(p, strength, func(candidates []int) int {
			return candidates[f.rng.IntN(len(candidates))]
		})
	}
	return zero
}

// pursue implements the shared Seeking/Pursuing logic. The select function
// picks a target from an edge-filtered candidate pool; the state machine
// handles catches, timeouts and failed chases.
func (f *Flock[V]) pursue(p *Predator[V], strength float64, selectFrom func([]int) int) V {
	var zero V
	zero = zero.Zero()

	if p.target == noTarget || p.target >= len(f.Boids) || p.ShouldSwitchTarget() {
		p.ResetTarget()
		p.target = selectFrom(f.targetCandidates())
		if p.target == noTarget {
			return zero
		}
	}
	p.framesOnTarget++

	target := f.Boids[p.target].Pos
	if p.CheckCatch(target) {
		p.StartCooldown()
		return zero
	}
	if p.CheckChaseFailure(p.Pos.DistanceTo(target)) {
		p.ResetTarget()
		return zero
	}
	return p.SteerToward(target, strength)
}

// targetCandidates returns the indices of boids away from the walls, or all
// boids when the whole flock hugs the edges. Hunting prey pinned against a
// boundary turns into a wall-grinding stalemate.
func (f *Flock[V]) targetCandidates() []int {
	f.candidates = f.candidates[:0]
	for i := range f.Boids {
		if !nearEdge(f.Boids[i].Pos, f.extents) {
			f.candidates = append(f.candidates, i)
		}
	}
	if len(f.candidates) == 0 {
		for i := range f.Boids {
			f.candidates = append(f.candidates, i)
		}
	}
	return f.candidates
}

func (f *Flock[V]) closestOf(pos V, candidates []int) int {
	best := noTarget
	bestSq := math.Inf(1)
	for _, i := range candidates {
		if d := pos.DistanceSquaredTo(f.Boids[i].Pos); d < bestSq {
			bestSq = d
			best = i
		}
	}
	return best
}

// mostIsolatedOf picks the candidate with the fewest flock mates inside the
// visual range, counted against the pre-tick snapshot the index was built
// from. Ties go to the lowest index.
func (f *Flock[V]) mostIsolatedOf(candidates []int) int {
	best := noTarget
	bestCount := math.MaxInt
	for _, i := range candidates {
		if i >= len(f.positions) {
			continue
		}
		count := f.grid.CountInRadius(f.positions[i], f.params.VisualRange, i)
		if count < bestCount {
			bestCount = count
			best = i
		}
	}
	return best
}

func (f *Flock[V]) nearestBoid(pos V) int {
	best := noTarget
	bestSq := math.Inf(1)
	for i := range f.Boids {
		if d := pos.DistanceSquaredTo(f.Boids[i].Pos); d < bestSq {
			bestSq = d
			best = i
		}
	}
	return best
}

func (f *Flock[V]) centroid() V {
	var sum V
	sum = sum.Zero()
	for i := range f.Boids {
		sum = sum.Add(f.Boids[i].Pos)
	}
	return sum.Mul(1 / float64(len(f.Boids)))
}

// clampPatrolCenter keeps the patrol circle well inside the walls so the
// waypoints never drag the predator into the margin zone.
func (f *Flock[V]) clampPatrolCenter(p *Predator[V]) {
	lo := f.params.Margin + 50
	for a := 0; a < p.patrolCenter.Axes(); a++ {
		hi := f.extents.Axis(a) - f.params.Margin - 50
		c := p.patrolCenter.Axis(a)
		if c < lo {
			p.patrolCenter = p.patrolCenter.WithAxis(a, lo)
		} else if c > hi {
			p.patrolCenter = p.patrolCenter.WithAxis(a, hi)
		}
	}
}

// ---------------------------------------------------------------------
// Registry operations
// ---------------------------------------------------------------------

// AddBoids spawns n additional boids, up to the population cap. Returns the
// new population size.
func (f *Flock[V]) AddBoids(n int) (int, error) {
	for i := 0; i < n; i++ {
		if len(f.Boids) >= MaxBoids {
			return len(f.Boids), fmt.Errorf("%w: %d", ErrBoidLimit, MaxBoids)
		}
		f.Boids = append(f.Boids, f.spawnBoid())
	}
	return len(f.Boids), nil
}

// AddObstacle places an obstacle and returns its index. A non-positive
// radius falls back to the default.
func (f *Flock[V]) AddObstacle(pos V, radius float64) (int, error) {
	if len(f.Obstacles) >= MaxObstacles {
		return -1, fmt.Errorf("%w: %d", ErrObstacleLimit, MaxObstacles)
	}
	if radius <= 0 {
		radius = DefaultObstacleRadius
	}
	var zero V
	zero = zero.Zero()
	f.Obstacles = append(f.Obstacles, Obstacle[V]{
		Pos:    geometry.Clamp(pos, zero, f.extents),
		Radius: radius,
	})
	return len(f.Obstacles) - 1, nil
}

// RemoveObstacle deletes the obstacle at index i. An out-of-range index is
// reported and the collection is left unchanged.
func (f *Flock[V]) RemoveObstacle(i int) error {
	if i < 0 || i >= len(f.Obstacles) {
		return fmt.Errorf("%w: obstacle %d of %d", ErrInvalidIndex, i, len(f.Obstacles))
	}
	f.Obstacles = append(f.Obstacles[:i], f.Obstacles[i+1:]...)
	return nil
}

// ClearObstacles removes all obstacles and returns how many were removed.
func (f *Flock[V]) ClearObstacles() int {
	n := len(f.Obstacles)
	f.Obstacles = f.Obstacles[:0]
	return n
}

// AddPredator spawns one predator with the next ordinal species and returns
// its index.
func (f *Flock[V]) AddPredator() (int, error) {
	if len(f.Predators) >= MaxPredators {
		return -1, fmt.Errorf("%w: %d", ErrPredatorLimit, MaxPredators)
	}
	f.Predators = append(f.Predators, f.spawnPredator(len(f.Predators)))
	return len(f.Predators) - 1, nil
}

// RemovePredator deletes the predator at index i.
func (f *Flock[V]) RemovePredator(i int) error {
	if i < 0 || i >= len(f.Predators) {
		return fmt.Errorf("%w: predator %d of %d", ErrInvalidIndex, i, len(f.Predators))
	}
	f.Predators = append(f.Predators[:i], f.Predators[i+1:]...)
	return nil
}

// SetPredatorCount grows or shrinks the predator collection to n, clamped
// to [0, MaxPredators]. Existing predators keep their state; new ones get
// species by ordinal index.
func (f *Flock[V]) SetPredatorCount(n int) {
	if n < 0 {
		n = 0
	}
	if n > MaxPredators {
		n = MaxPredators
	}
	for len(f.Predators) > n {
		f.Predators = f.Predators[:len(f.Predators)-1]
	}
	for len(f.Predators) < n {
		f.Predators = append(f.Predators, f.spawnPredator(len(f.Predators)))
	}
}
