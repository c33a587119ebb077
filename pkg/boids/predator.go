package boids

import (
	"math"

	"github.com/codegithubka/boids-interactive/pkg/geometry"
)

// Hunting behavior constants. The force cap and the progressive boundary
// steering were tuned together; a distance-scaled pursuit force with no cap
// can overpower boundary steering and push prey through the wall.
const (
	MaxTargetFrames    = 180  // force target variety after ~3s at 60fps
	CatchDistance      = 15.0 // target counts as caught inside this radius
	CooldownDuration   = 60   // rest frames after a catch
	ChaseFailureFrames = 90   // give up after ~1.5s without progress
	EdgeMargin         = 100.0
	MaxHuntForce       = 1.0

	// Progress below this per-frame distance gain counts as a stalled chase.
	chaseProgressThreshold = 0.5

	PatrolRadius      = 150.0
	PatrolAngularStep = 0.03
	AmbushRange       = 100.0
	ambushAttackBoost = 1.5
)

// Species selects a predator's target-selection policy. Assigned once by
// ordinal index at creation and fixed for the predator's lifetime.
type Species int

const (
	CenterHunter    Species = iota // steers at the flock centroid (Hawk)
	NearestHunter                  // chases the closest boid (Falcon)
	StragglerHunter                // targets the most isolated boid (Eagle)
	PatrolHunter                   // circles an area, ambushes intruders (Kite)
	RandomHunter                   // locks onto a random boid (Osprey)

	speciesCount
)

// SpeciesByIndex maps a predator's ordinal index to its species.
func SpeciesByIndex(i int) Species {
	return Species(i % int(speciesCount))
}

// String returns the species tag used in snapshots.
func (s Species) String() string {
	switch s {
	case CenterHunter:
		return "center"
	case NearestHunter:
		return "nearest"
	case StragglerHunter:
		return "straggler"
	case PatrolHunter:
		return "patrol"
	case RandomHunter:
		return "random"
	}
	return "unknown"
}

// Name returns the display name of the species.
func (s Species) Name() string {
	switch s {
	case CenterHunter:
		return "Hawk"
	case NearestHunter:
		return "Falcon"
	case StragglerHunter:
		return "Eagle"
	case PatrolHunter:
		return "Kite"
	case RandomHunter:
		return "Osprey"
	}
	return "Unknown"
}

const noTarget = -1

// Predator is a hunting agent. Its observable state machine has three
// states: Seeking (no target), Pursuing (target >= 0), and Cooldown
// (cooldownFrames > 0, hunting suppressed).
type Predator[V geometry.Vector[V]] struct {
	Pos     V
	Vel     V
	Species Species

	target           int
	framesOnTarget   int
	cooldownFrames   int
	lastTargetDist   float64
	framesNoProgress int

	patrolCenter V
	patrolAngle  float64
}

// NewPredator creates a predator at the given position with the given
// velocity. Patrol hunters anchor their patrol circle at the spawn point.
func NewPredator[V geometry.Vector[V]](pos, vel V, species Species) Predator[V] {
	return Predator[V]{
		Pos:            pos,
		Vel:            vel,
		Species:        species,
		target:         noTarget,
		lastTargetDist: math.Inf(1),
		patrolCenter:   pos,
	}
}

// InCooldown reports whether the predator is resting after a catch.
func (p *Predator[V]) InCooldown() bool {
	return p.cooldownFrames > 0
}

// Target returns the current target boid index, or -1 when seeking.
func (p *Predator[V]) Target() int {
	return p.target
}

// StartCooldown enters the post-catch rest state and drops the target.
func (p *Predator[V]) StartCooldown() {
	p.cooldownFrames = CooldownDuration
	p.ResetTarget()
}

// ResetTarget clears all target tracking state, returning to Seeking.
func (p *Predator[V]) ResetTarget() {
	p.target = noTarget
	p.framesOnTarget = 0
	p.lastTargetDist = math.Inf(1)
	p.framesNoProgress = 0
}

// UpdateCooldown decrements the cooldown counter if active.
func (p *Predator[V]) UpdateCooldown() {
	if p.cooldownFrames > 0 {
		p.cooldownFrames--
	}
}

// CheckCatch reports whether the target position is within catch distance.
func (p *Predator[V]) CheckCatch(target V) bool {
	return p.Pos.DistanceTo(target) < CatchDistance
}

// CheckChaseFailure tracks chase progress and reports whether the predator
// should give up. A frame counts as progress only when the distance to the
// target shrank by more than the stall threshold.
func (p *Predator[V]) CheckChaseFailure(currentDist float64) bool {
	if currentDist < p.lastTargetDist-chaseProgressThreshold {
		p.framesNoProgress = 0
	} else {
		p.framesNoProgress++
	}
	p.lastTargetDist = currentDist
	return p.framesNoProgress >= ChaseFailureFrames
}

// ShouldSwitchTarget reports whether the target timeout has elapsed.
func (p *Predator[V]) ShouldSwitchTarget() bool {
	return p.framesOnTarget >= MaxTargetFrames
}

// SteerToward computes a capped steering force toward a target position.
// The cap holds regardless of target distance.
func (p *Predator[V]) SteerToward(target V, strength float64) V {
	dv := target.Sub(p.Pos).Mul(strength)
	if mag := dv.Len(); mag > MaxHuntForce {
		dv = dv.Mul(MaxHuntForce / mag)
	}
	return dv
}

// nearEdge reports whether a position lies within EdgeMargin of any
// boundary face.
func nearEdge[V geometry.Vector[V]](pos, extents V) bool {
	for a := 0; a < pos.Axes(); a++ {
		c := pos.Axis(a)
		if c < EdgeMargin || c > extents.Axis(a)-EdgeMargin {
			return true
		}
	}
	return false
}

// patrolTarget advances the patrol angle and returns the next waypoint on
// the patrol circle. The circle lies in the plane of the first two axes;
// remaining axes stay at the patrol center.
func (p *Predator[V]) patrolTarget() V {
	p.patrolAngle += PatrolAngularStep
	t := p.patrolCenter
	t = t.WithAxis(0, t.Axis(0)+PatrolRadius*math.Cos(p.patrolAngle))
	t = t.WithAxis(1, t.Axis(1)+PatrolRadius*math.Sin(p.patrolAngle))
	return t
}
