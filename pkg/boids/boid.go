package boids

import (
	"github.com/codegithubka/boids-interactive/pkg/geometry"
)

// Boid is a single flocking agent. Position and velocity share the flock's
// vector dimensionality.
type Boid[V geometry.Vector[V]] struct {
	Pos V
	Vel V
}

// Speed returns the current speed magnitude.
func (b Boid[V]) Speed() float64 {
	return b.Vel.Len()
}
