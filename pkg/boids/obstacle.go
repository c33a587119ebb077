package boids

import (
	"github.com/codegithubka/boids-interactive/pkg/geometry"
)

// Obstacle is a static sphere (circle in 2D) that agents steer around.
type Obstacle[V geometry.Vector[V]] struct {
	Pos    V       `json:"pos"`
	Radius float64 `json:"radius"`
}

// Contains reports whether a point lies inside or on the obstacle surface.
func (o Obstacle[V]) Contains(p V) bool {
	return p.DistanceSquaredTo(o.Pos) <= o.Radius*o.Radius
}

// SurfaceDistance returns the distance from a point to the obstacle surface.
// Negative inside the obstacle.
func (o Obstacle[V]) SurfaceDistance(p V) float64 {
	return p.DistanceTo(o.Pos) - o.Radius
}
