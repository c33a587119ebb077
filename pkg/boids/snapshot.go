package boids

import (
	"github.com/codegithubka/boids-interactive/pkg/geometry"
)

// Snapshot is the per-tick view of a flock, flattened to plain slices so the
// transport layer can serialize it without knowing the vector dimensionality.
// The engine itself does no wire encoding.
type Snapshot struct {
	Frame  uint64    `json:"frame"`
	Dims   int       `json:"dims"`
	Bounds []float64 `json:"bounds"`

	// Boids holds one row per boid: position components followed by
	// velocity components.
	Boids     [][]float64        `json:"boids"`
	Predators []PredatorSnapshot `json:"predators"`
	Obstacles []ObstacleSnapshot `json:"obstacles"`
}

// PredatorSnapshot is one predator's state with its species tag.
type PredatorSnapshot struct {
	Pos      []float64 `json:"pos"`
	Vel      []float64 `json:"vel"`
	Species  string    `json:"species"`
	Name     string    `json:"name"`
	Cooldown bool      `json:"cooldown"`
}

// ObstacleSnapshot is one obstacle's position and radius.
type ObstacleSnapshot struct {
	Pos    []float64 `json:"pos"`
	Radius float64   `json:"radius"`
}

// Snapshot captures the current state for serialization.
func (f *Flock[V]) Snapshot() Snapshot {
	var zero V
	dims := zero.Zero().Axes()

	s := Snapshot{
		Frame:  f.frame,
		Dims:   dims,
		Bounds: geometry.Coords(f.extents),
		Boids:  make([][]float64, len(f.Boids)),
	}

	for i, b := range f.Boids {
		row := make([]float64, 0, 2*dims)
		row = append(row, geometry.Coords(b.Pos)...)
		row = append(row, geometry.Coords(b.Vel)...)
		s.Boids[i] = row
	}

	for i := range f.Predators {
		p := &f.Predators[i]
		s.Predators = append(s.Predators, PredatorSnapshot{
			Pos:      geometry.Coords(p.Pos),
			Vel:      geometry.Coords(p.Vel),
			Species:  p.Species.String(),
			Name:     p.Species.Name(),
			Cooldown: p.InCooldown(),
		})
	}

	for _, o := range f.Obstacles {
		s.Obstacles = append(s.Obstacles, ObstacleSnapshot{
			Pos:    geometry.Coords(o.Pos),
			Radius: o.Radius,
		})
	}
	return s
}
