package boids

import (
	"math"

	"github.com/codegithubka/boids-interactive/pkg/geometry"
)

// The steering rules are pure functions over a pre-tick snapshot. Each one
// returns a delta-velocity contribution; the flock update cycle sums them and
// applies the total in a second phase. Neighbor candidates come from a single
// spatial index query; every rule re-filters by its own exact range.

// Separation pushes the boid away from every neighbor strictly inside the
// protected range. Coincident neighbors are skipped since their direction is
// undefined.
func Separation[V geometry.Vector[V]](self int, positions []V, neighbors []int, protectedRange, strength float64) V {
	var repel V
	repel = repel.Zero()
	rangeSq := protectedRange * protectedRange
	for _, j := range neighbors {
		if j == self {
			continue
		}
		d := positions[self].Sub(positions[j])
		distSq := d.LenSqr()
		if distSq >= rangeSq || distSq < geometry.Epsilon {
			continue
		}
		repel = repel.Add(d)
	}
	return repel.Mul(strength)
}

// Alignment steers toward the mean velocity of all neighbors inside the
// visual range. Zero neighbors contribute nothing.
func Alignment[V geometry.Vector[V]](self int, positions, velocities []V, neighbors []int, visualRange, factor float64) V {
	var sum V
	sum = sum.Zero()
	rangeSq := visualRange * visualRange
	count := 0
	for _, j := range neighbors {
		if j == self {
			continue
		}
		if positions[self].DistanceSquaredTo(positions[j]) >= rangeSq {
			continue
		}
		sum = sum.Add(velocities[j])
		count++
	}
	if count == 0 {
		return sum
	}
	mean := sum.Mul(1 / float64(count))
	return mean.Sub(velocities[self]).Mul(factor)
}

// Cohesion steers toward the centroid of all neighbors inside the visual
// range. Zero neighbors contribute nothing.
func Cohesion[V geometry.Vector[V]](self int, positions []V, neighbors []int, visualRange, factor float64) V {
	var sum V
	sum = sum.Zero()
	rangeSq := visualRange * visualRange
	count := 0
	for _, j := range neighbors {
		if j == self {
			continue
		}
		if positions[self].DistanceSquaredTo(positions[j]) >= rangeSq {
			continue
		}
		sum = sum.Add(positions[j])
		count++
	}
	if count == 0 {
		return sum
	}
	centroid := sum.Mul(1 / float64(count))
	return centroid.Sub(positions[self]).Mul(factor)
}

// BoundarySteer pushes an agent back toward the interior once it enters the
// margin zone of any face. The push grows with penetration depth, from
// turnFactor at the margin line up to 2*turnFactor at the wall and beyond;
// a constant force lets fast pursuers carry prey through the wall.
func BoundarySteer[V geometry.Vector[V]](p, extents V, margin, turnFactor float64) V {
	var dv V
	dv = dv.Zero()
	for a := 0; a < p.Axes(); a++ {
		c := p.Axis(a)
		extent := extents.Axis(a)
		if c < margin {
			scale := 1.0 + (margin-c)/margin
			dv = dv.WithAxis(a, dv.Axis(a)+turnFactor*scale)
		} else if c > extent-margin {
			scale := 1.0 + (c-(extent-margin))/margin
			dv = dv.WithAxis(a, dv.Axis(a)-turnFactor*scale)
		}
	}
	return dv
}

// ObstacleAvoid sums push-away contributions from every obstacle whose
// surface lies within the detection range. An agent inside an obstacle gets
// the maximum push regardless of detection range.
func ObstacleAvoid[V geometry.Vector[V]](p V, obstacles []Obstacle[V], detectionRange, strength float64) V {
	var total V
	total = total.Zero()
	for _, o := range obstacles {
		d := p.Sub(o.Pos)
		centerDist := d.Len()
		surfaceDist := centerDist - o.Radius

		if surfaceDist <= 0 {
			// Inside the obstacle: strong push straight out. At the exact
			// center the direction is undefined; push along the first axis.
			if centerDist < geometry.Epsilon {
				var kick V
				kick = kick.Zero().WithAxis(0, 2.0)
				total = total.Add(kick)
				continue
			}
			total = total.Add(d.Mul(2.0 / centerDist))
			continue
		}
		if surfaceDist > detectionRange {
			continue
		}
		falloff := 1.0 - surfaceDist/detectionRange
		total = total.Add(d.Mul(falloff / centerDist))
	}
	return total.Mul(strength)
}

// PredatorAvoid flees from the nearest predator inside the detection range.
// Only the nearest predator counts; summing all of them can pull a boid
// toward a distant predator just because the summed vector happens to point
// that way. A predator exactly on top of the boid contributes nothing since
// the flee direction is undefined.
func PredatorAvoid[V geometry.Vector[V]](p V, predators []V, detectionRange, strength float64) V {
	var dv V
	dv = dv.Zero()

	nearest := -1
	nearestSq := detectionRange * detectionRange
	for i, pred := range predators {
		if distSq := p.DistanceSquaredTo(pred); distSq < nearestSq {
			nearestSq = distSq
			nearest = i
		}
	}
	if nearest < 0 {
		return dv
	}

	d := p.Sub(predators[nearest])
	dist := math.Sqrt(nearestSq)
	if dist < geometry.Epsilon {
		return dv
	}
	falloff := 1.0 - dist/detectionRange
	return d.Mul(strength * falloff / dist)
}
