package geometry

import (
	"math/rand/v2"
)

// Vector is the constraint shared by Vector2D and Vector3D. Code written
// against it works unchanged in both dimensions; the axis accessors exist so
// per-component logic (boundary checks, serialization) does not need to know
// the concrete type.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(float64) V
	Dot(V) float64
	Len() float64
	LenSqr() float64
	Normalize() V
	DistanceTo(V) float64
	DistanceSquaredTo(V) float64
	Zero() V
	Axes() int
	Axis(i int) float64
	WithAxis(i int, value float64) V
}

// RandomUnit returns a uniformly distributed unit vector. Sampling each
// component from a normal distribution and normalizing gives a uniform
// direction in any dimension.
func RandomUnit[V Vector[V]](rng *rand.Rand) V {
	var v V
	for {
		u := v.Zero()
		for i := 0; i < u.Axes(); i++ {
			u = u.WithAxis(i, rng.NormFloat64())
		}
		if u.LenSqr() > Epsilon {
			return u.Normalize()
		}
	}
}

// RandomWithin returns a point with each component drawn uniformly from
// [lo_i, hi_i].
func RandomWithin[V Vector[V]](rng *rand.Rand, lo, hi V) V {
	var v V
	p := v.Zero()
	for i := 0; i < p.Axes(); i++ {
		l, h := lo.Axis(i), hi.Axis(i)
		p = p.WithAxis(i, l+rng.Float64()*(h-l))
	}
	return p
}

// Clamp limits each component of v to [lo_i, hi_i].
func Clamp[V Vector[V]](v, lo, hi V) V {
	for i := 0; i < v.Axes(); i++ {
		c := v.Axis(i)
		if c < lo.Axis(i) {
			v = v.WithAxis(i, lo.Axis(i))
		} else if c > hi.Axis(i) {
			v = v.WithAxis(i, hi.Axis(i))
		}
	}
	return v
}

// Coords flattens v into a float64 slice, one entry per axis.
func Coords[V Vector[V]](v V) []float64 {
	out := make([]float64, v.Axes())
	for i := range out {
		out[i] = v.Axis(i)
	}
	return out
}

// FromCoords builds a vector from a flat coordinate slice. Missing trailing
// components stay zero; extra entries are ignored.
func FromCoords[V Vector[V]](coords []float64) V {
	var v V
	p := v.Zero()
	for i := 0; i < p.Axes() && i < len(coords); i++ {
		p = p.WithAxis(i, coords[i])
	}
	return p
}
