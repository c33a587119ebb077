package boids

import (
	"math"

	"github.com/codegithubka/boids-interactive/pkg/geometry"
)

// Quantitative measures of predator-prey dynamics, used for parameter sweep
// experiments and headless runs. With multiple predators, per-boid distances
// are taken to the nearest predator.

// AvgDistanceToPredator returns the mean over all boids of the distance to
// the nearest predator. Zero when either collection is empty.
func AvgDistanceToPredator[V geometry.Vector[V]](boids []Boid[V], predators []Predator[V]) float64 {
	if len(boids) == 0 || len(predators) == 0 {
		return 0
	}
	total := 0.0
	for i := range boids {
		total += nearestPredatorDistance(boids[i].Pos, predators)
	}
	return total / float64(len(boids))
}

// MinDistanceToPredator returns the closest any boid gets to any predator.
// +Inf when either collection is empty.
func MinDistanceToPredator[V geometry.Vector[V]](boids []Boid[V], predators []Predator[V]) float64 {
	min := math.Inf(1)
	for i := range boids {
		if d := nearestPredatorDistance(boids[i].Pos, predators); d < min {
			min = d
		}
	}
	return min
}

func nearestPredatorDistance[V geometry.Vector[V]](pos V, predators []Predator[V]) float64 {
	best := math.Inf(1)
	for i := range predators {
		if d := pos.DistanceTo(predators[i].Pos); d < best {
			best = d
		}
	}
	return best
}

// FlockCohesion measures how tightly the flock is grouped: the per-axis
// standard deviation of boid positions, averaged across axes. Lower is
// tighter. Zero for fewer than two boids.
func FlockCohesion[V geometry.Vector[V]](boids []Boid[V]) float64 {
	if len(boids) < 2 {
		return 0
	}
	var zero V
	axes := zero.Zero().Axes()
	n := float64(len(boids))

	total := 0.0
	for a := 0; a < axes; a++ {
		mean := 0.0
		for i := range boids {
			mean += boids[i].Pos.Axis(a)
		}
		mean /= n

		variance := 0.0
		for i := range boids {
			d := boids[i].Pos.Axis(a) - mean
			variance += d * d
		}
		total += math.Sqrt(variance / n)
	}
	return total / float64(axes)
}

// FlockSpread returns the maximum pairwise distance between boids, the
// diameter of the flock. Zero for fewer than two boids.
func FlockSpread[V geometry.Vector[V]](boids []Boid[V]) float64 {
	max := 0.0
	for i := range boids {
		for j := i + 1; j < len(boids); j++ {
			if d := boids[i].Pos.DistanceTo(boids[j].Pos); d > max {
				max = d
			}
		}
	}
	return max
}

// MeanPairwiseDistance returns the mean distance over all boid pairs. Zero
// for fewer than two boids.
func MeanPairwiseDistance[V geometry.Vector[V]](boids []Boid[V]) float64 {
	if len(boids) < 2 {
		return 0
	}
	total := 0.0
	pairs := 0
	for i := range boids {
		for j := i + 1; j < len(boids); j++ {
			total += boids[i].Pos.DistanceTo(boids[j].Pos)
			pairs++
		}
	}
	return total / float64(pairs)
}

// FrameMetrics captures one frame's measurements.
type FrameMetrics struct {
	AvgDistanceToPredator float64
	MinDistanceToPredator float64
	FlockCohesion         float64
}

// RunMetrics aggregates frame metrics over a complete run.
type RunMetrics struct {
	MeanAvgDistance    float64
	MeanMinDistance    float64
	MeanCohesion       float64
	OverallMinDistance float64
	StdAvgDistance     float64
	StdMinDistance     float64
	StdCohesion        float64
	NumFrames          int
}

// MetricsCollector records per-frame metrics during a run. Frames without
// predators are skipped so cooldown experiments stay comparable.
type MetricsCollector struct {
	frames []FrameMetrics
}

// Reset clears all recorded frames.
func (c *MetricsCollector) Reset() {
	c.frames = c.frames[:0]
}

// Record appends one frame's measurements.
func (c *MetricsCollector) Record(m FrameMetrics) {
	c.frames = append(c.frames, m)
}

// RecordFrame measures the current state of a flock. No-op when the flock
// has no predators.
func RecordFrame[V geometry.Vector[V]](c *MetricsCollector, f *Flock[V]) {
	if len(f.Predators) == 0 {
		return
	}
	c.Record(FrameMetrics{
		AvgDistanceToPredator: AvgDistanceToPredator(f.Boids, f.Predators),
		MinDistanceToPredator: MinDistanceToPredator(f.Boids, f.Predators),
		FlockCohesion:         FlockCohesion(f.Boids),
	})
}

// Summarize computes run-level statistics over the recorded frames.
func (c *MetricsCollector) Summarize() RunMetrics {
	n := len(c.frames)
	if n == 0 {
		return RunMetrics{OverallMinDistance: math.Inf(1)}
	}

	var sumAvg, sumMin, sumCoh float64
	overallMin := math.Inf(1)
	for _, m := range c.frames {
		sumAvg += m.AvgDistanceToPredator
		sumMin += m.MinDistanceToPredator
		sumCoh += m.FlockCohesion
		if m.MinDistanceToPredator < overallMin {
			overallMin = m.MinDistanceToPredator
		}
	}
	nf := float64(n)
	meanAvg, meanMin, meanCoh := sumAvg/nf, sumMin/nf, sumCoh/nf

	var varAvg, varMin, varCoh float64
	for _, m := range c.frames {
		varAvg += (m.AvgDistanceToPredator - meanAvg) * (m.AvgDistanceToPredator - meanAvg)
		varMin += (m.MinDistanceToPredator - meanMin) * (m.MinDistanceToPredator - meanMin)
		varCoh += (m.FlockCohesion - meanCoh) * (m.FlockCohesion - meanCoh)
	}

	return RunMetrics{
		MeanAvgDistance:    meanAvg,
		MeanMinDistance:    meanMin,
		MeanCohesion:       meanCoh,
		OverallMinDistance: overallMin,
		StdAvgDistance:     math.Sqrt(varAvg / nf),
		StdMinDistance:     math.Sqrt(varMin / nf),
		StdCohesion:        math.Sqrt(varCoh / nf),
		NumFrames:          n,
	}
}
