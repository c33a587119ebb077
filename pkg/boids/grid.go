package boids

import (
	"math"

	"github.com/codegithubka/boids-interactive/pkg/geometry"
)

// minCellSize avoids degenerate grids when every query radius is tiny.
const minCellSize = 10.0

type cellKey [3]int

// Grid is a spatial hash over a snapshot of positions. It is rebuilt once per
// tick and then queried read-only, so every query during a tick sees the same
// consistent snapshot.
//
// Cells are map entries keyed by integer coordinates; unused axes of the key
// stay zero in 2D so the same structure serves both dimensions.
type Grid[V geometry.Vector[V]] struct {
	cellSize  float64
	cells     map[cellKey][]int
	positions []V
}

// NewGrid creates a grid with the given cell size. Sizes below minCellSize
// are clamped up so a one-cell neighborhood scan stays cheap.
func NewGrid[V geometry.Vector[V]](cellSize float64) *Grid[V] {
	return &Grid[V]{
		cellSize: math.Max(cellSize, minCellSize),
		cells:    make(map[cellKey][]int),
	}
}

// SetCellSize changes the cell size for subsequent rebuilds.
func (g *Grid[V]) SetCellSize(cellSize float64) {
	g.cellSize = math.Max(cellSize, minCellSize)
}

// CellSize returns the effective cell size.
func (g *Grid[V]) CellSize() float64 {
	return g.cellSize
}

// Rebuild re-indexes the given positions. The slice is retained until the
// next Rebuild; callers must not mutate it while querying.
//
// Cell slices are reset to length zero but keep their capacity, so steady
// state rebuilds allocate almost nothing.
func (g *Grid[V]) Rebuild(positions []V) {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	g.positions = positions
	for i, p := range positions {
		key := g.keyFor(p)
		g.cells[key] = append(g.cells[key], i)
	}
}

func (g *Grid[V]) keyFor(p V) cellKey {
	var key cellKey
	for a := 0; a < p.Axes(); a++ {
		key[a] = int(math.Floor(p.Axis(a) / g.cellSize))
	}
	return key
}

// QueryRadius appends to dst the indices of all indexed positions strictly
// within radius of center, and returns the extended slice. The center point
// itself is included when it is an indexed position. Pass dst[:0] to reuse a
// scratch buffer across queries.
func (g *Grid[V]) QueryRadius(dst []int, center V, radius float64) []int {
	radiusSq := radius * radius
	var lo, hi cellKey
	axes := center.Axes()
	for a := 0; a < axes; a++ {
		lo[a] = int(math.Floor((center.Axis(a) - radius) / g.cellSize))
		hi[a] = int(math.Floor((center.Axis(a) + radius) / g.cellSize))
	}

	var key cellKey
	for x := lo[0]; x <= hi[0]; x++ {
		key[0] = x
		for y := lo[1]; y <= hi[1]; y++ {
			key[1] = y
			for z := lo[2]; z <= hi[2]; z++ {
				key[2] = z
				for _, i := range g.cells[key] {
					if g.positions[i].DistanceSquaredTo(center) < radiusSq {
						dst = append(dst, i)
					}
				}
			}
		}
	}
	return dst
}

// CountInRadius counts indexed positions strictly within radius of center,
// excluding the position at index exclude (pass a negative value to exclude
// nothing). Allocation free.
func (g *Grid[V]) CountInRadius(center V, radius float64, exclude int) int {
	radiusSq := radius * radius
	var lo, hi cellKey
	for a := 0; a < center.Axes(); a++ {
		lo[a] = int(math.Floor((center.Axis(a) - radius) / g.cellSize))
		hi[a] = int(math.Floor((center.Axis(a) + radius) / g.cellSize))
	}

	count := 0
	var key cellKey
	for x := lo[0]; x <= hi[0]; x++ {
		key[0] = x
		for y := lo[1]; y <= hi[1]; y++ {
			key[1] = y
			for z := lo[2]; z <= hi[2]; z++ {
				key[2] = z
				for _, i := range g.cells[key] {
					if i == exclude {
						continue
					}
					if g.positions[i].DistanceSquaredTo(center) < radiusSq {
						count++
					}
				}
			}
		}
	}
	return count
}
