// Package noise implements the hashed Voronoi-style bubble field: a cached
// feature point per lattice cell and a continuous scalar evaluated by merging
// nearby lobe contributions with a power smooth-maximum.
package noise

import (
	"gonum.org/v1/gonum/spatial/r3"

	"bubblemesh/pkg/core"
)

// Cell identifies a unit cube of the scaled noise lattice.
type Cell struct {
	I, J, K int
}

// FeaturePoint is one bubble center: a jittered position inside its cell plus
// the height and radius multipliers drawn for it.
type FeaturePoint struct {
	Pos    r3.Vec
	Height float64
	Radius float64
}

// Hash primes, one per axis. A plain tuple hash collides for small
// negative/positive coordinate pairs, which shows up as mirrored bubbles
// around the origin; mixing each axis with its own prime avoids that.
const (
	hashPrimeX = 73856093
	hashPrimeY = 19349663
	hashPrimeZ = 83492791
)

// cellSeed derives a 31-bit seed from integer cell coordinates.
func cellSeed(c Cell) int64 {
	h := (int64(c.I) * hashPrimeX) ^ (int64(c.J) * hashPrimeY) ^ (int64(c.K) * hashPrimeZ)
	return h & 0x7fffffff
}

// Cache lazily generates and remembers one FeaturePoint per cell. It is owned
// by the caller running a displacement pass and must be cleared between runs;
// within a run the cache guarantees that every lookup of a cell observes the
// same point, which keeps the field deterministic and continuous.
type Cache struct {
	points map[Cell]FeaturePoint
}

// NewCache returns an empty feature point cache.
func NewCache() *Cache {
	return &Cache{points: make(map[Cell]FeaturePoint)}
}

// Clear empties the cache. Safe to call on a fresh cache.
func (c *Cache) Clear() {
	clear(c.points)
}

// Len reports the number of cached cells.
func (c *Cache) Len() int { return len(c.points) }

// GetOrCreate returns the feature point for the cell, generating it on first
// access. Draws happen in a fixed order from a seed derived only from the
// cell coordinates, so regeneration after Clear is bit-identical.
func (c *Cache) GetOrCreate(cell Cell, variance float64) FeaturePoint {
	if fp, ok := c.points[cell]; ok {
		return fp
	}
	rng := core.NewRNG(cellSeed(cell))
	fp := FeaturePoint{
		Pos: r3.Vec{
			X: float64(cell.I) + rng.Float64(),
			Y: float64(cell.J) + rng.Float64(),
			Z: float64(cell.K) + rng.Float64(),
		},
		// High variance pushes the height spread toward chaos rather
		// than a visible grid.
		Height: 0.9 + rng.Float64()*variance*1.5,
		// Radius 1.1-1.6 guarantees heavy overlap between neighbors.
		Radius: 1.1 + rng.Float64()*0.5,
	}
	c.points[cell] = fp
	return fp
}
