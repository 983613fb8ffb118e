package noise

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// windowRadius is the half-width of the cell neighborhood scanned per query.
// A lobe can reach 1.6 cells from a feature point that sits up to one cell
// away from its own corner, so +-3 guarantees no lobe is ever missed.
const windowRadius = 3

// mergePower is the exponent of the power smooth-maximum used to combine
// overlapping lobes. 6 keeps individual bubbles readable while the merge
// seams stay smooth.
const mergePower = 6.0

// Field evaluates the bubble noise at arbitrary points. Scale maps world
// units to lattice cells; Variance controls the per-bubble height spread.
type Field struct {
	cache    *Cache
	Scale    float64
	Variance float64
}

// NewField wraps the provided cache. The cache must outlive the field and is
// shared with any other field constructed over it.
func NewField(cache *Cache, scale, variance float64) *Field {
	return &Field{cache: cache, Scale: scale, Variance: variance}
}

// smoothMax merges two lobe heights with a power mean. It is continuous,
// monotonic, bounded below by max(a, b), and satisfies smoothMax(x, 0) == x,
// so a lobe entering or leaving range never produces a step.
func smoothMax(a, b float64) float64 {
	if a < 0 {
		a = 0
	}
	if b < 0 {
		b = 0
	}
	return math.Pow(math.Pow(a, mergePower)+math.Pow(b, mergePower), 1.0/mergePower)
}

// lobe returns a single bubble's height at normalized squared distance d2
// from its center. Quartic profile: flat on top, steep shoulders, exactly
// zero at d2 >= 1 so the contribution decays through zero before the cell
// scan excludes it.
func lobe(d2, height float64) float64 {
	if d2 >= 1 {
		return 0
	}
	t := 1 - d2
	return t * t * height
}

// Evaluate returns the field value at p. Always >= 0; exactly 0 where no
// lobe reaches.
func (f *Field) Evaluate(p r3.Vec) float64 {
	s := r3.Scale(f.Scale, p)
	cx := int(math.Floor(s.X))
	cy := int(math.Floor(s.Y))
	cz := int(math.Floor(s.Z))

	total := 0.0
	for i := -windowRadius; i <= windowRadius; i++ {
		for j := -windowRadius; j <= windowRadius; j++ {
			for k := -windowRadius; k <= windowRadius; k++ {
				fp := f.cache.GetOrCreate(Cell{I: cx + i, J: cy + j, K: cz + k}, f.Variance)
				d := r3.Sub(s, fp.Pos)
				d2 := r3.Dot(d, d) / (fp.Radius * fp.Radius)
				if d2 >= 1 {
					continue
				}
				total = smoothMax(total, lobe(d2, fp.Height))
			}
		}
	}
	return total
}
