package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"bubblemesh/internal/core"
)

// degenerateNormalEps guards the unit-normal division. Zero-magnitude normal
// sums occur legitimately at some topologies and are not an error; the
// fallback direction is +z.
const degenerateNormalEps = 1e-4

// DisplaceParams tunes the per-vertex offset computation.
type DisplaceParams struct {
	// Height scales the noise value into world units.
	Height float64
	// Sharpness is the exponent applied to the smoothness value. Higher
	// powers crush displacement near corners harder while leaving flat
	// regions almost untouched.
	Sharpness float64
	// Bias is a constant added to every offset. Used to lift a displaced
	// sub-surface off its parent so the two never render coplanar; zero
	// when displacing a full closed body.
	Bias float64
}

// Displace computes new vertex positions: each raw vertex moves along its
// weld group's averaged unit normal by noise * height * attenuation + bias.
// A pure per-vertex map; all cross-vertex coupling lives in the precomputed
// topology and smoothness tables.
func Displace(m *TriangleMesh, t *Topology, smoothness []float64, field core.Field, p DisplaceParams) []float32 {
	unit := make([]r3.Vec, t.Groups())
	for i, s := range t.NormalSum {
		mag := r3.Norm(s)
		if mag < degenerateNormalEps {
			unit[i] = r3.Vec{Z: 1}
			continue
		}
		unit[i] = r3.Scale(1/mag, s)
	}

	out := make([]float32, len(m.Positions))
	for v := 0; v < m.VertexCount(); v++ {
		base := v * 3
		pos := r3.Vec{
			X: float64(m.Positions[base]),
			Y: float64(m.Positions[base+1]),
			Z: float64(m.Positions[base+2]),
		}
		g := t.GroupOf[v]
		attenuation := math.Pow(smoothness[g], p.Sharpness)
		offset := field.Evaluate(pos)*p.Height*attenuation + p.Bias
		moved := r3.Add(pos, r3.Scale(offset, unit[g]))
		out[base] = float32(moved.X)
		out[base+1] = float32(moved.Y)
		out[base+2] = float32(moved.Z)
	}
	return out
}
