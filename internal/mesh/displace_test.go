package mesh

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// flatField is a constant scalar field for exact displacement assertions.
type flatField float64

func (f flatField) Evaluate(r3.Vec) float64 { return float64(f) }

func quadMesh() *TriangleMesh {
	return &TriangleMesh{
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestFlatQuadDisplacesAlongNormal(t *testing.T) {
	m := quadMesh()
	topo, err := BuildTopology(m)
	if err != nil {
		t.Fatalf("BuildTopology: %v", err)
	}
	smooth := topo.SolveSmoothness(3)
	for i, s := range smooth {
		if math.Abs(s-1) > 1e-9 {
			t.Fatalf("flat quad group %d smoothness = %v, want 1", i, s)
		}
	}

	const noiseVal = 0.8
	out := Displace(m, topo, smooth, flatField(noiseVal), DisplaceParams{Height: 0.5, Sharpness: 4})

	for v := 0; v < m.VertexCount(); v++ {
		base := v * 3
		if out[base] != m.Positions[base] || out[base+1] != m.Positions[base+1] {
			t.Fatalf("vertex %d moved off the normal axis", v)
		}
		dz := float64(out[base+2] - m.Positions[base+2])
		if math.Abs(dz-noiseVal*0.5) > 1e-6 {
			t.Fatalf("vertex %d offset = %v, want %v", v, dz, noiseVal*0.5)
		}
	}
}

func TestSharpnessCrushesCornerDisplacement(t *testing.T) {
	corner := math.Sqrt(3) / 3
	attenCorner := math.Pow(corner, 4)
	attenFace := math.Pow(1.0, 4)
	if attenCorner >= 0.4 {
		t.Fatalf("corner attenuation %v, want < 0.4", attenCorner)
	}
	if attenFace <= 0.9 {
		t.Fatalf("face attenuation %v, want > 0.9", attenFace)
	}
}

// Opposite normals welded together sum to zero; the applier must fall back
// to +z instead of dividing by the magnitude.
func TestDegenerateNormalFallback(t *testing.T) {
	m := &TriangleMesh{
		Positions: []float32{2, 3, 4, 2, 3, 4},
		Normals:   []float32{0, 0, 1, 0, 0, -1},
	}
	topo, err := BuildTopology(m)
	if err != nil {
		t.Fatalf("BuildTopology: %v", err)
	}
	smooth := topo.SolveSmoothness(3)

	// Zero normal sum also means zero smoothness, so the noise term drops
	// out and only the bias remains.
	out := Displace(m, topo, smooth, flatField(1.0), DisplaceParams{Height: 0.5, Sharpness: 4, Bias: 0.02})
	for v := 0; v < 2; v++ {
		base := v * 3
		if out[base] != 2 || out[base+1] != 3 {
			t.Fatalf("vertex %d moved off the fallback axis", v)
		}
		dz := float64(out[base+2]) - 4
		if math.Abs(dz-0.02) > 1e-6 {
			t.Fatalf("vertex %d offset = %v, want bias 0.02 along +z", v, dz)
		}
	}
}
