package noise

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// walkMaxJump samples the field along the x axis and returns the largest
// delta between adjacent samples.
func walkMaxJump(f *Field, x0, x1, y, z float64, steps int) float64 {
	maxJump := 0.0
	prev := math.NaN()
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*float64(i)/float64(steps)
		v := f.Evaluate(r3.Vec{X: x, Y: y, Z: z})
		if !math.IsNaN(prev) {
			if jump := math.Abs(v - prev); jump > maxJump {
				maxJump = jump
			}
		}
		prev = v
	}
	return maxJump
}

// Crossing the origin is where sign-collision bugs in the cell hash show up
// as step discontinuities.
func TestContinuityAcrossOrigin(t *testing.T) {
	f := NewField(NewCache(), 1.5, 0.4)
	if jump := walkMaxJump(f, -0.1, 0.1, 0, 0, 200); jump >= 0.05 {
		t.Fatalf("discontinuity crossing origin: max jump %v", jump)
	}
}

func TestContinuityAcrossCellBoundary(t *testing.T) {
	f := NewField(NewCache(), 1.0, 0.4)
	if jump := walkMaxJump(f, 0.9, 1.1, 0.5, 0.5, 200); jump >= 0.05 {
		t.Fatalf("discontinuity crossing cell boundary: max jump %v", jump)
	}
}

func TestEvaluateNonNegative(t *testing.T) {
	f := NewField(NewCache(), 1.5, 0.8)
	for i := 0; i < 500; i++ {
		p := r3.Vec{
			X: -4 + 8*float64(i)/500,
			Y: math.Sin(float64(i) * 0.7),
			Z: math.Cos(float64(i) * 1.3),
		}
		if v := f.Evaluate(p); v < 0 {
			t.Fatalf("negative field value %v at %+v", v, p)
		}
	}
}

// A query point out of reach of every feature in the scan window must yield
// exactly zero, not a small residual.
func TestEvaluateZeroBeyondLobeReach(t *testing.T) {
	c := NewCache()
	for i := -windowRadius; i <= windowRadius; i++ {
		for j := -windowRadius; j <= windowRadius; j++ {
			for k := -windowRadius; k <= windowRadius; k++ {
				c.points[Cell{I: i, J: j, K: k}] = FeaturePoint{
					Pos:    r3.Vec{X: 1000},
					Height: 1.0,
					Radius: 1.6,
				}
			}
		}
	}
	f := NewField(c, 1.0, 0.4)
	if v := f.Evaluate(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}); v != 0 {
		t.Fatalf("expected exact zero beyond lobe reach, got %v", v)
	}
}

func TestLobeProfile(t *testing.T) {
	if v := lobe(1.0, 1.3); v != 0 {
		t.Fatalf("lobe at boundary should be exactly zero, got %v", v)
	}
	if v := lobe(2.5, 1.3); v != 0 {
		t.Fatalf("lobe beyond boundary should be exactly zero, got %v", v)
	}
	if v := lobe(0, 1.3); v != 1.3 {
		t.Fatalf("lobe at center should equal height, got %v", v)
	}
	prev := math.Inf(1)
	for d2 := 0.0; d2 <= 1.0; d2 += 0.05 {
		v := lobe(d2, 1.0)
		if v > prev {
			t.Fatalf("lobe not monotonically falling at d2=%v: %v > %v", d2, v, prev)
		}
		prev = v
	}
}

func TestSmoothMaxProperties(t *testing.T) {
	for _, x := range []float64{0, 0.2, 0.7, 1.4} {
		if got := smoothMax(x, 0); math.Abs(got-x) > 1e-12 {
			t.Fatalf("smoothMax(%v, 0) = %v, want identity", x, got)
		}
	}
	if got := smoothMax(0.6, 0.5); got < 0.6 {
		t.Fatalf("smoothMax(0.6, 0.5) = %v, below max input", got)
	}
	if got := smoothMax(-0.3, 0.5); got < 0.5 || math.IsNaN(got) {
		t.Fatalf("smoothMax with negative input = %v, want clamped to %v+", got, 0.5)
	}
}
