package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"bubblemesh/internal/core"
)

// SampleSlice fills the grid with field values on the z = z plane. One grid
// cell covers 1/res world units, centered so the world origin sits mid-grid.
func SampleSlice(g *core.FloatGrid, field core.Field, z, res float64) {
	if res <= 0 {
		res = 1
	}
	cells := g.Cells()
	halfW := float64(g.W) / 2
	halfH := float64(g.H) / 2
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := r3.Vec{
				X: (float64(x) - halfW) / res,
				Y: (float64(y) - halfH) / res,
				Z: z,
			}
			cells[g.Index(x, y)] = float32(field.Evaluate(p))
		}
	}
}

// fillScalarRGBA converts scalar samples into RGBA pixels in buf, mapping
// [0, max] onto a linear blend from lo to hi. Values above max clamp to hi.
func fillScalarRGBA(buf []byte, cells []float32, max float32, lo, hi color.RGBA) {
	if max <= 0 {
		max = 1
	}
	for i, v := range cells {
		t := v / max
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		base := i * 4
		buf[base+0] = lerp8(lo.R, hi.R, t)
		buf[base+1] = lerp8(lo.G, hi.G, t)
		buf[base+2] = lerp8(lo.B, hi.B, t)
		buf[base+3] = lerp8(lo.A, hi.A, t)
	}
}

func lerp8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t)
}
