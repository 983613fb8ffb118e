//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"bubblemesh/internal/core"
)

// FieldPainter uploads a scalar grid into a single RGBA image and draws it
// scaled onto the screen.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a grid of size w*h.
func NewFieldPainter(w, h int) *FieldPainter {
	fp := &FieldPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit maps the grid onto a lo-to-hi color ramp and draws it to dst.
func (fp *FieldPainter) Blit(dst *ebiten.Image, g *core.FloatGrid, max float32, lo, hi color.RGBA, scale int) {
	if g.W != fp.w || g.H != fp.h {
		return
	}
	fillScalarRGBA(fp.buf, g.Cells(), max, lo, hi)
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
