//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bubblemesh/internal/core"
	"bubblemesh/internal/noise"
	"bubblemesh/internal/render"
)

// fieldCeiling normalizes the color ramp. Lobe heights top out around
// 0.9 + 1.5*variance, so 2 keeps the ramp stable across sane variances.
const fieldCeiling = 2.0

// Viewer animates a z-slice of the bubble noise field and lets the user
// adjust density and variance interactively.
type Viewer struct {
	cfg     *Config
	cache   *noise.Cache
	field   *noise.Field
	grid    *core.FloatGrid
	painter *render.FieldPainter

	z      float64
	paused bool
	dirty  bool
}

// New constructs a Viewer from the provided configuration.
func New(cfg *Config) *Viewer {
	cache := noise.NewCache()
	v := &Viewer{
		cfg:     cfg,
		cache:   cache,
		field:   noise.NewField(cache, cfg.Density, cfg.Variance),
		grid:    core.NewFloatGrid(cfg.Width, cfg.Height),
		painter: render.NewFieldPainter(cfg.Width, cfg.Height),
		dirty:   true,
	}
	return v
}

// reseed rebuilds the field after a parameter change. Cached feature points
// depend on the variance at generation time, so the cache is cleared too.
func (v *Viewer) reseed(density, variance float64) {
	v.cache.Clear()
	v.field = noise.NewField(v.cache, density, variance)
	v.dirty = true
}

// Update handles input and advances the slice animation.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.z = 0
		v.reseed(v.field.Scale, v.field.Variance)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		v.reseed(v.field.Scale+0.1, v.field.Variance)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) && v.field.Scale > 0.2 {
		v.reseed(v.field.Scale-0.1, v.field.Variance)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		v.reseed(v.field.Scale, v.field.Variance+0.05)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && v.field.Variance >= 0.05 {
		v.reseed(v.field.Scale, v.field.Variance-0.05)
	}

	if !v.paused {
		v.z += 0.01
		v.dirty = true
	}
	if v.dirty {
		render.SampleSlice(v.grid, v.field, v.z, v.cfg.Res)
		v.dirty = false
	}
	return nil
}

// Draw renders the current slice.
func (v *Viewer) Draw(screen *ebiten.Image) {
	lo := color.RGBA{A: 0xff}
	hi := color.RGBA{R: 0x9c, G: 0xd8, B: 0xff, A: 0xff}
	v.painter.Blit(screen, v.grid, fieldCeiling, lo, hi, v.cfg.Scale)
	msg := fmt.Sprintf("density %.2f  variance %.2f  z %.2f  cells %d",
		v.field.Scale, v.field.Variance, v.z, v.cache.Len())
	ebitenutil.DebugPrint(screen, msg)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width * v.cfg.Scale, v.cfg.Height * v.cfg.Scale
}
