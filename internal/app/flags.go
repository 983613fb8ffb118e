package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Width    int
	Height   int
	Scale    int
	Res      float64
	Density  float64
	Variance float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 256, Height: 256, Scale: 3, Res: 24, Density: 1.5, Variance: 0.4}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "slice width in samples")
	fs.IntVar(&c.Height, "h", c.Height, "slice height in samples")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Float64Var(&c.Res, "res", c.Res, "samples per world unit")
	fs.Float64Var(&c.Density, "density", c.Density, "noise lattice scale")
	fs.Float64Var(&c.Variance, "variance", c.Variance, "bubble height variance")
}
