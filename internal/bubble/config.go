package bubble

import "strconv"

// Params holds the tunables for one displacement run.
type Params struct {
	// Height scales bubble displacement in world units.
	Height float64
	// Density scales world space into noise lattice cells.
	Density float64
	// Variance controls the per-bubble height spread, nominally [0, 1].
	Variance float64
	// Passes is the number of smoothness diffusion iterations.
	Passes int
	// Sharpness is the attenuation exponent applied near edges/corners.
	Sharpness float64
	// SurfacePatch marks a run displacing a sub-surface of a larger body;
	// the result is biased slightly off the original surface so the two
	// never render coplanar.
	SurfacePatch bool
}

// DefaultParams returns the standard configuration.
func DefaultParams() Params {
	return Params{
		Height:    0.5,
		Density:   1.5,
		Variance:  0.4,
		Passes:    3,
		Sharpness: 4.0,
	}
}

// FromMap populates params from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Params {
	p := DefaultParams()
	if cfg == nil {
		return p
	}
	if v, ok := cfg["height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.Density = parsed
		}
	}
	if v, ok := cfg["variance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			p.Variance = parsed
		}
	}
	if v, ok := cfg["passes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			p.Passes = parsed
		}
	}
	if v, ok := cfg["sharpness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			p.Sharpness = parsed
		}
	}
	if v, ok := cfg["surface_patch"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			p.SurfacePatch = parsed
		}
	}
	return p
}
