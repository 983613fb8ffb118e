// Package bubble orchestrates one displacement run: topology reconstruction,
// attenuation solving, noise displacement, and export.
package bubble

import (
	"fmt"
	"io"

	"bubblemesh/internal/mesh"
	"bubblemesh/internal/noise"
	"bubblemesh/internal/stl"
)

// patchBias lifts a displaced sub-surface off its parent surface. Constant,
// not a tunable: it only needs to defeat coplanar rendering artifacts.
const patchBias = 0.02

// ExportError marks a failure while serializing or handing off the displaced
// mesh, as opposed to a failure computing it. The geometry pipeline has
// already succeeded when one of these is returned.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string { return "bubble: exporting mesh: " + e.Err.Error() }

func (e *ExportError) Unwrap() error { return e.Err }

// Run displaces the mesh and returns a new mesh sharing the input topology.
// The input is not modified. Each call owns a fresh feature point cache, so
// runs are independent and reproducible; the whole computation is
// synchronous and single-threaded.
func Run(m *mesh.TriangleMesh, p Params) (*mesh.TriangleMesh, error) {
	topo, err := mesh.BuildTopology(m)
	if err != nil {
		return nil, fmt.Errorf("bubble: input mesh: %w", err)
	}
	smoothness := topo.SolveSmoothness(p.Passes)

	cache := noise.NewCache()
	cache.Clear()
	field := noise.NewField(cache, p.Density, p.Variance)

	dp := mesh.DisplaceParams{Height: p.Height, Sharpness: p.Sharpness}
	if p.SurfacePatch {
		dp.Bias = patchBias
	}
	positions := mesh.Displace(m, topo, smoothness, field, dp)

	out := &mesh.TriangleMesh{
		Positions: positions,
		Normals:   append([]float32(nil), m.Normals...),
		Indices:   append([]uint32(nil), m.Indices...),
	}
	return out, nil
}

// Export serializes the displaced mesh for the host importer. Failures are
// wrapped as *ExportError so callers can distinguish them from computation
// errors.
func Export(w io.Writer, m *mesh.TriangleMesh) error {
	if err := stl.Encode(w, m); err != nil {
		return &ExportError{Err: err}
	}
	return nil
}
