package mesh

import "gonum.org/v1/gonum/spatial/r3"

// SolveSmoothness computes the per-group attenuation field.
//
// The initial value is |normal sum| / member count: near 1.0 where incident
// face normals are parallel, dropping toward 1/sqrt(3) and below at corners
// where differently oriented faces meet. That raw signal has a hard cliff at
// the exact seam between a sharp feature and the flat face next to it, which
// displacement would stretch into a visible tear; the diffusion passes trade
// the cliff for a wider, gentler gradient.
//
// Each pass averages every group with its neighbors (self weight 1, each
// neighbor weight 1) into a separate buffer, so all groups read only
// pass-start values. Groups with no neighbors keep their value.
func (t *Topology) SolveSmoothness(passes int) []float64 {
	n := t.Groups()
	curr := make([]float64, n)
	for i := 0; i < n; i++ {
		if t.Count[i] > 0 {
			curr[i] = r3.Norm(t.NormalSum[i]) / float64(t.Count[i])
		} else {
			curr[i] = 1.0
		}
	}

	next := make([]float64, n)
	for p := 0; p < passes; p++ {
		copy(next, curr)
		for i := 0; i < n; i++ {
			neighbors := t.Adjacency[i]
			if len(neighbors) == 0 {
				continue
			}
			sum := curr[i]
			for _, nb := range neighbors {
				sum += curr[nb]
			}
			next[i] = sum / float64(1+len(neighbors))
		}
		curr, next = next, curr
	}
	return curr
}
