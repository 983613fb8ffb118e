package mesh

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// weldScale quantizes positions to 1e-4 units when forming weld keys, which
// is enough to merge tessellator duplicates without collapsing real detail.
const weldScale = 1e4

type weldKey struct {
	x, y, z int64
}

func quantize(x, y, z float32) weldKey {
	return weldKey{
		x: int64(math.Round(float64(x) * weldScale)),
		y: int64(math.Round(float64(y) * weldScale)),
		z: int64(math.Round(float64(z) * weldScale)),
	}
}

// Topology is the welded view of a triangle soup: raw vertices grouped by
// quantized position, accumulated normal sums, and group-level adjacency
// derived from triangle connectivity.
type Topology struct {
	// GroupOf maps each raw vertex index to its weld group.
	GroupOf []int32
	// NormalSum holds the non-normalized sum of member normals per group.
	NormalSum []r3.Vec
	// Count holds the number of raw vertices welded into each group.
	Count []int32
	// Adjacency lists, per group, the groups connected by at least one
	// mesh edge. Sorted, no duplicates, no self-loops. Keeping the order
	// fixed keeps float accumulation in later passes reproducible.
	Adjacency [][]int32
}

// Groups returns the number of weld groups.
func (t *Topology) Groups() int { return len(t.NormalSum) }

// BuildTopology welds coincident vertices and derives the adjacency graph.
// The mesh is validated first; a validation failure is fatal for the run.
func BuildTopology(m *TriangleMesh) (*Topology, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	nv := m.VertexCount()
	t := &Topology{GroupOf: make([]int32, nv)}
	groups := make(map[weldKey]int32, nv)

	for v := 0; v < nv; v++ {
		base := v * 3
		key := quantize(m.Positions[base], m.Positions[base+1], m.Positions[base+2])
		id, ok := groups[key]
		if !ok {
			id = int32(len(t.NormalSum))
			groups[key] = id
			t.NormalSum = append(t.NormalSum, r3.Vec{})
			t.Count = append(t.Count, 0)
		}
		t.GroupOf[v] = id
		t.NormalSum[id] = r3.Add(t.NormalSum[id], r3.Vec{
			X: float64(m.Normals[base]),
			Y: float64(m.Normals[base+1]),
			Z: float64(m.Normals[base+2]),
		})
		t.Count[id]++
	}

	// Triangle connectivity on weld groups, not raw vertices: two faces
	// meeting at a seam share groups even though their raw indices differ.
	adj := make([]map[int32]struct{}, len(t.NormalSum))
	link := func(a, b int32) {
		if a == b {
			return
		}
		if adj[a] == nil {
			adj[a] = make(map[int32]struct{})
		}
		adj[a][b] = struct{}{}
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := t.GroupOf[m.Indices[i]]
		b := t.GroupOf[m.Indices[i+1]]
		c := t.GroupOf[m.Indices[i+2]]
		link(a, b)
		link(a, c)
		link(b, a)
		link(b, c)
		link(c, a)
		link(c, b)
	}

	t.Adjacency = make([][]int32, len(adj))
	for id, set := range adj {
		if len(set) == 0 {
			continue
		}
		neighbors := make([]int32, 0, len(set))
		for n := range set {
			neighbors = append(neighbors, n)
		}
		slices.Sort(neighbors)
		t.Adjacency[id] = neighbors
	}
	return t, nil
}
