// Package mesh reconstructs topology from a raw triangle soup and applies
// the attenuated noise displacement to it.
package mesh

import (
	"errors"
	"fmt"
)

// Input-consistency errors. These are fatal for the run: the tessellator
// contract was violated and no partial recovery is attempted.
var (
	ErrEmptyMesh      = errors.New("mesh: empty vertex buffer")
	ErrBufferMismatch = errors.New("mesh: normal buffer length does not match position buffer")
	ErrIndexRange     = errors.New("mesh: triangle index out of range")
	ErrRaggedBuffer   = errors.New("mesh: buffer length not a multiple of three")
)

// TriangleMesh is a flat triangle soup as delivered by a tessellator:
// 3 floats per vertex position, 3 per vertex normal (same indexing), and
// 3 indices per triangle into those buffers. Vertices at weld seams are
// duplicated with the same position and different normals.
type TriangleMesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// VertexCount returns the number of raw vertices.
func (m *TriangleMesh) VertexCount() int { return len(m.Positions) / 3 }

// TriangleCount returns the number of triangles.
func (m *TriangleMesh) TriangleCount() int { return len(m.Indices) / 3 }

// Validate checks the tessellator contract. A nil error means every index
// resolves to a vertex present in both buffers.
func (m *TriangleMesh) Validate() error {
	if len(m.Positions) == 0 {
		return ErrEmptyMesh
	}
	if len(m.Positions)%3 != 0 || len(m.Indices)%3 != 0 {
		return ErrRaggedBuffer
	}
	if len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: %d normals for %d positions", ErrBufferMismatch, len(m.Normals), len(m.Positions))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at slot %d, vertex count %d", ErrIndexRange, idx, i, n)
		}
	}
	return nil
}
