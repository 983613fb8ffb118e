// Package stl reads and writes the binary STL triangle-soup container used
// at the boundary with the host mesh importer.
package stl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"bubblemesh/internal/mesh"
)

// ErrTruncated reports a binary STL stream shorter than its declared
// triangle count.
var ErrTruncated = errors.New("stl: truncated triangle data")

const headerSize = 80

// 12 floats (normal + 3 vertices) and a 2-byte attribute field.
const triangleSize = 12*4 + 2

// Encode writes the mesh as binary STL: an 80-byte header, a little-endian
// uint32 triangle count, then per triangle a zero facet normal, the three
// vertex positions in index order, and a zero attribute field. The importer
// on the other side recomputes normals, so none are stored.
func Encode(w io.Writer, m *mesh.TriangleMesh) error {
	var header [headerSize]byte
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	buf := make([]byte, 0, triangleSize)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(m.TriangleCount()))
	if _, err := w.Write(buf); err != nil {
		return err
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		buf = buf[:0]
		for j := 0; j < 3; j++ {
			buf = binary.LittleEndian.AppendUint32(buf, 0) // facet normal
		}
		for j := 0; j < 3; j++ {
			base := int(m.Indices[i+j]) * 3
			for k := 0; k < 3; k++ {
				buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(m.Positions[base+k]))
			}
		}
		buf = append(buf, 0, 0) // attribute byte count
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// Decode parses binary STL into a triangle soup: three raw vertices per
// triangle, indices 0..3n-1, and the facet normal replicated onto each of
// its vertices. Near-zero stored normals (our own Encode output, among
// others) are recomputed from the triangle winding so welding still sees a
// usable normal per face.
func Decode(r io.Reader) (*mesh.TriangleMesh, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("stl: reading header: %w", err)
	}
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, fmt.Errorf("stl: reading triangle count: %w", err)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	m := &mesh.TriangleMesh{
		Positions: make([]float32, 0, count*9),
		Normals:   make([]float32, 0, count*9),
		Indices:   make([]uint32, 0, count*3),
	}
	tri := make([]byte, triangleSize)
	for t := uint32(0); t < count; t++ {
		if _, err := io.ReadFull(r, tri); err != nil {
			return nil, fmt.Errorf("%w: triangle %d of %d: %v", ErrTruncated, t, count, err)
		}
		var f [12]float32
		for i := range f {
			f[i] = math.Float32frombits(binary.LittleEndian.Uint32(tri[i*4:]))
		}
		n := [3]float32{f[0], f[1], f[2]}
		if n[0]*n[0]+n[1]*n[1]+n[2]*n[2] < 1e-12 {
			n = facetNormal(f[3:6], f[6:9], f[9:12])
		}
		for v := 0; v < 3; v++ {
			m.Indices = append(m.Indices, uint32(len(m.Positions)/3))
			m.Positions = append(m.Positions, f[3+v*3], f[4+v*3], f[5+v*3])
			m.Normals = append(m.Normals, n[0], n[1], n[2])
		}
	}
	return m, nil
}

// facetNormal computes the unit normal of a counter-clockwise wound
// triangle, or +z for degenerate triangles.
func facetNormal(a, b, c []float32) [3]float32 {
	ux := float64(b[0] - a[0])
	uy := float64(b[1] - a[1])
	uz := float64(b[2] - a[2])
	vx := float64(c[0] - a[0])
	vy := float64(c[1] - a[1])
	vz := float64(c[2] - a[2])
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	mag := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if mag < 1e-12 {
		return [3]float32{0, 0, 1}
	}
	return [3]float32{float32(nx / mag), float32(ny / mag), float32(nz / mag)}
}
