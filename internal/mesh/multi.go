package mesh

import "github.com/Faultbox/meshforge/pkg/math"

// MultiStream writes each vertex attribute into its own buffer. The
// four writes per vertex are independent; the logical vertex is only
// complete once all of them have landed, which dispatch guarantees
// before handing the buffers out.
type MultiStream struct {
	buf Buffers
}

// Setup allocates the exact-sized destination buffers.
func (s *MultiStream) Setup(bounds math.Box3, vertexCount, indexCount int) {
	s.buf = Buffers{
		Layout:    StreamMulti,
		Positions: make([]math.Vec3, vertexCount),
		Normals:   make([]math.Vec3, vertexCount),
		Tangents:  make([]math.Vec4, vertexCount),
		TexCoords: make([]math.Vec2, vertexCount),
		Indices:   make([]uint16, indexCount),
		Bounds:    bounds,
	}
}

// SetVertex decomposes the record into four per-attribute writes at
// the same index.
func (s *MultiStream) SetVertex(i int, v Vertex) {
	s.buf.Positions[i] = v.Position
	s.buf.Normals[i] = v.Normal
	s.buf.Tangents[i] = v.Tangent
	s.buf.TexCoords[i] = v.TexCoord
}

// SetTriangle writes the index triple for triangle slot i.
func (s *MultiStream) SetTriangle(i int, a, b, c int) {
	s.buf.Indices[3*i] = uint16(a)
	s.buf.Indices[3*i+1] = uint16(b)
	s.buf.Indices[3*i+2] = uint16(c)
}

// Buffers returns the destination buffers.
func (s *MultiStream) Buffers() *Buffers {
	return &s.buf
}
