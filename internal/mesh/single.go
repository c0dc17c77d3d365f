package mesh

import "github.com/Faultbox/meshforge/pkg/math"

// SingleStream writes vertices into one interleaved buffer, one Vertex
// record per slot.
type SingleStream struct {
	buf Buffers
}

// Setup allocates the exact-sized destination buffers.
func (s *SingleStream) Setup(bounds math.Box3, vertexCount, indexCount int) {
	s.buf = Buffers{
		Layout:   StreamSingle,
		Vertices: make([]Vertex, vertexCount),
		Indices:  make([]uint16, indexCount),
		Bounds:   bounds,
	}
}

// SetVertex writes the full record at logical index i.
func (s *SingleStream) SetVertex(i int, v Vertex) {
	s.buf.Vertices[i] = v
}

// SetTriangle writes the index triple for triangle slot i.
func (s *SingleStream) SetTriangle(i int, a, b, c int) {
	s.buf.Indices[3*i] = uint16(a)
	s.buf.Indices[3*i+1] = uint16(b)
	s.buf.Indices[3*i+2] = uint16(c)
}

// Buffers returns the destination buffers.
func (s *SingleStream) Buffers() *Buffers {
	return &s.buf
}
