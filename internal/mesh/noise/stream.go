package noise

import (
	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/pkg/math"
)

// displacedStream decorates a destination stream with field
// displacement. Vertices are displaced on the way through; triangles
// and counts pass untouched, so the generator's partition stays valid.
type displacedStream struct {
	inner mesh.Stream
	field *Field
}

// Displace wraps a stream so every vertex written through it is
// displaced by the field.
func Displace(s mesh.Stream, f *Field) mesh.Stream {
	return &displacedStream{inner: s, field: f}
}

// Setup forwards to the inner stream with bounds grown by the field's
// maximum displacement.
func (d *displacedStream) Setup(bounds math.Box3, vertexCount, indexCount int) {
	d.inner.Setup(bounds.Expand(d.field.MaxDisplacement()), vertexCount, indexCount)
}

// SetVertex displaces the record and forwards it.
func (d *displacedStream) SetVertex(i int, v mesh.Vertex) {
	d.inner.SetVertex(i, d.field.DisplaceVertex(v))
}

// SetTriangle forwards unchanged.
func (d *displacedStream) SetTriangle(i int, a, b, c int) {
	d.inner.SetTriangle(i, a, b, c)
}

// Buffers returns the inner stream's buffers.
func (d *displacedStream) Buffers() *mesh.Buffers {
	return d.inner.Buffers()
}
