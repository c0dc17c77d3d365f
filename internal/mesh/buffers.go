package mesh

import "github.com/Faultbox/meshforge/pkg/math"

// Buffers is the destination of one generation run: either one
// interleaved vertex array (StreamSingle) or four parallel attribute
// arrays (StreamMulti), plus the shared 16-bit index array and the
// bounding box recorded at Setup. Both layouts describe the same
// logical vertex set.
//
// Buffers are exclusively owned by the dispatch call that allocated
// them until that call returns; after that the caller owns them and the
// pipeline keeps no reference.
type Buffers struct {
	Layout StreamKind

	// StreamSingle layout.
	Vertices []Vertex

	// StreamMulti layout.
	Positions []math.Vec3
	Normals   []math.Vec3
	Tangents  []math.Vec4
	TexCoords []math.Vec2

	Indices []uint16
	Bounds  math.Box3
}

// VertexCount returns the number of logical vertices.
func (b *Buffers) VertexCount() int {
	if b.Layout == StreamSingle {
		return len(b.Vertices)
	}
	return len(b.Positions)
}

// TriangleCount returns the number of triangles.
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// VertexAt reads the logical vertex at index i regardless of layout.
func (b *Buffers) VertexAt(i int) Vertex {
	if b.Layout == StreamSingle {
		return b.Vertices[i]
	}
	return Vertex{
		Position: b.Positions[i],
		Normal:   b.Normals[i],
		Tangent:  b.Tangents[i],
		TexCoord: b.TexCoords[i],
	}
}

// Triangle returns the index triple of triangle i.
func (b *Buffers) Triangle(i int) (a, bIdx, c uint16) {
	return b.Indices[3*i], b.Indices[3*i+1], b.Indices[3*i+2]
}
