// Package mesh defines the core contracts of the generation pipeline:
// the per-vertex record, the Stream interface that receives generated
// geometry in a concrete buffer layout, and the Generator interface that
// produces it one work item at a time.
package mesh

import "github.com/Faultbox/meshforge/pkg/math"

// Vertex is the full per-vertex record a generator emits.
// Tangent.W carries handedness (+1 or -1) for bitangent reconstruction.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Tangent  math.Vec4
	TexCoord math.Vec2
}

// Indices are 16-bit, which caps the number of addressable vertices per
// mesh. Dispatch rejects any generator configuration that would exceed
// this before buffers are allocated.
const MaxVertexCount = 1 << 16
