package generators

import (
	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/pkg/math"
)

// Grid generates an RxR grid of independent quads tiling the unit
// square [-0.5,0.5]x[-0.5,0.5] on the XZ plane. Quads share no
// vertices, so each work item owns exactly one quad: 4 vertices and 2
// triangles.
type Grid struct {
	res int
}

// NewGrid returns a grid generator at the given resolution.
func NewGrid(resolution int) *Grid {
	return &Grid{res: resolution}
}

// VertexCount returns 4 vertices per quad.
func (g *Grid) VertexCount() int { return 4 * g.res * g.res }

// IndexCount returns 6 indices per quad.
func (g *Grid) IndexCount() int { return 6 * g.res * g.res }

// JobLength returns one work item per quad.
func (g *Grid) JobLength() int { return g.res * g.res }

// Bounds returns the flat unit square.
func (g *Grid) Bounds() math.Box3 {
	return math.NewBox3(math.Vec3{X: -0.5, Z: -0.5}, math.Vec3{X: 0.5, Z: 0.5})
}

// Execute writes quad i: vertices [4i,4i+4) and triangles [2i,2i+2).
func (g *Grid) Execute(i int, s mesh.Stream) {
	r := g.res
	z := i / r
	x := i % r

	u0 := float32(x) / float32(r)
	u1 := float32(x+1) / float32(r)
	v0 := float32(z) / float32(r)
	v1 := float32(z+1) / float32(r)

	normal := math.Vec3{Y: 1}
	tangent := math.Vec4{X: 1, W: -1}

	vi := 4 * i
	s.SetVertex(vi, mesh.Vertex{
		Position: math.Vec3{X: u0 - 0.5, Z: v0 - 0.5},
		Normal:   normal,
		Tangent:  tangent,
		TexCoord: math.Vec2{X: u0, Y: v0},
	})
	s.SetVertex(vi+1, mesh.Vertex{
		Position: math.Vec3{X: u1 - 0.5, Z: v0 - 0.5},
		Normal:   normal,
		Tangent:  tangent,
		TexCoord: math.Vec2{X: u1, Y: v0},
	})
	s.SetVertex(vi+2, mesh.Vertex{
		Position: math.Vec3{X: u0 - 0.5, Z: v1 - 0.5},
		Normal:   normal,
		Tangent:  tangent,
		TexCoord: math.Vec2{X: u0, Y: v1},
	})
	s.SetVertex(vi+3, mesh.Vertex{
		Position: math.Vec3{X: u1 - 0.5, Z: v1 - 0.5},
		Normal:   normal,
		Tangent:  tangent,
		TexCoord: math.Vec2{X: u1, Y: v1},
	})

	// CCW as seen from +Y.
	ti := 2 * i
	s.SetTriangle(ti, vi, vi+2, vi+1)
	s.SetTriangle(ti+1, vi+1, vi+2, vi+3)
}
