package generators

import (
	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/pkg/math"
)

// SharedGrid generates the same unit square as Grid but with welded
// vertices: an (R+1)x(R+1) vertex lattice and R rows of quads. Work is
// partitioned by row: item z owns vertex row z+1 and the index data of
// quad row z; item 0 additionally owns vertex row 0.
type SharedGrid struct {
	res int
}

// NewSharedGrid returns a welded grid generator at the given resolution.
func NewSharedGrid(resolution int) *SharedGrid {
	return &SharedGrid{res: resolution}
}

// VertexCount returns the size of the welded vertex lattice.
func (g *SharedGrid) VertexCount() int { return (g.res + 1) * (g.res + 1) }

// IndexCount returns 6 indices per quad.
func (g *SharedGrid) IndexCount() int { return 6 * g.res * g.res }

// JobLength returns one work item per quad row.
func (g *SharedGrid) JobLength() int { return g.res }

// Bounds returns the flat unit square.
func (g *SharedGrid) Bounds() math.Box3 {
	return math.NewBox3(math.Vec3{X: -0.5, Z: -0.5}, math.Vec3{X: 0.5, Z: 0.5})
}

// Execute writes the vertex row(s) and quad row owned by item z.
func (g *SharedGrid) Execute(z int, s mesh.Stream) {
	if z == 0 {
		g.setRow(0, s)
	}
	g.setRow(z+1, s)

	r := g.res
	for x := 0; x < r; x++ {
		a := z*(r+1) + x
		b := a + 1
		c := a + r + 1
		d := c + 1
		ti := 2 * (z*r + x)
		s.SetTriangle(ti, a, c, b)
		s.SetTriangle(ti+1, b, c, d)
	}
}

// setRow writes one full lattice row of vertices.
func (g *SharedGrid) setRow(row int, s mesh.Stream) {
	r := g.res
	v := float32(row) / float32(r)
	normal := math.Vec3{Y: 1}
	tangent := math.Vec4{X: 1, W: -1}

	for x := 0; x <= r; x++ {
		u := float32(x) / float32(r)
		s.SetVertex(row*(r+1)+x, mesh.Vertex{
			Position: math.Vec3{X: u - 0.5, Z: v - 0.5},
			Normal:   normal,
			Tangent:  tangent,
			TexCoord: math.Vec2{X: u, Y: v},
		})
	}
}
