package generators

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/pkg/math"
)

// UVSphere generates a latitude/longitude sphere of radius 0.5 with an
// (R+1)x(R+1) welded vertex lattice. Work is partitioned by longitude
// column: item j owns vertex column j, and items j >= 1 own the
// triangle band between columns j-1 and j. Item 0 writes no triangles.
type UVSphere struct {
	res int
}

// NewUVSphere returns a UV sphere generator at the given resolution.
func NewUVSphere(resolution int) *UVSphere {
	return &UVSphere{res: resolution}
}

// VertexCount returns the size of the welded vertex lattice.
func (g *UVSphere) VertexCount() int { return (g.res + 1) * (g.res + 1) }

// IndexCount returns 6 indices per lattice quad.
func (g *UVSphere) IndexCount() int { return 6 * g.res * g.res }

// JobLength returns one work item per longitude column.
func (g *UVSphere) JobLength() int { return g.res + 1 }

// Bounds returns the radius-0.5 sphere's box.
func (g *UVSphere) Bounds() math.Box3 {
	return math.NewBox3(math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, math.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
}

// Execute writes vertex column j and, for j >= 1, the triangle band
// between columns j-1 and j.
func (g *UVSphere) Execute(j int, s mesh.Stream) {
	r := g.res
	u := float32(j) / float32(r)
	phi := 2 * math32.Pi * u
	sinPhi, cosPhi := math32.Sincos(phi)

	// Tangent points along increasing longitude everywhere on the
	// column, poles included.
	tangent := math.NewVec4(math.Vec3{X: cosPhi, Z: -sinPhi}, -1)

	for i := 0; i <= r; i++ {
		v := float32(i) / float32(r)
		theta := math32.Pi * v
		sinTheta, cosTheta := math32.Sincos(theta)

		pos := math.Vec3{
			X: 0.5 * sinTheta * sinPhi,
			Y: 0.5 * cosTheta,
			Z: 0.5 * sinTheta * cosPhi,
		}
		s.SetVertex(j*(r+1)+i, mesh.Vertex{
			Position: pos,
			Normal:   pos.Normalize(),
			Tangent:  tangent,
			TexCoord: math.Vec2{X: u, Y: v},
		})
	}

	if j == 0 {
		return
	}
	for i := 0; i < r; i++ {
		a := (j-1)*(r+1) + i
		b := j*(r+1) + i
		c := a + 1
		d := b + 1
		ti := 2 * ((j-1)*r + i)
		s.SetTriangle(ti, a, c, b)
		s.SetTriangle(ti+1, b, c, d)
	}
}
