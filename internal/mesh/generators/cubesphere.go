package generators

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/pkg/math"
)

// cubeFace is one of the six folded grid faces. The axes are chosen so
// that cross(vAxis, uAxis) equals the outward face normal, which keeps
// the quad winding convention identical to Grid's.
type cubeFace struct {
	normal math.Vec3
	uAxis  math.Vec3
	vAxis  math.Vec3
}

var cubeFaces = [6]cubeFace{
	{normal: math.Vec3{Y: 1}, uAxis: math.Vec3{X: 1}, vAxis: math.Vec3{Z: 1}},   // +Y
	{normal: math.Vec3{Y: -1}, uAxis: math.Vec3{X: 1}, vAxis: math.Vec3{Z: -1}}, // -Y
	{normal: math.Vec3{X: 1}, uAxis: math.Vec3{Z: 1}, vAxis: math.Vec3{Y: 1}},   // +X
	{normal: math.Vec3{X: -1}, uAxis: math.Vec3{Z: -1}, vAxis: math.Vec3{Y: 1}}, // -X
	{normal: math.Vec3{Z: 1}, uAxis: math.Vec3{X: -1}, vAxis: math.Vec3{Y: 1}},  // +Z
	{normal: math.Vec3{Z: -1}, uAxis: math.Vec3{X: 1}, vAxis: math.Vec3{Y: 1}},  // -Z
}

// CubeSphere folds six RxR quad grids onto the faces of the cube
// [-1,1]^3 and maps every cube point onto a radius-0.5 sphere with the
// uniform cube-to-sphere mapping. Quads are independent (no welding),
// so each work item owns one quad; positions along shared face edges
// agree to floating-point precision, so no cracks open between faces.
type CubeSphere struct {
	res int
}

// NewCubeSphere returns a cube sphere generator at the given resolution.
func NewCubeSphere(resolution int) *CubeSphere {
	return &CubeSphere{res: resolution}
}

// VertexCount returns 4 vertices per quad over six faces.
func (g *CubeSphere) VertexCount() int { return 24 * g.res * g.res }

// IndexCount returns 6 indices per quad over six faces.
func (g *CubeSphere) IndexCount() int { return 36 * g.res * g.res }

// JobLength returns one work item per quad over six faces.
func (g *CubeSphere) JobLength() int { return 6 * g.res * g.res }

// Bounds returns the radius-0.5 sphere's box.
func (g *CubeSphere) Bounds() math.Box3 {
	return math.NewBox3(math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, math.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
}

// Execute writes quad i: vertices [4i,4i+4) and triangles [2i,2i+2).
func (g *CubeSphere) Execute(i int, s mesh.Stream) {
	r := g.res
	perFace := r * r
	face := cubeFaces[i/perFace]
	q := i % perFace
	z := q / r
	x := q % r

	u0 := float32(x) / float32(r)
	u1 := float32(x+1) / float32(r)
	v0 := float32(z) / float32(r)
	v1 := float32(z+1) / float32(r)

	vi := 4 * i
	s.SetVertex(vi, sphereVertex(face, u0, v0))
	s.SetVertex(vi+1, sphereVertex(face, u1, v0))
	s.SetVertex(vi+2, sphereVertex(face, u0, v1))
	s.SetVertex(vi+3, sphereVertex(face, u1, v1))

	ti := 2 * i
	s.SetTriangle(ti, vi, vi+2, vi+1)
	s.SetTriangle(ti+1, vi+1, vi+2, vi+3)
}

// sphereVertex maps face coordinates (u,v) in [0,1]^2 to a sphere
// surface vertex.
func sphereVertex(face cubeFace, u, v float32) mesh.Vertex {
	cube := face.normal.
		Add(face.uAxis.Scale(2*u - 1)).
		Add(face.vAxis.Scale(2*v - 1))
	unit := cubeToSphere(cube)

	// Tangent follows the face's u direction projected onto the sphere
	// surface.
	tan := face.uAxis.Sub(unit.Scale(face.uAxis.Dot(unit))).Normalize()

	return mesh.Vertex{
		Position: unit.Scale(0.5),
		Normal:   unit,
		Tangent:  math.NewVec4(tan, -1),
		TexCoord: math.Vec2{X: u, Y: v},
	}
}

// cubeToSphere maps a point on the unit cube surface onto the unit
// sphere. This mapping distributes vertices more evenly than plain
// normalization.
func cubeToSphere(p math.Vec3) math.Vec3 {
	x2 := p.X * p.X
	y2 := p.Y * p.Y
	z2 := p.Z * p.Z
	return math.Vec3{
		X: p.X * math32.Sqrt(1-y2/2-z2/2+y2*z2/3),
		Y: p.Y * math32.Sqrt(1-x2/2-z2/2+x2*z2/3),
		Z: p.Z * math32.Sqrt(1-x2/2-y2/2+x2*y2/3),
	}
}
