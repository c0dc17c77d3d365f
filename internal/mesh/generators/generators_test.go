package generators

import (
	"testing"

	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/pkg/math"
)

// countingStream records how many times each vertex and triangle slot
// was written.
type countingStream struct {
	vertexWrites   []int
	triangleWrites []int
}

func (c *countingStream) Setup(_ math.Box3, vertexCount, indexCount int) {
	c.vertexWrites = make([]int, vertexCount)
	c.triangleWrites = make([]int, indexCount/3)
}

func (c *countingStream) SetVertex(i int, _ mesh.Vertex) {
	c.vertexWrites[i]++
}

func (c *countingStream) SetTriangle(i int, _, _, _ int) {
	c.triangleWrites[i]++
}

func (c *countingStream) Buffers() *mesh.Buffers { return nil }

// generate runs every work item of a generator sequentially into a
// single-layout stream.
func generate(t *testing.T, kind Kind, resolution int) *mesh.Buffers {
	t.Helper()
	gen, err := New(kind, resolution)
	if err != nil {
		t.Fatalf("New(%v, %d): %v", kind, resolution, err)
	}
	s := &mesh.SingleStream{}
	s.Setup(gen.Bounds(), gen.VertexCount(), gen.IndexCount())
	for i := 0; i < gen.JobLength(); i++ {
		gen.Execute(i, s)
	}
	return s.Buffers()
}

func TestPartitionCompleteness(t *testing.T) {
	for _, kind := range Kinds() {
		for _, res := range []int{1, 2, 3, 5} {
			gen, err := New(kind, res)
			if err != nil {
				t.Fatalf("New(%v, %d): %v", kind, res, err)
			}
			c := &countingStream{}
			c.Setup(gen.Bounds(), gen.VertexCount(), gen.IndexCount())
			for i := 0; i < gen.JobLength(); i++ {
				gen.Execute(i, c)
			}

			for vi, n := range c.vertexWrites {
				if n != 1 {
					t.Errorf("%v res=%d: vertex %d written %d times, want 1", kind, res, vi, n)
				}
			}
			for ti, n := range c.triangleWrites {
				if n != 1 {
					t.Errorf("%v res=%d: triangle %d written %d times, want 1", kind, res, ti, n)
				}
			}
		}
	}
}

func TestIndicesInRange(t *testing.T) {
	for _, kind := range Kinds() {
		b := generate(t, kind, 3)
		n := b.VertexCount()
		for i, idx := range b.Indices {
			if int(idx) >= n {
				t.Errorf("%v: index %d = %d out of range (%d vertices)", kind, i, idx, n)
			}
		}
	}
}

func TestWindingConsistency(t *testing.T) {
	for _, kind := range Kinds() {
		b := generate(t, kind, 4)
		for i := 0; i < b.TriangleCount(); i++ {
			ia, ib, ic := b.Triangle(i)
			va := b.VertexAt(int(ia))
			vb := b.VertexAt(int(ib))
			vc := b.VertexAt(int(ic))

			face := vb.Position.Sub(va.Position).Cross(vc.Position.Sub(va.Position))
			if face.Length() < 1e-6 {
				// Degenerate triangle (UV sphere pole caps).
				continue
			}
			avg := va.Normal.Add(vb.Normal).Add(vc.Normal)
			if face.Dot(avg) <= 0 {
				t.Errorf("%v: triangle %d winds clockwise relative to its normals", kind, i)
			}
		}
	}
}

func TestGridResolution1(t *testing.T) {
	gen := NewGrid(1)
	if gen.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", gen.VertexCount())
	}
	if gen.IndexCount() != 6 {
		t.Errorf("IndexCount() = %d, want 6", gen.IndexCount())
	}
	if gen.JobLength() != 1 {
		t.Errorf("JobLength() = %d, want 1", gen.JobLength())
	}

	b := generate(t, KindGrid, 1)
	wantPos := []math.Vec3{
		{X: -0.5, Y: 0, Z: -0.5},
		{X: 0.5, Y: 0, Z: -0.5},
		{X: -0.5, Y: 0, Z: 0.5},
		{X: 0.5, Y: 0, Z: 0.5},
	}
	for i, want := range wantPos {
		v := b.VertexAt(i)
		if v.Position != want {
			t.Errorf("vertex %d position = %v, want %v", i, v.Position, want)
		}
		if v.Normal != (math.Vec3{Y: 1}) {
			t.Errorf("vertex %d normal = %v, want (0,1,0)", i, v.Normal)
		}
		if v.Tangent != (math.Vec4{X: 1, W: -1}) {
			t.Errorf("vertex %d tangent = %v, want (1,0,0,-1)", i, v.Tangent)
		}
	}

	wantIdx := []uint16{0, 2, 1, 1, 2, 3}
	for i, want := range wantIdx {
		if b.Indices[i] != want {
			t.Errorf("index %d = %d, want %d", i, b.Indices[i], want)
		}
	}
}

func TestGridResolution2(t *testing.T) {
	gen := NewGrid(2)
	if gen.VertexCount() != 16 {
		t.Errorf("VertexCount() = %d, want 16", gen.VertexCount())
	}
	if gen.IndexCount() != 24 {
		t.Errorf("IndexCount() = %d, want 24", gen.IndexCount())
	}

	// Four self-contained quads tiling the unit square; all positions
	// stay inside the declared bounds.
	b := generate(t, KindGrid, 2)
	bounds := gen.Bounds()
	for i := 0; i < 16; i++ {
		p := b.VertexAt(i).Position
		if !bounds.Contains(p) {
			t.Errorf("vertex %d position %v outside bounds %v", i, p, bounds)
		}
	}

	// Quads do not share vertex slots: quad q owns exactly [4q, 4q+4).
	for q := 0; q < 4; q++ {
		for i := 0; i < 6; i++ {
			idx := int(b.Indices[q*6+i])
			if idx < 4*q || idx >= 4*q+4 {
				t.Errorf("quad %d references vertex %d outside its own block", q, idx)
			}
		}
	}
}

func TestSharedGridWeldsVertices(t *testing.T) {
	gen := NewSharedGrid(2)
	if gen.VertexCount() != 9 {
		t.Errorf("VertexCount() = %d, want 9", gen.VertexCount())
	}
	if gen.IndexCount() != 24 {
		t.Errorf("IndexCount() = %d, want 24", gen.IndexCount())
	}
	if gen.JobLength() != 2 {
		t.Errorf("JobLength() = %d, want 2", gen.JobLength())
	}

	// The center vertex (index 4) is shared by all four quads.
	b := generate(t, KindSharedGrid, 2)
	refs := 0
	for _, idx := range b.Indices {
		if idx == 4 {
			refs++
		}
	}
	if refs < 4 {
		t.Errorf("center vertex referenced %d times, want >= 4", refs)
	}
}

func TestCubeSphereOnSphere(t *testing.T) {
	b := generate(t, KindCubeSphere, 3)
	for i := 0; i < b.VertexCount(); i++ {
		v := b.VertexAt(i)
		r := v.Position.Length()
		if abs(r-0.5) > 1e-5 {
			t.Errorf("vertex %d radius = %v, want 0.5", i, r)
		}
		if abs(v.Normal.Length()-1) > 1e-5 {
			t.Errorf("vertex %d normal length = %v, want 1", i, v.Normal.Length())
		}
		// Normal is radial.
		if v.Normal.Sub(v.Position.Scale(2)).Length() > 1e-5 {
			t.Errorf("vertex %d normal %v not radial for position %v", i, v.Normal, v.Position)
		}
	}
}

func TestUVSphereOnSphere(t *testing.T) {
	b := generate(t, KindUVSphere, 4)
	for i := 0; i < b.VertexCount(); i++ {
		v := b.VertexAt(i)
		if abs(v.Position.Length()-0.5) > 1e-5 {
			t.Errorf("vertex %d radius = %v, want 0.5", i, v.Position.Length())
		}
	}
}

func TestSphereTangentsOrthogonal(t *testing.T) {
	for _, kind := range []Kind{KindCubeSphere, KindUVSphere} {
		b := generate(t, kind, 4)
		for i := 0; i < b.VertexCount(); i++ {
			v := b.VertexAt(i)
			tan := v.Tangent.XYZ()
			if abs(tan.Length()-1) > 1e-5 {
				t.Errorf("%v: vertex %d tangent length = %v, want 1", kind, i, tan.Length())
			}
			if abs(tan.Dot(v.Normal)) > 1e-4 {
				t.Errorf("%v: vertex %d tangent not orthogonal to normal (dot = %v)", kind, i, tan.Dot(v.Normal))
			}
			if v.Tangent.W != -1 {
				t.Errorf("%v: vertex %d tangent W = %v, want -1", kind, i, v.Tangent.W)
			}
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		got, err := ParseKind(kind.String())
		if err != nil {
			t.Errorf("ParseKind(%q): %v", kind.String(), err)
		}
		if got != kind {
			t.Errorf("ParseKind(%q) = %v, want %v", kind.String(), got, kind)
		}
	}
	if _, err := ParseKind("donut"); err == nil {
		t.Error("ParseKind(donut) should fail")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
