package dispatch

import (
	"testing"

	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/internal/mesh/generators"
	"github.com/Faultbox/meshforge/internal/mesh/noise"
	"github.com/Faultbox/meshforge/pkg/math"
)

func baseRequest() Request {
	return Request{
		Generator:  generators.KindGrid,
		Stream:     mesh.StreamSingle,
		Resolution: 2,
		Workers:    1,
	}
}

func TestValidateResolution(t *testing.T) {
	for _, res := range []int{0, -1, 51, 1000} {
		req := baseRequest()
		req.Resolution = res
		if err := req.Validate(); err == nil {
			t.Errorf("Validate() with resolution %d should fail", res)
		}
	}
	for _, res := range []int{1, 25, 50} {
		req := baseRequest()
		req.Resolution = res
		if err := req.Validate(); err != nil {
			t.Errorf("Validate() with resolution %d: %v", res, err)
		}
	}
}

func TestValidateKinds(t *testing.T) {
	req := baseRequest()
	req.Generator = generators.Kind(99)
	if err := req.Validate(); err == nil {
		t.Error("Validate() with unknown generator kind should fail")
	}

	req = baseRequest()
	req.Stream = mesh.StreamKind(99)
	if err := req.Validate(); err == nil {
		t.Error("Validate() with unknown stream kind should fail")
	}
}

func TestGenerateRejectsInvalidRequest(t *testing.T) {
	req := baseRequest()
	req.Resolution = 0
	if _, err := Generate(req); err == nil {
		t.Error("Generate() with invalid resolution should fail")
	}
}

// hugeGenerator pretends to need more vertices than 16-bit indices can
// address.
type hugeGenerator struct{}

func (hugeGenerator) VertexCount() int         { return mesh.MaxVertexCount + 4 }
func (hugeGenerator) IndexCount() int          { return 6 }
func (hugeGenerator) JobLength() int           { return 1 }
func (hugeGenerator) Bounds() math.Box3        { return math.Box3{} }
func (hugeGenerator) Execute(int, mesh.Stream) {}

func TestIndexWidthOverflowRejected(t *testing.T) {
	_, err := generateInto(hugeGenerator{}, &mesh.SingleStream{}, noise.Stack{}, 1)
	if err == nil {
		t.Fatal("vertex count above the 16-bit ceiling should be rejected")
	}
}

func TestGenerateGridResolution1(t *testing.T) {
	req := baseRequest()
	req.Resolution = 1
	b, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate(): %v", err)
	}
	if b.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", b.VertexCount())
	}
	if len(b.Indices) != 6 {
		t.Errorf("len(Indices) = %d, want 6", len(b.Indices))
	}
	if b.Bounds.Min != (math.Vec3{X: -0.5, Z: -0.5}) || b.Bounds.Max != (math.Vec3{X: 0.5, Z: 0.5}) {
		t.Errorf("Bounds = %v, want unit square", b.Bounds)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	req := Request{
		Generator:  generators.KindCubeSphere,
		Stream:     mesh.StreamSingle,
		Resolution: 3,
		Workers:    1,
		Noise: noise.Stack{
			{Active: true, Strength: 0.1, Roughness: 4, Seed: 17},
		},
	}

	a, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate(): %v", err)
	}
	b, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate(): %v", err)
	}

	if a.VertexCount() != b.VertexCount() || len(a.Indices) != len(b.Indices) {
		t.Fatal("repeated generation produced different counts")
	}
	for i := 0; i < a.VertexCount(); i++ {
		if a.VertexAt(i) != b.VertexAt(i) {
			t.Fatalf("vertex %d differs between identical requests", i)
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs between identical requests", i)
		}
	}
}

func TestLayoutEquivalence(t *testing.T) {
	const tol = 1e-5

	for _, kind := range generators.Kinds() {
		req := Request{
			Generator:  kind,
			Stream:     mesh.StreamSingle,
			Resolution: 3,
			Workers:    1,
			Noise: noise.Stack{
				{Active: true, Strength: 0.15, Roughness: 6, Seed: 3},
			},
		}
		single, err := Generate(req)
		if err != nil {
			t.Fatalf("Generate(single): %v", err)
		}

		req.Stream = mesh.StreamMulti
		multi, err := Generate(req)
		if err != nil {
			t.Fatalf("Generate(multi): %v", err)
		}

		if single.VertexCount() != multi.VertexCount() {
			t.Fatalf("%v: vertex counts differ between layouts", kind)
		}
		for i := 0; i < single.VertexCount(); i++ {
			sv, mv := single.VertexAt(i), multi.VertexAt(i)
			if sv.Position.Sub(mv.Position).Length() > tol ||
				sv.Normal.Sub(mv.Normal).Length() > tol ||
				sv.TexCoord.Sub(mv.TexCoord).Length() > tol {
				t.Fatalf("%v: vertex %d differs between layouts: %+v vs %+v", kind, i, sv, mv)
			}
		}
		for i := range single.Indices {
			if single.Indices[i] != multi.Indices[i] {
				t.Fatalf("%v: index %d differs between layouts", kind, i)
			}
		}
	}
}

func TestNoiseNeutrality(t *testing.T) {
	plain := baseRequest()
	plain.Resolution = 3

	inactive := plain
	inactive.Noise = noise.Stack{
		{Active: false, Strength: 10, Roughness: 100, Seed: 1},
		{Active: false, Strength: -3, Roughness: 2, Seed: 2},
	}

	a, err := Generate(plain)
	if err != nil {
		t.Fatalf("Generate(): %v", err)
	}
	b, err := Generate(inactive)
	if err != nil {
		t.Fatalf("Generate(): %v", err)
	}

	for i := 0; i < a.VertexCount(); i++ {
		if a.VertexAt(i) != b.VertexAt(i) {
			t.Fatalf("inactive noise stack changed vertex %d", i)
		}
	}
	if a.Bounds != b.Bounds {
		t.Errorf("inactive noise stack changed bounds: %v vs %v", a.Bounds, b.Bounds)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	for _, kind := range generators.Kinds() {
		seq := Request{
			Generator:  kind,
			Stream:     mesh.StreamMulti,
			Resolution: 7,
			Workers:    1,
			Noise: noise.Stack{
				{Active: true, Strength: 0.1, Roughness: 3, Seed: 21},
			},
		}
		par := seq
		par.Workers = 8

		a, err := Generate(seq)
		if err != nil {
			t.Fatalf("Generate(sequential): %v", err)
		}
		b, err := Generate(par)
		if err != nil {
			t.Fatalf("Generate(parallel): %v", err)
		}

		for i := 0; i < a.VertexCount(); i++ {
			if a.VertexAt(i) != b.VertexAt(i) {
				t.Fatalf("%v: vertex %d differs between sequential and parallel runs", kind, i)
			}
		}
		for i := range a.Indices {
			if a.Indices[i] != b.Indices[i] {
				t.Fatalf("%v: index %d differs between sequential and parallel runs", kind, i)
			}
		}
	}
}

func TestNoisyBoundsExpanded(t *testing.T) {
	req := baseRequest()
	req.Noise = noise.Stack{
		{Active: true, Strength: 0.2, Roughness: 4, Seed: 8},
	}
	b, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate(): %v", err)
	}

	base := math.NewBox3(math.Vec3{X: -0.5, Z: -0.5}, math.Vec3{X: 0.5, Z: 0.5})
	want := base.Expand(0.2)
	if b.Bounds != want {
		t.Errorf("Bounds = %v, want %v", b.Bounds, want)
	}
}
