package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/pkg/math"
)

// Perlin smoothing/frequency parameters, same for every layer; the
// layer's Roughness does the frequency shaping.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0

	defaultOctaves = 3
)

// Finite-difference step for normal recomputation.
const fdStep = 1e-2

// sampler evaluates one compiled layer at a point.
type sampler interface {
	sample(p math.Vec3) float32
}

// neutral is the identity layer: it fills inactive slots so that
// summation never branches on layer activity.
type neutral struct{}

func (neutral) sample(math.Vec3) float32 { return 0 }

// perlinLayer evaluates seeded Perlin noise at
// (p - center) * roughness, scaled by strength.
type perlinLayer struct {
	noise     *perlin.Perlin
	strength  float32
	roughness float32
	center    math.Vec3
}

func (l *perlinLayer) sample(p math.Vec3) float32 {
	q := p.Sub(l.center).Scale(l.roughness)
	return l.strength * float32(l.noise.Noise3D(float64(q.X), float64(q.Y), float64(q.Z)))
}

// Field is a compiled displacement stack, ready for evaluation.
type Field struct {
	layers [MaxLayers]sampler
	maxAmp float32
	active bool
}

// Compile turns a stack into a Field. Inactive slots become neutral
// samplers; active slots get a seeded Perlin generator each, so a
// given stack always produces the same field.
func Compile(stack Stack) *Field {
	f := &Field{}
	for i, l := range stack {
		if !l.Active || l.Strength == 0 {
			f.layers[i] = neutral{}
			continue
		}
		oct := l.Octaves
		if oct <= 0 {
			oct = defaultOctaves
		}
		f.layers[i] = &perlinLayer{
			noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, int32(oct), l.Seed),
			strength:  l.Strength,
			roughness: l.Roughness,
			center:    l.Center,
		}
		f.maxAmp += math32.Abs(l.Strength)
		f.active = true
	}
	return f
}

// Active reports whether any layer contributes displacement.
func (f *Field) Active() bool { return f.active }

// MaxDisplacement bounds the absolute displacement the field can
// produce, for expanding precomputed bounds.
func (f *Field) MaxDisplacement() float32 { return f.maxAmp }

// Sample sums all layer contributions at p in stack order.
func (f *Field) Sample(p math.Vec3) float32 {
	var d float32
	for _, l := range f.layers {
		d += l.sample(p)
	}
	return d
}

// DisplaceVertex moves the vertex along its normal by the sampled
// displacement, recomputes the normal from central finite differences
// of the displaced surface, and re-orthogonalizes the tangent against
// it. Handedness is preserved.
func (f *Field) DisplaceVertex(v mesh.Vertex) mesh.Vertex {
	p := v.Position
	n := v.Normal
	t := v.Tangent.XYZ()
	b := n.Cross(t)

	surf := func(q math.Vec3) math.Vec3 {
		return q.Add(n.Scale(f.Sample(q)))
	}

	du := surf(p.Add(t.Scale(fdStep))).Sub(surf(p.Sub(t.Scale(fdStep))))
	dv := surf(p.Add(b.Scale(fdStep))).Sub(surf(p.Sub(b.Scale(fdStep))))
	normal := du.Cross(dv).Normalize()

	tangent := t.Sub(normal.Scale(t.Dot(normal))).Normalize()

	v.Position = p.Add(n.Scale(f.Sample(p)))
	v.Normal = normal
	v.Tangent = math.NewVec4(tangent, v.Tangent.W)
	return v
}
