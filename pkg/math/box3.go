package math

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min Vec3
	Max Vec3
}

// NewBox3 returns a box with the given corners.
func NewBox3(min, max Vec3) Box3 {
	return Box3{Min: min, Max: max}
}

// EmptyBox3 returns a box that contains nothing: Min at +inf, Max at -inf,
// so the first ExpandByPoint sets both corners.
func EmptyBox3() Box3 {
	const big = 1e30
	return Box3{
		Min: Vec3{big, big, big},
		Max: Vec3{-big, -big, -big},
	}
}

// ExpandByPoint grows the box to contain p.
func (b *Box3) ExpandByPoint(p Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Expand returns the box grown by margin on every side.
func (b Box3) Expand(margin float32) Box3 {
	m := Vec3{margin, margin, margin}
	return Box3{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Center returns the box center.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extents.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside the box (inclusive).
func (b Box3) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
