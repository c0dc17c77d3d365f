package math

// Vec4 is a 4D vector. In mesh data the W component carries tangent
// handedness (+1 or -1).
type Vec4 struct {
	X, Y, Z, W float32
}

// XYZ returns the first three components as a Vec3.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// NewVec4 builds a Vec4 from a Vec3 and a W component.
func NewVec4(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}
