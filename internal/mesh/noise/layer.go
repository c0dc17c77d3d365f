// Package noise composes an ordered stack of Perlin displacement
// layers and applies it to generated geometry through a Stream
// decorator, so generators never know about noise.
package noise

import "github.com/Faultbox/meshforge/pkg/math"

// MaxLayers is the number of slots in a displacement stack.
const MaxLayers = 4

// Layer configures one displacement layer. An inactive layer occupies
// its slot but contributes zero displacement.
type Layer struct {
	Active    bool
	Strength  float32
	Roughness float32
	Center    math.Vec3
	Octaves   int
	Seed      int64
}

// Stack is an ordered displacement stack. Slot order is application
// order: slot 0 is evaluated first and the contributions are summed.
type Stack [MaxLayers]Layer
