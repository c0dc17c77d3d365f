// Package generators implements the base shape generators of the
// pipeline. Each generator partitions its geometry into independent
// work items so that dispatch can execute them in parallel without
// synchronization.
package generators

import (
	"fmt"

	"github.com/Faultbox/meshforge/internal/mesh"
)

// Kind identifies a registered generator.
type Kind int

const (
	// KindGrid is a flat grid of independent quads on the XZ plane.
	KindGrid Kind = iota
	// KindSharedGrid is a flat grid with welded (shared) vertices.
	KindSharedGrid
	// KindCubeSphere is six grid faces folded onto a cube and mapped
	// onto a sphere.
	KindCubeSphere
	// KindUVSphere is a latitude/longitude sphere with welded columns.
	KindUVSphere

	kindCount
)

// Valid reports whether the kind is registered.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGrid:
		return "grid"
	case KindSharedGrid:
		return "sharedgrid"
	case KindCubeSphere:
		return "cubesphere"
	case KindUVSphere:
		return "uvsphere"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a config name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "grid":
		return KindGrid, nil
	case "sharedgrid":
		return KindSharedGrid, nil
	case "cubesphere":
		return KindCubeSphere, nil
	case "uvsphere":
		return KindUVSphere, nil
	default:
		return 0, fmt.Errorf("unknown generator kind %q", name)
	}
}

// Kinds lists all registered kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// New constructs the generator of the given kind at the given
// resolution. Returns an error for unregistered kinds, before any
// allocation happens.
func New(kind Kind, resolution int) (mesh.Generator, error) {
	switch kind {
	case KindGrid:
		return NewGrid(resolution), nil
	case KindSharedGrid:
		return NewSharedGrid(resolution), nil
	case KindCubeSphere:
		return NewCubeSphere(resolution), nil
	case KindUVSphere:
		return NewUVSphere(resolution), nil
	default:
		return nil, fmt.Errorf("unknown generator kind %d", int(kind))
	}
}
