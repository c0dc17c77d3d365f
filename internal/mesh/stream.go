package mesh

import (
	"fmt"

	"github.com/Faultbox/meshforge/pkg/math"
)

// StreamKind selects the physical buffer layout a stream writes into.
type StreamKind int

const (
	// StreamSingle writes one interleaved buffer of Vertex records.
	StreamSingle StreamKind = iota
	// StreamMulti writes four parallel per-attribute buffers.
	StreamMulti
)

// Valid reports whether the kind is registered.
func (k StreamKind) Valid() bool {
	return k == StreamSingle || k == StreamMulti
}

// String returns the config name of the kind.
func (k StreamKind) String() string {
	switch k {
	case StreamSingle:
		return "single"
	case StreamMulti:
		return "multi"
	default:
		return fmt.Sprintf("StreamKind(%d)", int(k))
	}
}

// ParseStreamKind converts a config name to a StreamKind.
func ParseStreamKind(name string) (StreamKind, error) {
	switch name {
	case "single":
		return StreamSingle, nil
	case "multi":
		return StreamMulti, nil
	default:
		return 0, fmt.Errorf("unknown stream kind %q", name)
	}
}

// Stream receives generated geometry into a concrete buffer layout.
//
// Setup must be called exactly once, before any SetVertex/SetTriangle
// call; it allocates exactly vertexCount vertex slots and indexCount
// index slots and records the bounding box. Buffers are never resized
// after Setup. There is no ordering requirement between SetVertex and
// SetTriangle calls beyond both completing before Buffers is read.
type Stream interface {
	Setup(bounds math.Box3, vertexCount, indexCount int)

	// SetVertex writes the full vertex record at logical index i.
	SetVertex(i int, v Vertex)

	// SetTriangle writes the index triple for triangle slot i.
	// Indices are narrowed to uint16; staying below MaxVertexCount is
	// the caller's responsibility and is enforced by dispatch.
	SetTriangle(i int, a, b, c int)

	// Buffers returns the destination buffers. Only valid after all
	// writes have completed.
	Buffers() *Buffers
}

// NewStream returns an empty stream of the given layout.
// Returns an error for unregistered kinds, before any allocation.
func NewStream(kind StreamKind) (Stream, error) {
	switch kind {
	case StreamSingle:
		return &SingleStream{}, nil
	case StreamMulti:
		return &MultiStream{}, nil
	default:
		return nil, fmt.Errorf("unknown stream kind %d", int(kind))
	}
}
