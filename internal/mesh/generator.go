package mesh

import "github.com/Faultbox/meshforge/pkg/math"

// Generator produces one base shape's geometry. All counts and the
// bounding box are pure functions of the generator's resolution and
// must be available before Execute is ever called, so a dispatcher can
// allocate destination buffers exactly once.
//
// Execute(i, stream) is the unit of parallel work. It must write only
// the vertex and triangle slots owned by work item i, and the union of
// all items [0, JobLength) must cover [0, VertexCount) and
// [0, IndexCount) with no gaps and no overlap. That partition property
// is what makes unsynchronized parallel execution safe.
type Generator interface {
	VertexCount() int
	IndexCount() int
	JobLength() int
	Bounds() math.Box3
	Execute(i int, s Stream)
}
