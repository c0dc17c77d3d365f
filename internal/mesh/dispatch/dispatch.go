// Package dispatch turns a GenerationRequest into filled mesh buffers:
// it validates the request, sizes the destination buffers from the
// generator's precomputed counts, fans the generator's work items out
// over a worker pool, and hands the buffers to the caller only after
// every item has completed.
package dispatch

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/internal/mesh/generators"
	"github.com/Faultbox/meshforge/internal/mesh/noise"
)

// Resolution bounds. Enforced here, at the request boundary, not
// inside generators.
const (
	MinResolution = 1
	MaxResolution = 50
)

// Request describes one generation run.
type Request struct {
	Generator  generators.Kind
	Stream     mesh.StreamKind
	Resolution int
	Noise      noise.Stack

	// Workers caps the worker pool; 0 means one worker per CPU.
	Workers int
}

// Validate rejects malformed requests before any allocation.
func (r Request) Validate() error {
	if r.Resolution < MinResolution || r.Resolution > MaxResolution {
		return fmt.Errorf("resolution %d outside [%d, %d]", r.Resolution, MinResolution, MaxResolution)
	}
	if !r.Generator.Valid() {
		return fmt.Errorf("unknown generator kind %d", int(r.Generator))
	}
	if !r.Stream.Valid() {
		return fmt.Errorf("unknown stream kind %d", int(r.Stream))
	}
	return nil
}

// Generate runs the request to completion and returns the filled
// buffers. Buffers are freshly allocated per call and owned by the
// caller on return; invoking Generate twice with an identical request
// yields identical output.
func Generate(req Request) (*mesh.Buffers, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	gen, err := generators.New(req.Generator, req.Resolution)
	if err != nil {
		return nil, err
	}
	stream, err := mesh.NewStream(req.Stream)
	if err != nil {
		return nil, err
	}
	return generateInto(gen, stream, req.Noise, req.Workers)
}

// generateInto sizes the stream for the generator, executes all work
// items, and returns the stream's buffers.
func generateInto(gen mesh.Generator, stream mesh.Stream, stack noise.Stack, workers int) (*mesh.Buffers, error) {
	if gen.VertexCount() > mesh.MaxVertexCount {
		return nil, fmt.Errorf("resolution too high for 16-bit indices: %d vertices exceeds %d",
			gen.VertexCount(), mesh.MaxVertexCount)
	}

	// The displacement decorator is only interposed when the stack has
	// an active layer, so a neutral stack reproduces the base
	// generator's output bit for bit.
	dst := stream
	if field := noise.Compile(stack); field.Active() {
		dst = noise.Displace(stream, field)
	}

	dst.Setup(gen.Bounds(), gen.VertexCount(), gen.IndexCount())
	run(gen, dst, workers)
	return stream.Buffers(), nil
}

// run executes all work items, fanning out over a worker pool when it
// pays off. The generator's partition invariant makes the items safe
// to run unsynchronized; the WaitGroup is the single completion
// barrier.
func run(gen mesh.Generator, s mesh.Stream, workers int) {
	jobs := gen.JobLength()
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > jobs {
		workers = jobs
	}
	if workers <= 1 {
		for i := 0; i < jobs; i++ {
			gen.Execute(i, s)
		}
		return
	}

	chunk := (jobs + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < jobs; start += chunk {
		end := start + chunk
		if end > jobs {
			end = jobs
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				gen.Execute(i, s)
			}
		}(start, end)
	}
	wg.Wait()
}
