// Package viewer implements the interactive mesh viewer loop: it owns
// the window, renderer and camera, holds the current generation
// request, and regenerates the mesh when the user changes a parameter.
package viewer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/meshforge/internal/config"
	"github.com/Faultbox/meshforge/internal/engine/camera"
	"github.com/Faultbox/meshforge/internal/engine/input"
	"github.com/Faultbox/meshforge/internal/engine/renderer"
	"github.com/Faultbox/meshforge/internal/engine/window"
	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/internal/mesh/dispatch"
	"github.com/Faultbox/meshforge/internal/mesh/generators"
	"github.com/Faultbox/meshforge/internal/mesh/noise"
	"github.com/Faultbox/meshforge/pkg/math"
)

// Viewer is the interactive viewer instance.
type Viewer struct {
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera

	// Current generation parameters
	generator  generators.Kind
	stream     mesh.StreamKind
	resolution int
	workers    int
	stack      noise.Stack
	noiseOn    bool
	wireframe  bool

	width  int
	height int

	// Mouse drag state
	dragging   bool
	lastMouseX int
	lastMouseY int
}

// New creates a viewer from the loaded configuration. The initial mesh
// is generated and uploaded before New returns.
func New(cfg *config.Config) (*Viewer, error) {
	gen, err := generators.ParseKind(cfg.Mesh.Generator)
	if err != nil {
		return nil, err
	}
	stream, err := mesh.ParseStreamKind(cfg.Mesh.Stream)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		generator:  gen,
		stream:     stream,
		resolution: cfg.Mesh.Resolution,
		workers:    cfg.Mesh.Workers,
		stack:      stackFromConfig(cfg.Noise),
		noiseOn:    true,
		width:      cfg.Graphics.Width,
		height:     cfg.Graphics.Height,
	}

	// Window first: the renderer needs a live OpenGL context.
	v.window, err = window.New(window.Config{
		Title:      "MeshForge",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.camera = camera.New()

	if err := v.regenerate(); err != nil {
		v.renderer.Close()
		v.window.Close()
		return nil, fmt.Errorf("initial generation failed: %w", err)
	}

	slog.Info("viewer initialized",
		"generator", v.generator.String(),
		"stream", v.stream.String(),
		"resolution", v.resolution,
	)
	return v, nil
}

// stackFromConfig fills the fixed displacement slots from the config
// list. Layers beyond the slot count are ignored.
func stackFromConfig(layers []config.NoiseLayer) noise.Stack {
	var stack noise.Stack
	for i, l := range layers {
		if i >= noise.MaxLayers {
			break
		}
		stack[i] = noise.Layer{
			Active:    l.Active,
			Strength:  l.Strength,
			Roughness: l.Roughness,
			Center:    math.Vec3{X: l.Center[0], Y: l.Center[1], Z: l.Center[2]},
			Octaves:   l.Octaves,
			Seed:      l.Seed,
		}
	}
	return stack
}

// Run starts the main viewer loop.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting viewer loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			if err := v.handleEvent(event); err != nil {
				return err
			}
		}

		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	slog.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// handleEvent processes one input event.
func (v *Viewer) handleEvent(e input.Event) error {
	switch e.Type {
	case input.EventWindowResize:
		v.width, v.height = e.Width, e.Height
		v.renderer.Resize(e.Width, e.Height)

	case input.EventKeyDown:
		return v.handleKey(e.Key)

	case input.EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT {
			v.dragging = true
			v.lastMouseX, v.lastMouseY = e.MouseX, e.MouseY
		}

	case input.EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT {
			v.dragging = false
		}

	case input.EventMouseMove:
		if v.dragging {
			dx := float32(e.MouseX - v.lastMouseX)
			dy := float32(e.MouseY - v.lastMouseY)
			v.camera.HandleDrag(dx, dy)
			v.lastMouseX, v.lastMouseY = e.MouseX, e.MouseY
		}

	case input.EventMouseWheel:
		v.camera.HandleZoom(e.WheelY)
	}

	return nil
}

// handleKey processes one key press, regenerating when a generation
// parameter changed.
func (v *Viewer) handleKey(key sdl.Scancode) error {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
		return nil

	case sdl.SCANCODE_UP, sdl.SCANCODE_EQUALS:
		if v.resolution < dispatch.MaxResolution {
			v.resolution++
			return v.regenerate()
		}

	case sdl.SCANCODE_DOWN, sdl.SCANCODE_MINUS:
		if v.resolution > dispatch.MinResolution {
			v.resolution--
			return v.regenerate()
		}

	case sdl.SCANCODE_G:
		kinds := generators.Kinds()
		v.generator = kinds[(int(v.generator)+1)%len(kinds)]
		return v.regenerate()

	case sdl.SCANCODE_S:
		if v.stream == mesh.StreamSingle {
			v.stream = mesh.StreamMulti
		} else {
			v.stream = mesh.StreamSingle
		}
		return v.regenerate()

	case sdl.SCANCODE_N:
		v.noiseOn = !v.noiseOn
		return v.regenerate()

	case sdl.SCANCODE_W:
		v.wireframe = !v.wireframe
		v.renderer.SetWireframe(v.wireframe)

	case sdl.SCANCODE_R:
		return v.regenerate()
	}

	return nil
}

// regenerate runs the current request and uploads the result.
func (v *Viewer) regenerate() error {
	req := dispatch.Request{
		Generator:  v.generator,
		Stream:     v.stream,
		Resolution: v.resolution,
		Workers:    v.workers,
	}
	if v.noiseOn {
		req.Noise = v.stack
	}

	start := time.Now()
	buffers, err := dispatch.Generate(req)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := v.renderer.UploadMesh(buffers); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	v.camera.FitToBounds(buffers.Bounds)
	v.window.SetTitle(fmt.Sprintf("MeshForge - %s/%s res=%d verts=%d tris=%d",
		v.generator, v.stream, v.resolution,
		buffers.VertexCount(), buffers.TriangleCount()))

	slog.Info("mesh regenerated",
		"generator", v.generator.String(),
		"stream", v.stream.String(),
		"resolution", v.resolution,
		"noise", v.noiseOn,
		"vertices", buffers.VertexCount(),
		"triangles", buffers.TriangleCount(),
		"elapsed", time.Since(start),
	)
	return nil
}

// render draws the current frame.
func (v *Viewer) render() {
	v.renderer.Begin()

	aspect := float32(v.width) / float32(v.height)
	projection := math.Perspective(math32.Pi/4, aspect, 0.05, 100.0)
	view := v.camera.ViewMatrix()

	v.renderer.Draw(view, projection)
}
