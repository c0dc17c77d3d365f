// Package renderer provides OpenGL rendering for generated meshes.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/meshforge/internal/engine/shader"
	"github.com/Faultbox/meshforge/internal/logger"
	"github.com/Faultbox/meshforge/internal/mesh"
	"github.com/Faultbox/meshforge/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations shared with the shader sources below.
const (
	attrPosition = 0
	attrNormal   = 1
	attrTangent  = 2
	attrTexCoord = 3
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program      uint32
	uniformMVP   int32
	uniformModel int32
	uniformLight int32

	// Currently uploaded mesh
	vao        uint32
	vbos       []uint32
	ebo        uint32
	indexCount int32

	wireframe bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	program, err := shader.CompileProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.uniformMVP = shader.MustGetUniform(program, "uMVP")
	r.uniformModel = shader.MustGetUniform(program, "uModel")
	r.uniformLight = shader.MustGetUniform(program, "uLightDir")

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.deleteMesh()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetWireframe toggles wireframe rendering.
func (r *Renderer) SetWireframe(on bool) {
	r.wireframe = on
}

// UploadMesh replaces the current GPU mesh with the given buffers.
// Both layouts are accepted; the attribute bindings differ but the
// shader inputs are identical.
func (r *Renderer) UploadMesh(b *mesh.Buffers) error {
	if b.VertexCount() == 0 || len(b.Indices) == 0 {
		return fmt.Errorf("empty mesh")
	}

	r.deleteMesh()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	switch b.Layout {
	case mesh.StreamSingle:
		r.uploadInterleaved(b.Vertices)
	case mesh.StreamMulti:
		r.uploadSplit(b)
	default:
		gl.BindVertexArray(0)
		return fmt.Errorf("unknown stream layout %d", b.Layout)
	}

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*2, unsafe.Pointer(&b.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.indexCount = int32(len(b.Indices))

	logger.Debug("mesh uploaded",
		zap.String("layout", b.Layout.String()),
		zap.Int("vertices", b.VertexCount()),
		zap.Int("triangles", b.TriangleCount()),
	)
	return nil
}

// uploadInterleaved uploads a single interleaved vertex buffer.
func (r *Renderer) uploadInterleaved(vertices []mesh.Vertex) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(unsafe.Sizeof(mesh.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(attrPosition, 3, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.Position))
	gl.EnableVertexAttribArray(attrPosition)
	gl.VertexAttribPointerWithOffset(attrNormal, 3, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.Normal))
	gl.EnableVertexAttribArray(attrNormal)
	gl.VertexAttribPointerWithOffset(attrTangent, 4, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.Tangent))
	gl.EnableVertexAttribArray(attrTangent)
	gl.VertexAttribPointerWithOffset(attrTexCoord, 2, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(attrTexCoord)

	r.vbos = append(r.vbos, vbo)
}

// uploadSplit uploads one tightly packed buffer per attribute.
func (r *Renderer) uploadSplit(b *mesh.Buffers) {
	bind := func(index uint32, components int32, size int, data unsafe.Pointer) {
		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, size, data, gl.STATIC_DRAW)
		gl.VertexAttribPointerWithOffset(index, components, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(index)
		r.vbos = append(r.vbos, vbo)
	}

	bind(attrPosition, 3, len(b.Positions)*12, unsafe.Pointer(&b.Positions[0]))
	bind(attrNormal, 3, len(b.Normals)*12, unsafe.Pointer(&b.Normals[0]))
	bind(attrTangent, 4, len(b.Tangents)*16, unsafe.Pointer(&b.Tangents[0]))
	bind(attrTexCoord, 2, len(b.TexCoords)*8, unsafe.Pointer(&b.TexCoords[0]))
}

// deleteMesh releases the current GPU mesh, if any.
func (r *Renderer) deleteMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	for i := range r.vbos {
		gl.DeleteBuffers(1, &r.vbos[i])
	}
	r.vbos = r.vbos[:0]
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	r.indexCount = 0
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the uploaded mesh with the given view and projection.
func (r *Renderer) Draw(view, projection math.Mat4) {
	if r.vao == 0 {
		return
	}

	model := math.Identity()
	mvp := projection.Mul(view).Mul(model)
	lightDir := math.Vec3{X: 0.4, Y: 0.8, Z: 0.45}.Normalize()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uniformMVP, 1, false, mvp.Ptr())
	gl.UniformMatrix4fv(r.uniformModel, 1, false, model.Ptr())
	gl.Uniform3f(r.uniformLight, lightDir.X, lightDir.Y, lightDir.Z)

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec4 aTangent;
layout (location = 3) in vec2 aTexCoord;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vNormal = mat3(uModel) * aNormal;
	vTexCoord = aTexCoord;
}
`

const meshFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vTexCoord;

uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float diffuse = max(dot(n, uLightDir), 0.0);
	float ambient = 0.15;

	// Faint UV checker so the parameterization is visible
	vec2 grid = step(vec2(0.5), fract(vTexCoord * 8.0));
	float checker = mix(0.85, 1.0, abs(grid.x - grid.y));

	vec3 base = vec3(0.55, 0.65, 0.8) * checker;
	FragColor = vec4(base * (ambient + diffuse), 1.0);
}
`
