// Package renderer draws wireframe meshes as multipass neon glow lines.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/ornament/internal/engine/shader"
	"github.com/Faultbox/ornament/internal/logger"
	"github.com/Faultbox/ornament/internal/ornament"
	"github.com/Faultbox/ornament/pkg/math"
)

const lineVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
uniform mat4 uMVP;
void main() {
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `#version 410 core
uniform vec4 uColor;
out vec4 FragColor;
void main() {
    FragColor = uColor;
}
`

// Config holds renderer tuning.
type Config struct {
	// Brightness multiplies line RGB, Thickness is the base line width in
	// pixels; both are scaled further per glow pass.
	Brightness float32
	Thickness  float32
}

type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Renderer owns the GL resources of one window's context: the line shader
// and one vertex/index buffer pair per uploaded mesh.
// All methods must be called with that context current.
type Renderer struct {
	config Config

	program  uint32
	locMVP   int32
	locColor int32

	meshes map[*ornament.WireMesh]meshBuffers
}

// New creates a renderer for the current OpenGL context.
// IMPORTANT: must be called AFTER the context is created and made current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[*ornament.WireMesh]meshBuffers),
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

	program, err := shader.CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	r.program = program
	r.locMVP = shader.GetUniform(program, "uMVP")
	r.locColor = shader.GetUniform(program, "uColor")

	// Additive blending over a transparent framebuffer makes overlapping
	// glow passes add up to the neon look
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 0)

	return r, nil
}

// Close releases all GL resources owned by the renderer.
func (r *Renderer) Close() {
	for _, buf := range r.meshes {
		gl.DeleteVertexArrays(1, &buf.vao)
		gl.DeleteBuffers(1, &buf.vbo)
		gl.DeleteBuffers(1, &buf.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Begin starts a frame: sets the viewport to the current framebuffer size
// and clears to fully transparent.
func (r *Renderer) Begin(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the command list with the fixed glow-pass schedule.
func (r *Renderer) Draw(cmds []ornament.DrawCommand, viewProj math.Mat4) {
	gl.UseProgram(r.program)

	for _, cmd := range cmds {
		buf := r.buffers(cmd.Mesh)

		mvp := viewProj.Mul(cmd.Model)
		gl.UniformMatrix4fv(r.locMVP, 1, false, mvp.Ptr())
		gl.BindVertexArray(buf.vao)

		for _, pass := range ornament.GlowPasses {
			gl.LineWidth(r.config.Thickness * pass.Width)
			gl.Uniform4f(r.locColor,
				cmd.Color.X*r.config.Brightness,
				cmd.Color.Y*r.config.Brightness,
				cmd.Color.Z*r.config.Brightness,
				pass.Alpha,
			)
			gl.DrawElements(gl.LINES, buf.indexCount, gl.UNSIGNED_INT, nil)
		}
	}

	gl.BindVertexArray(0)
}

// buffers returns the GL buffers for a mesh, uploading it on first use.
// Meshes are immutable, so the upload happens at most once per context.
func (r *Renderer) buffers(mesh *ornament.WireMesh) meshBuffers {
	if buf, ok := r.meshes[mesh]; ok {
		return buf
	}

	verts := make([]float32, 0, len(mesh.Vertices)*3)
	for _, v := range mesh.Vertices {
		verts = append(verts, v.X, v.Y, v.Z)
	}
	indices := make([]uint32, 0, len(mesh.Segments)*2)
	for _, seg := range mesh.Segments {
		indices = append(indices, seg[0], seg[1])
	}

	var buf meshBuffers
	buf.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &buf.vao)
	gl.GenBuffers(1, &buf.vbo)
	gl.GenBuffers(1, &buf.ebo)

	gl.BindVertexArray(buf.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.meshes[mesh] = buf
	return buf
}
