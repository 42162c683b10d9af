// Package immediate emulates begin/vertex/end style drawing on a core
// profile OpenGL context. Vertices are buffered between Begin and End and
// drawn with a single call, with the current normal and colour captured
// per vertex.
package immediate

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cvlogo/internal/engine/glerr"
	"github.com/Faultbox/cvlogo/internal/engine/immediate/shaders"
	"github.com/Faultbox/cvlogo/internal/engine/lighting"
	"github.com/Faultbox/cvlogo/internal/engine/shader"
	"github.com/Faultbox/cvlogo/internal/logger"
	"github.com/Faultbox/cvlogo/pkg/math"
)

// floatsPerVertex is position(3) + normal(3) + color(4).
const floatsPerVertex = 10

// DefaultSource returns the embedded shader pair.
func DefaultSource() shader.Source {
	return shader.Source{
		Vertex:   shaders.ImmediateVertexShader,
		Fragment: shaders.ImmediateFragmentShader,
	}
}

// Context draws triangles submitted one vertex at a time.
type Context struct {
	program uint32
	vao     uint32
	vbo     uint32

	locProjection int32
	locModelView  int32
	locLighting   int32
	locLightDir   int32
	locAmbient    int32
	locDiffuse    int32

	light    lighting.Light
	lighting bool

	color    Color
	normal   math.Vec3
	vertices []float32
	open     bool
}

// New compiles the shader program and allocates the streaming buffer.
// IMPORTANT: Must be called AFTER the OpenGL context is current and gl.Init ran.
func New(src shader.Source, light lighting.Light) (*Context, error) {
	c := &Context{
		light:    light,
		lighting: true,
		color:    ColorWhite,
		vertices: make([]float32, 0, 4096*floatsPerVertex),
	}

	if err := c.Reload(src); err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if err := glerr.Check("create immediate buffers"); err != nil {
		c.Close()
		return nil, err
	}

	logger.Debug("immediate context created",
		zap.Uint32("program", c.program),
		zap.Uint32("vao", c.vao),
		zap.Uint32("vbo", c.vbo),
	)
	return c, nil
}

// Reload compiles src and swaps it in. On failure the current program stays bound.
func (c *Context) Reload(src shader.Source) error {
	program, err := shader.CompileProgram(src)
	if err != nil {
		return fmt.Errorf("immediate shader: %w", err)
	}
	if c.program != 0 {
		gl.DeleteProgram(c.program)
	}
	c.program = program
	c.locProjection = shader.GetUniform(program, "uProjection")
	c.locModelView = shader.GetUniform(program, "uModelView")
	c.locLighting = shader.GetUniform(program, "uLighting")
	c.locLightDir = shader.GetUniform(program, "uLightDir")
	c.locAmbient = shader.GetUniform(program, "uAmbient")
	c.locDiffuse = shader.GetUniform(program, "uDiffuse")

	logger.Info("immediate shader loaded", zap.String("source", src.Name()))
	return glerr.Check("link immediate shader")
}

// SetLighting toggles the directional light. Unlit geometry shows its flat colour.
func (c *Context) SetLighting(enabled bool) {
	c.lighting = enabled
}

// SetMatrices uploads the projection and model-view matrices.
func (c *Context) SetMatrices(projection, modelView math.Mat4) error {
	gl.UseProgram(c.program)
	gl.UniformMatrix4fv(c.locProjection, 1, false, projection.Ptr())
	gl.UniformMatrix4fv(c.locModelView, 1, false, modelView.Ptr())
	return glerr.Check("load matrices")
}

// SetColor sets the colour attached to subsequent vertices. It may be
// called inside a Begin/End pair.
func (c *Context) SetColor(col Color) error {
	c.color = col
	return nil
}

// Begin starts a triangle list.
func (c *Context) Begin() {
	c.vertices = c.vertices[:0]
	c.open = true
}

// Normal sets the normal attached to subsequent vertices.
func (c *Context) Normal(n math.Vec3) {
	c.normal = n
}

// Vertex appends a vertex with the current normal and colour.
func (c *Context) Vertex(p math.Vec3) {
	c.vertices = append(c.vertices,
		p.X, p.Y, p.Z,
		c.normal.X, c.normal.Y, c.normal.Z,
		c.color.R, c.color.G, c.color.B, c.color.A,
	)
}

// End draws the buffered triangles.
func (c *Context) End() error {
	if !c.open {
		return fmt.Errorf("%w: End without Begin", glerr.ErrBackendCall)
	}
	c.open = false
	if len(c.vertices) == 0 {
		return nil
	}

	gl.UseProgram(c.program)
	if c.lighting {
		gl.Uniform1i(c.locLighting, 1)
	} else {
		gl.Uniform1i(c.locLighting, 0)
	}
	dir := c.light.Direction.Normalize()
	gl.Uniform3f(c.locLightDir, dir.X, dir.Y, dir.Z)
	gl.Uniform1f(c.locAmbient, c.light.Ambient)
	gl.Uniform1f(c.locDiffuse, c.light.Diffuse)

	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(c.vertices)*4, unsafe.Pointer(&c.vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(c.vertices)/floatsPerVertex))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return glerr.Check("draw triangles")
}

// Close releases GL resources.
func (c *Context) Close() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.program != 0 {
		gl.DeleteProgram(c.program)
	}
}
