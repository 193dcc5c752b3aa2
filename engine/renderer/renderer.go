package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Carmen-Shannon/shadercast/engine/renderer/shader"
)

// fullScreenTriangle is a single triangle oversized past clip space so that
// after clipping it covers the whole viewport. Plain vec2 positions at
// attribute location 0.
var fullScreenTriangle = []float32{
	-1.0, -1.0, // bottom-left
	3.0, -1.0, // bottom-right
	-1.0, 3.0, // top-left
}

// glRenderer is the implementation of the Renderer interface.
// Owns the OpenGL loader state, the full-screen triangle geometry, and the
// bound shader program.
type glRenderer struct {
	program shader.Program

	vao uint32
	vbo uint32

	clearColor [4]float32

	initialized bool
}

// Renderer draws the bound shader program over the whole framebuffer using a
// fixed full-screen triangle. All methods require the OpenGL context to be
// current on the calling thread.
type Renderer interface {
	// Init loads the OpenGL function pointers, sets the viewport, and
	// uploads the full-screen triangle geometry. Must be called once, after
	// the context is current and before any other method.
	//
	// Parameters:
	//   - width: initial framebuffer width in pixels
	//   - height: initial framebuffer height in pixels
	//
	// Returns:
	//   - error: error if the OpenGL loader fails
	Init(width, height int) error

	// SetProgram sets the shader program bound for subsequent frames.
	//
	// Parameters:
	//   - p: the linked program to draw with
	SetProgram(p shader.Program)

	// DrawFrame clears the color buffer and issues the full-screen triangle
	// draw call with the bound program.
	DrawFrame()

	// Resize updates the viewport to a new framebuffer size.
	//
	// Parameters:
	//   - width: new framebuffer width in pixels
	//   - height: new framebuffer height in pixels
	Resize(width, height int)

	// Release deletes the geometry buffers and the bound program.
	Release()
}

var _ Renderer = &glRenderer{}

// NewRenderer creates a Renderer with the provided options.
// The renderer is not usable until Init is called with a current context.
//
// Parameters:
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the configured renderer
func NewRenderer(options ...RendererBuilderOption) Renderer {
	r := &glRenderer{
		clearColor: [4]float32{0, 0, 0, 1},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *glRenderer) Init(width, height int) error {
	// gl.Init resolves the OpenGL function pointers from the current
	// context, the same job GLAD does for C programs.
	// Reference: https://pkg.go.dev/github.com/go-gl/gl/v4.1-core/gl#Init
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to load OpenGL function pointers: %w", err)
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(fullScreenTriangle)*4, gl.Ptr(fullScreenTriangle), gl.STATIC_DRAW)

	// Attribute 0: vec2 position, tightly packed.
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.initialized = true
	return nil
}

func (r *glRenderer) SetProgram(p shader.Program) {
	r.program = p
}

func (r *glRenderer) DrawFrame() {
	if !r.initialized {
		return
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)

	if r.program == nil {
		return
	}

	r.program.Bind()
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

func (r *glRenderer) Resize(width, height int) {
	if !r.initialized {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *glRenderer) Release() {
	if !r.initialized {
		return
	}
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	if r.program != nil {
		r.program.Release()
		r.program = nil
	}
	r.initialized = false
}
