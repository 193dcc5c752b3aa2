package renderer

import "github.com/Carmen-Shannon/shadercast/engine/renderer/shader"

// RendererBuilderOption is a functional option for configuring a glRenderer.
// Use the With* functions to create options.
type RendererBuilderOption func(r *glRenderer)

// WithProgram sets the shader program bound for drawing.
//
// Parameters:
//   - p: the linked program to draw with
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithProgram(p shader.Program) RendererBuilderOption {
	return func(r *glRenderer) {
		r.program = p
	}
}

// WithClearColor sets the color the framebuffer is cleared to each frame.
//
// Parameters:
//   - red, green, blue, alpha: clear color components in [0, 1]
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithClearColor(red, green, blue, alpha float32) RendererBuilderOption {
	return func(r *glRenderer) {
		r.clearColor = [4]float32{red, green, blue, alpha}
	}
}
