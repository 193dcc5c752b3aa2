package engine

import (
	"github.com/Carmen-Shannon/shadercast/engine/applog"
	"github.com/Carmen-Shannon/shadercast/engine/renderer"
	"github.com/Carmen-Shannon/shadercast/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the
// engine instance.
type EngineBuilderOption func(*engine)

// WithWindow sets the window the engine drives.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer used each frame.
//
// Parameters:
//   - r: a pre-configured Renderer instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithLogger sets the logger the engine and its profiler write to.
//
// Parameters:
//   - lg: the app logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(lg *applog.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.logger = lg
	}
}

// WithRecording enables frame capture for a bounded number of frames.
// The loop terminates once totalFrames captures have been attempted.
//
// Parameters:
//   - framesDir: directory receiving the numbered frame files
//   - totalFrames: frame budget, normally fps times duration truncated
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRecording(framesDir string, totalFrames int) EngineBuilderOption {
	return func(e *engine) {
		e.recording = true
		e.framesDir = framesDir
		e.totalFrames = totalFrames
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}
